package logger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

// Fx routes fx lifecycle events to the global logger. Successful steps are
// logged at debug level, failures at error level.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (l *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		l.result(e.Err).
			Str("callee", e.FunctionName).
			Str("caller", e.CallerName).
			Dur("took", e.Runtime).
			Msg("OnStart hook executed")
	case *fxevent.OnStopExecuted:
		l.result(e.Err).
			Str("callee", e.FunctionName).
			Str("caller", e.CallerName).
			Dur("took", e.Runtime).
			Msg("OnStop hook executed")
	case *fxevent.Supplied:
		l.result(e.Err).
			Str("type", e.TypeName).
			Str("module", e.ModuleName).
			Msg("supplied")
	case *fxevent.Provided:
		l.result(e.Err).
			Str("constructor", e.ConstructorName).
			Str("module", e.ModuleName).
			Str("types", strings.Join(e.OutputTypeNames, ", ")).
			Msg("provided")
	case *fxevent.Invoked:
		l.result(e.Err).
			Str("function", e.FunctionName).
			Str("module", e.ModuleName).
			Msg("invoked")
	case *fxevent.Stopped:
		l.result(e.Err).Msg("stopped")
	case *fxevent.RolledBack:
		l.result(e.Err).Msg("rolled back")
	case *fxevent.Started:
		l.result(e.Err).Msg("started")
	case *fxevent.LoggerInitialized:
		l.result(e.Err).Str("constructor", e.ConstructorName).Msg("logger initialized")
	}
}

func (l *fxLogger) result(err error) *zerolog.Event {
	if err != nil {
		return l.l.Error().Err(err)
	}
	return l.l.Debug()
}

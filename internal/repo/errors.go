package repo

import "github.com/pkg/errors"

// ErrUpstreamStatus is returned when an upstream answers with a non-200 status.
var ErrUpstreamStatus = errors.New("upstream responded with unexpected status")

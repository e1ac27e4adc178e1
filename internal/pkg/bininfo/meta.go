// Values in this file are injected at link time, e.g.
// go build -ldflags "-X github.com/collectionlog/backend/internal/pkg/bininfo.Version=v1.2.3"

package bininfo

const Name = "clogbackend"

var (
	// Version is the SemVer version of the binary.
	Version = "v0.0.0"

	// Commit is the git commit the binary was built from.
	Commit = "unknown"

	// BuildTime is the time at which the application was built.
	BuildTime = "1970-01-01T00:00:00Z"
)

// Package version reports the build identity of the engine binary.
package version

// These are overwritten at build time via -ldflags, e.g.:
//
//	go build -ldflags "-X 'github.com/mkarrmann/gostonefish/internal/version.buildVersion=v1.2.3'"
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// Version returns a short, human readable version string.
func Version() string {
	return buildVersion
}

// Commit returns the VCS commit the binary was built from, if known.
func Commit() string {
	return buildCommit
}

// Date returns the build timestamp, if known.
func Date() string {
	return buildDate
}

// Package version exposes the build version stamped at link time.
package version

// version is overridden at build time via
// -ldflags "-X github.com/kayatools/kayadata/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Link-time injection target.

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

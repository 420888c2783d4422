package version

// version is set at build time with
// -ldflags "-X github.com/icarusgame/icarus/pkg/version.version=v1.2.3"
var version = "dev"

// Get returns the build version.
func Get() string {
	return version
}

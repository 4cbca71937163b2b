package app

// version is set at build time via -ldflags "-X .../internal/app.version=...".
var version = "dev"

// BuildVersion returns the build version string.
func BuildVersion() string {
	return version
}

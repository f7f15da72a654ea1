// Package version provides build version information for gguf2st.
package version

// Version is the application version, set via ldflags at build time.
var Version = "dev"

// UserAgent returns the User-Agent string for HTTP requests.
func UserAgent() string {
	return "gguf2st/" + Version
}

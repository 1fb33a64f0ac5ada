package misc

import "fmt"

// These variables are changed in compile time.
var (
	// Build is an application build time.
	Build = "now"

	// Version is an application version.
	Version = "dev"

	// Debug is an application debug mode flag.
	Debug = "false"
)

// BuildInfo returns human-readable build information for the named component.
func BuildInfo(component string) string {
	return fmt.Sprintf("%s\nVersion: %s \nBuild: %s \nDebug: %s",
		component,
		Version,
		Build,
		Debug,
	)
}

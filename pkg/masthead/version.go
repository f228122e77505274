// Package masthead holds build metadata shared by the library and the CLI.
package masthead

// Version is the masthead release version.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/masthead"

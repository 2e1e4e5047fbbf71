package common

// Application name constants
const (
	// AppName is the main application name
	AppName = "ms"

	// ConvertBinary is the name of the conversion shortcut binary
	ConvertBinary = "msconv"
)

package main

// Default limits for CLI commands.
const (
	DefaultViewportWidth  = 1280.0
	DefaultViewportHeight = 800.0
)

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown", "html"}

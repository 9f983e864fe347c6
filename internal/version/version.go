package version

// Version is the semantic version of the signalrest CLI. Overridden at
// build time via -ldflags.
var Version = "0.3.0"

package version

// Version is stamped at release; keep a dev default for local builds.
var Version = "0.2.0-dev"

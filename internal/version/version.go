// internal/version/version.go
package version

// Version is stamped at release time; keep the dev default obvious.
var Version = "0.1.0-dev"

// Package cli is responsible for parsing command-line arguments, merging
// them with the optional run configuration file and producing a validated
// app.Config.
package cli

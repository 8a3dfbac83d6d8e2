// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle: a single scenario with
// optional observers, or a batch directory. It is decoupled from any specific
// entrypoint like a CLI or server.
package app

// Package app contains the core inspector logic. It defines the main App
// struct, its configuration, and the report/validate lifecycle, decoupled
// from any specific entrypoint like a CLI.
package app

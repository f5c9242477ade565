// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the listen port and the read, write and shutdown timeouts applied
// to the Fiber app.
package server

// Package stratoclient provides the main entry point for creating Strato API
// clients.
package stratoclient

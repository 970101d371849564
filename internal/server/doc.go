// Package server runs the discovery HTTP server.
//
// It handles startup, signal handling and graceful shutdown.
package server

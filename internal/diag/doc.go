// Package diag serves the library's health and Prometheus metrics over HTTP.
// The host process owns signals and lifetime, so the server only starts and
// stops when told to.
package diag

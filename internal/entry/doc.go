// Package entry implements the logic behind the library's exported C symbols.
// The cgo layer in cmd/libnoop converts C arguments and calls into a Shim;
// everything here is plain Go and testable without a C toolchain.
package entry

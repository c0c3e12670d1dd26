// Package delegate defines the object the native entry point forwards to,
// along with the process-wide instance the shared library hands to the shim.
package delegate

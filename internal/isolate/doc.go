// Package isolate issues and tracks the opaque execution-context handles a
// native host obtains before calling into the shared library. Handles are
// plain integers at the C boundary and carry no meaning outside the Registry
// that issued them.
package isolate

package isolate

import "github.com/oklog/ulid/v2"

// newID generates a new ULID string used to identify an isolate in logs.
func newID() string {
	return ulid.Make().String()
}

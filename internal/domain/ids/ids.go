// Package ids checks identifiers before they reach UUID columns.
package ids

import "github.com/google/uuid"

// Valid reports whether id is a UUID in the hyphenated 36-character form.
// Braced and urn:uuid forms are rejected.
func Valid(id string) bool {
	return len(id) == 36 && uuid.Validate(id) == nil
}

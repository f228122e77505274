package types

import "github.com/google/uuid"

// newID returns a UUID v7 string. IDs sort by creation time.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

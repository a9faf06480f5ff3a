package state

import (
	"github.com/google/uuid"
)

// NewID returns a fresh random shape id.
func NewID() string {
	return uuid.NewString()
}

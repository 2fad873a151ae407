package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Timestamps holds standard audit timestamps for domain entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewID returns a new 26-character ULID for use as an entity primary key.
func NewID() string {
	return ulid.Make().String()
}

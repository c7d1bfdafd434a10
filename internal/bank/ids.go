package bank

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a UUIDv7: a millisecond timestamp followed by random bits,
// so ids from rapid successive calls never collide.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func nowMillis(now func() time.Time) int64 {
	return now().UnixMilli()
}

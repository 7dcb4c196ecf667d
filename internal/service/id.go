package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID generates a client-style record ID: a millisecond timestamp
// with a random suffix. IDs sort roughly by creation time, which keeps
// database listings stable without a separate sequence.
func newID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

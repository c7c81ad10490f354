package shared

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for newly created records. Components that
// create records accept one so the policy stays a construction-time choice.
type IDGenerator func() string

// TimestampID returns the milliseconds since the Unix epoch as a decimal
// string. This is the historical id policy of the store; two calls within the
// same millisecond return the same value, so callers must not rely on
// uniqueness under rapid sequential creation.
func TimestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// RandomID returns a collision-resistant random identifier (UUID v4).
func RandomID() string {
	return uuid.NewString()
}

package core

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// NewID generates a new ULID with the specified prefix.
// The resulting ID follows the format: prefix_ULID
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, ulid.Make().String())
}

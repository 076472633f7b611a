package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID_MonotonicAndUnique(t *testing.T) {
	ids := make([]string, 200)
	for i := range ids {
		ids[i] = NewULID()
		assert.Len(t, ids[i], 26)
	}
	assert.True(t, sort.StringsAreSorted(ids))

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate ULID %s", id)
		seen[id] = struct{}{}
	}
}

package anki

import (
	"testing"
	"time"
)

func TestNextID_IsAtLeastCurrentTime(t *testing.T) {
	before := time.Now().UnixMilli()
	id := nextID(func(int64) bool { return false })
	after := time.Now().UnixMilli()

	if id < before || id > after {
		t.Errorf("expected id in [%d, %d], got %d", before, after, id)
	}
}

func TestNextID_SkipsExistingIDs(t *testing.T) {
	base := time.Now().UnixMilli()
	taken := map[int64]bool{}
	// Simulate three ids already allocated at and after the current tick.
	for offset := int64(0); offset < 3; offset++ {
		taken[base+offset] = true
	}

	id := nextID(func(id int64) bool { return taken[id] })

	if taken[id] {
		t.Errorf("allocator returned an existing id %d", id)
	}
	if id < base {
		t.Errorf("expected id >= %d, got %d", base, id)
	}
}

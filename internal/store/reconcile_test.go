package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	id  string
	val int
}

func rowID(r row) string { return r.id }

func TestUpsert(t *testing.T) {
	base := []row{{"a", 1}, {"b", 2}}

	tests := []struct {
		name    string
		item    row
		prepend bool
		want    []row
	}{
		{"append new", row{"c", 3}, false, []row{{"a", 1}, {"b", 2}, {"c", 3}}},
		{"prepend new", row{"c", 3}, true, []row{{"c", 3}, {"a", 1}, {"b", 2}}},
		{"existing id replaced in place", row{"b", 9}, true, []row{{"a", 1}, {"b", 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := upsert(base, tt.item, rowID, tt.prepend)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []row{{"a", 1}, {"b", 2}}, base, "input must not be mutated")
		})
	}
}

func TestReplaceAndRemove(t *testing.T) {
	base := []row{{"a", 1}, {"b", 2}}

	out, ok := replace(base, row{"z", 0}, rowID)
	assert.False(t, ok)
	assert.Equal(t, base, out)

	out, ok = replace(base, row{"a", 5}, rowID)
	assert.True(t, ok)
	assert.Equal(t, []row{{"a", 5}, {"b", 2}}, out)
	assert.Equal(t, 1, base[0].val)

	assert.Equal(t, []row{{"b", 2}}, remove(base, "a", rowID))
	assert.Equal(t, base, remove(base, "missing", rowID))
	assert.Equal(t, []row{{"a", 1}, {"b", 2}}, base)
}

func TestSnapshotAndPtrCopy(t *testing.T) {
	assert.Equal(t, []row{}, snapshot[row](nil))

	src := []row{{"a", 1}}
	cp := snapshot(src)
	cp[0].val = 7
	assert.Equal(t, 1, src[0].val)

	_, ok := ptrCopy[row](nil)
	assert.False(t, ok)
	r := row{"a", 1}
	got, ok := ptrCopy(&r)
	assert.True(t, ok)
	got.val = 3
	assert.Equal(t, 1, r.val)
}

package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndFind(t *testing.T) {
	s := NewMemoryStore()
	run := &Run{ID: "abc", Status: StatusCompleted, Samples: []float64{1, 2}}

	require.NoError(t, s.Save(run))

	found, err := s.Find("abc")
	require.NoError(t, err)
	assert.Equal(t, run, found)
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(&Run{ID: "abc", Status: StatusQueued}))
	require.NoError(t, s.Save(&Run{ID: "abc", Status: StatusCompleted}))

	found, err := s.Find("abc")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, found.Status)
}

func TestMemoryStore_FindMissingRun(t *testing.T) {
	_, err := NewMemoryStore().Find("missing")
	assert.True(t, errors.Is(err, ErrRunNotFound))
}

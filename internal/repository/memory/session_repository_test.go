package memory

import (
	"testing"

	"rental-asistente-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	sess := &store.Session{ID: "abc", State: store.StateIdle, Days: 3}
	repo.Save(sess)

	got, found := repo.Get("abc")
	assert.True(t, found)
	assert.Equal(t, 3, got.Days)
	assert.Equal(t, store.StateIdle, got.State)
}

func TestSessionRepositoryMiss(t *testing.T) {
	repo := NewSessionRepository()
	got, found := repo.Get("nope")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(&store.Session{ID: "gone"})
	repo.Delete("gone")
	_, found := repo.Get("gone")
	assert.False(t, found)
}

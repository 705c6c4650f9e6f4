package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proctorly/itemsel/internal/irt"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry()

	st, err := r.Create("s1", irt.Model3PL)
	require.NoError(t, err)
	assert.Equal(t, "s1", st.SessionID)
	assert.Equal(t, irt.Model3PL, st.Model)
	assert.Equal(t, PhaseInitialized, st.Phase)
	assert.Equal(t, 0.0, st.Theta)
	assert.Equal(t, 1.0, st.SE)

	got, err := r.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, st, got)

	_, err = r.Create("s1", irt.Model2PL)
	assert.ErrorIs(t, err, ErrSessionExists)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create("s1", irt.Model2PL)
	require.NoError(t, err)

	got, err := r.Get("s1")
	require.NoError(t, err)

	// Mutating the copy must not leak into registry state.
	got.Theta = 3.0
	got.Answered = append(got.Answered, "q1")

	fresh, err := r.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, fresh.Theta)
	assert.Empty(t, fresh.Answered)
}

func TestRegistryWithSerializesAccess(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create("s1", irt.Model2PL)
	require.NoError(t, err)

	// Each With call increments theta by reading then writing; lost
	// updates would leave theta below the goroutine count.
	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.With("s1", func(s *AbilityState) error {
				s.Theta++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := r.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, float64(n), got.Theta)
}

func TestHasAnswered(t *testing.T) {
	st := newAbilityState("s1", irt.Model1PL)
	assert.False(t, st.HasAnswered("q1"))

	st.apply("q1", 0.5, irt.UpdateResult{Theta: 0.2, SE: 0.8})
	assert.True(t, st.HasAnswered("q1"))
	assert.False(t, st.HasAnswered("q2"))
	assert.Equal(t, PhaseAnswered, st.Phase)
	assert.Equal(t, []float64{0.5}, st.AnsweredDifficulties)
}

package quilt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateDefaults(t *testing.T) {
	s := NewStore()

	p, err := s.Create("#ff0000")
	require.NoError(t, err)

	assert.Equal(t, Square(DefaultPatchSize), p.Size)
	assert.Equal(t, "#ff0000", p.Color)
	assert.Nil(t, p.Coords, "coords stay nil until displayed")
	assert.Equal(t, 1, s.Len())
}

func TestStore_RejectsBeyondCapacity(t *testing.T) {
	s := NewStore()
	for i := 0; i < MaxPatches; i++ {
		_, err := s.Create(fmt.Sprintf("#%06x", i))
		require.NoError(t, err)
	}
	require.True(t, s.Full())

	for i := 0; i < 3; i++ {
		p, err := s.Create("#000000")
		assert.Nil(t, p)
		assert.True(t, errors.Is(err, ErrCapacity))
		assert.Equal(t, MaxPatches, s.Len())
	}

	err := s.Add(&Patch{Size: Square(10), Color: "#123456"})
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, MaxPatches, s.Len())
}

func TestStore_AtOutOfRange(t *testing.T) {
	s := NewStore()
	_, err := s.Create("#00ff00")
	require.NoError(t, err)

	_, err = s.At(1)
	assert.ErrorIs(t, err, ErrNoSuchPatch)
	_, err = s.At(-1)
	assert.ErrorIs(t, err, ErrNoSuchPatch)

	p, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", p.Color)
}

func TestStore_PatchesIsACopy(t *testing.T) {
	s := NewStore()
	_, _ = s.Create("#111111")
	list := s.Patches()
	list[0] = nil
	p, err := s.At(0)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

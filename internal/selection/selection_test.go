package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeNormal(t *testing.T) {
	s := Selection{Cursor: 3, Anchor: 1}
	start, end := s.Range()
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
	assert.Equal(t, 1, s.Size())
}

func TestRangeVisualEitherDirection(t *testing.T) {
	down := Selection{Mode: Visual, Cursor: 4, Anchor: 1}
	up := Selection{Mode: Visual, Cursor: 1, Anchor: 4}
	for _, s := range []Selection{down, up} {
		start, end := s.Range()
		assert.Equal(t, 1, start)
		assert.Equal(t, 4, end)
		assert.Equal(t, 4, s.Size())
		assert.True(t, s.Contains(2))
		assert.False(t, s.Contains(5))
	}
}

func TestToggleVisual(t *testing.T) {
	s := Selection{Cursor: 2}
	s.ToggleVisual()
	assert.Equal(t, Visual, s.Mode)
	assert.Equal(t, 2, s.Anchor)

	s.MoveTo(5, 10)
	assert.Equal(t, 2, s.Anchor)
	assert.Equal(t, 5, s.Cursor)

	s.ToggleVisual()
	assert.Equal(t, Normal, s.Mode)
	assert.Equal(t, 5, s.Cursor)
	assert.Equal(t, 5, s.Anchor)
}

func TestMoveToClamps(t *testing.T) {
	s := Selection{}
	s.MoveTo(-3, 4)
	assert.Equal(t, 0, s.Cursor)
	s.MoveTo(99, 4)
	assert.Equal(t, 3, s.Cursor)
	assert.Equal(t, 3, s.Anchor)
}

func TestShiftAndClamp(t *testing.T) {
	s := Selection{Mode: Visual, Cursor: 2, Anchor: 3}
	s.Shift(-1, 5)
	assert.Equal(t, Selection{Mode: Visual, Cursor: 1, Anchor: 2}, s)

	s = Selection{Mode: Visual, Cursor: 7, Anchor: 9}
	s.Clamp(3)
	assert.Equal(t, 2, s.Cursor)
	assert.Equal(t, 2, s.Anchor)
}

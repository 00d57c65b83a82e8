package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_Next(t *testing.T) {
	s := NewStream([]string{"a", "-t=1", "b", "c"})
	s.Consume(1)

	tok, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", tok)

	tok, ok = s.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", tok, "consumed tokens are skipped")

	assert.Equal(t, []string{"c"}, s.Remaining())

	tok, ok = s.Next()
	assert.True(t, ok)
	assert.Equal(t, "c", tok)

	_, ok = s.Next()
	assert.False(t, ok)
	assert.Empty(t, s.Remaining())
	assert.Equal(t, []int{0, 1, 2, 3}, s.Consumed())
}

func TestStream_DoesNotAliasInput(t *testing.T) {
	in := []string{"x", "y"}
	s := NewStream(in)
	in[0] = "changed"

	assert.Equal(t, "x", s.At(0))
	assert.Equal(t, "", s.At(5))
	assert.Equal(t, 2, s.Len())
}

func TestStream_Rewind(t *testing.T) {
	s := NewStream([]string{"a", "b"})
	_, _ = s.Next()
	s.Rewind()

	tok, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", tok, "rewind keeps consumed marks")
	assert.False(t, s.IsConsumed(-1))
	s.Consume(10)
	assert.Len(t, s.Consumed(), 2)
}

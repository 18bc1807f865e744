package ptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueSetMembership(t *testing.T) {
	var s ValueSet
	assert.True(t, s.Empty())
	_, ok := s.Single()
	assert.False(t, ok)

	for _, v := range []uint8{0, 63, 64, 200, 255} {
		s.Add(v)
		assert.True(t, s.Has(v), "ordinal %d", v)
	}
	assert.False(t, s.Has(1))
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []uint8{0, 63, 64, 200, 255}, s.Members())
	assert.Equal(t, "{0,63,64,200,255}", s.String())

	s.Set(77)
	assert.Equal(t, 1, s.Len())
	v, ok := s.Single()
	assert.True(t, ok)
	assert.Equal(t, uint8(77), v)

	s.Reset()
	assert.True(t, s.Empty())
}

func TestValueSetUnion(t *testing.T) {
	var a, b ValueSet
	a.Add(1)
	b.Add(130)
	a.Union(b)
	assert.True(t, a.Has(1))
	assert.True(t, a.Has(130))
	assert.False(t, b.Has(1))
}

package ptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeQueueFIFOAcrossGrowth(t *testing.T) {
	q := newNodeQueue(4)
	// Advance head so the buffer wraps before it grows.
	q.push(100)
	q.push(101)
	q.pop()
	q.pop()

	for i := 0; i < 11; i++ {
		q.push(NodeID(i))
	}
	assert.Equal(t, 11, q.count())
	for i := 0; i < 11; i++ {
		id, ok := q.pop()
		assert.True(t, ok)
		assert.Equal(t, NodeID(i), id)
	}
	_, ok := q.pop()
	assert.False(t, ok)
}

func TestNodeQueueReset(t *testing.T) {
	q := newNodeQueue(0)
	q.push(1)
	q.push(2)
	q.reset()
	assert.Equal(t, 0, q.count())
	_, ok := q.pop()
	assert.False(t, ok)
}

package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockGroupOrdersBySeq(t *testing.T) {
	a := &node{seq: -3}
	b := &node{seq: -2}
	c := &node{seq: -1}

	group := newLockGroup(c, a, b)
	assert.Equal(t, []*node{a, b, c}, group.nodes)

	group = newLockGroup(b, nil, a)
	assert.Equal(t, []*node{a, b}, group.nodes)

	group = newLockGroup(nil, a, nil)
	assert.Equal(t, []*node{a}, group.nodes)

	group = newLockGroup(nil, nil)
	assert.Empty(t, group.nodes)
	// locking an empty group is a no-op
	group.lock()
	group.unlock()
}

func TestLockGroupHoldsAndReleasesAll(t *testing.T) {
	a := &node{seq: -2}
	b := &node{seq: -1}

	group := newLockGroup(b, a)
	group.lock()
	assert.False(t, a.mu.TryLock())
	assert.False(t, b.mu.TryLock())

	group.unlock()
	assert.True(t, a.mu.TryLock())
	assert.True(t, b.mu.TryLock())
	a.mu.Unlock()
	b.mu.Unlock()
}

// Overlapping groups taken from many goroutines must never deadlock because
// every group acquires in ascending seq order.
func TestLockGroupOverlappingNoDeadlock(t *testing.T) {
	nodes := make([]*node, 5)
	for i := range nodes {
		nodes[i] = &node{seq: int64(i)}
	}

	done := make(chan struct{}, 4)
	for g := 0; g < 4; g++ {
		offset := g
		go func() {
			for i := 0; i < 500; i++ {
				group := newLockGroup(
					nodes[offset%len(nodes)],
					nodes[(offset+1)%len(nodes)],
					nodes[(offset+2)%len(nodes)],
				)
				group.lock()
				group.unlock()
			}
			done <- struct{}{}
		}()
	}

	for i := 0; i < 4; i++ {
		<-done
	}
}

package chain

import "sync"

// node is a single element of the list. A worker must hold mu before its
// cursor may point at the node, and for as long as it stays there.
type node struct {
	payload string

	// next and prev are navigation references only; the list owns its
	// nodes through the head chain. Both are nil once the node has been
	// unlinked. Reading or writing either requires holding mu.
	next *node
	prev *node

	// seq is assigned at creation and never changes. Sequence numbers
	// increase strictly from head to tail, so traversal and batch
	// locking both acquire mutexes in ascending seq order.
	seq int64

	// unlinked is set, under mu, when the node is removed from the
	// chain. A worker that acquires mu must check it before recording
	// a position here.
	unlinked bool

	mu sync.Mutex
}

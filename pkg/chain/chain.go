package chain

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNotPositioned is returned when Advance or DeleteCurrent is called on a
// cursor that holds no position. It signals the caller to stop the current
// pass; it is not fatal.
var ErrNotPositioned = errors.New("cursor holds no position in the list")

// List is a doubly-linked list shared between concurrently running workers.
// There is no list-wide lock: every node carries its own mutex, traversal
// uses hand-over-hand locking, and deletion locks the target node together
// with its neighbors as one ordered batch.
type List struct {
	// headMu guards only the head pointer word. It is a leaf lock:
	// never held while acquiring a node mutex.
	headMu sync.Mutex
	head   *node

	// length is advisory. Workers load it without further
	// synchronization for loop bounds and random index selection; it is
	// exact only when no deletion is in progress.
	length int64

	// seq decreases with every InsertHead so that node sequence numbers
	// ascend from head to tail.
	seq int64

	// positions records the node each cursor currently holds locked.
	// Bookkeeping only, never a synchronization point.
	posMu     sync.Mutex
	positions map[int]*node
	nextCur   int
}

// New creates an empty list.
func New() *List {
	return &List{
		positions: map[int]*node{},
	}
}

// Cursor is the traversal context of a single worker. If cur is non-nil the
// worker holds cur's mutex. A cursor must not be shared between goroutines.
type Cursor struct {
	list *List
	id   int
	cur  *node
}

// NewCursor registers a new worker context with the list.
func (l *List) NewCursor() *Cursor {
	l.posMu.Lock()
	defer l.posMu.Unlock()

	c := &Cursor{list: l, id: l.nextCur}
	l.nextCur++
	l.positions[c.id] = nil
	return c
}

// Len returns the advisory node count.
func (l *List) Len() int {
	return int(atomic.LoadInt64(&l.length))
}

// InsertHead prepends a node with the given payload. It is meant for
// building the chain before workers start and must not be called
// concurrently with traversal or deletion.
func (l *List) InsertHead(payload string) {
	l.seq--
	n := &node{payload: payload, seq: l.seq}

	l.headMu.Lock()
	if l.head != nil {
		l.head.prev = n
		n.next = l.head
	}
	l.head = n
	l.headMu.Unlock()

	atomic.AddInt64(&l.length, 1)
}

// PositionAtHead locks the head node, records it as the cursor's position
// and returns its payload. It returns ok == false if the list is empty.
// This is the only way to (re)start a traversal.
func (l *List) PositionAtHead(c *Cursor) (string, bool) {
	for {
		l.headMu.Lock()
		h := l.head
		l.headMu.Unlock()

		if h == nil {
			l.setPosition(c, nil)
			return "", false
		}

		h.mu.Lock()
		if h.unlinked {
			// head was deleted while we waited for its lock
			h.mu.Unlock()
			continue
		}
		l.setPosition(c, h)
		return h.payload, true
	}
}

// Advance moves the cursor one node towards the tail and returns the new
// node's payload. The next node's mutex is acquired before the current one
// is released, so the cursor is protected at every instant of the step.
// At the tail it clears the position, releases the last lock and returns
// ok == false.
func (l *List) Advance(c *Cursor) (string, bool, error) {
	cur := c.cur
	if cur == nil {
		return "", false, ErrNotPositioned
	}

	next := cur.next
	if next == nil {
		l.setPosition(c, nil)
		cur.mu.Unlock()
		return "", false, nil
	}

	next.mu.Lock()
	l.setPosition(c, next)
	cur.mu.Unlock()
	return next.payload, true, nil
}

// DeleteCurrent unlinks the node the cursor is positioned at and clears the
// position. The cursor's own lock is released first, then the node and its
// live neighbors are reacquired as one ordered batch; releasing first keeps
// the batch acquisition free of self-deadlock.
func (l *List) DeleteCurrent(c *Cursor) error {
	target := c.cur
	if target == nil {
		return ErrNotPositioned
	}

	l.setPosition(c, nil)
	target.mu.Unlock()

	for {
		target.mu.Lock()
		if target.unlinked {
			// another worker removed it in the meantime
			target.mu.Unlock()
			return nil
		}
		prev, next := target.prev, target.next
		target.mu.Unlock()

		group := newLockGroup(target, prev, next)
		group.lock()

		// the neighborhood may have changed between the snapshot and
		// the batch acquisition
		if target.unlinked {
			group.unlock()
			return nil
		}
		if target.prev != prev || target.next != next {
			group.unlock()
			continue
		}

		switch {
		case prev == nil && next == nil:
			l.setHead(nil)
		case prev == nil:
			next.prev = nil
			l.setHead(next)
		case next == nil:
			prev.next = nil
		default:
			prev.next = next
			next.prev = prev
		}

		target.unlinked = true
		target.next = nil
		target.prev = nil

		atomic.AddInt64(&l.length, -1)
		group.unlock()
		return nil
	}
}

func (l *List) setHead(n *node) {
	l.headMu.Lock()
	l.head = n
	l.headMu.Unlock()
}

func (l *List) setPosition(c *Cursor, n *node) {
	l.posMu.Lock()
	l.positions[c.id] = n
	l.posMu.Unlock()
	c.cur = n
}

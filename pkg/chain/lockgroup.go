package chain

import "sort"

// lockGroup acquires a set of node mutexes as one batch. Acquisition is
// ordered by node seq, ascending; since seq ascends from head to tail, the
// batch takes locks in the same global order as hand-over-hand traversal,
// which is what makes the combination deadlock-free.
type lockGroup struct {
	nodes []*node
}

func newLockGroup(nodes ...*node) *lockGroup {
	g := &lockGroup{}
	for _, n := range nodes {
		if n != nil {
			g.nodes = append(g.nodes, n)
		}
	}
	sort.Slice(g.nodes, func(i, j int) bool {
		return g.nodes[i].seq < g.nodes[j].seq
	})
	return g
}

func (g *lockGroup) lock() {
	for _, n := range g.nodes {
		n.mu.Lock()
	}
}

// unlock releases the group in reverse acquisition order.
func (g *lockGroup) unlock() {
	for i := len(g.nodes) - 1; i >= 0; i-- {
		g.nodes[i].mu.Unlock()
	}
}

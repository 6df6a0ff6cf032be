package worker

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/listops/list-walker/pkg/chain"
	"github.com/listops/list-walker/pkg/concurrent"
)

// Deleter repeatedly picks a random position from the advisory length, walks
// to it and deletes whatever node the walk lands on, pausing between rounds.
// It stops once the list is observed empty.
//
// The chosen index is a hint, not a contract: if the list shrinks while the
// deleter walks, the walk may land on a different node or fall off the tail,
// in which case the round is skipped.
type Deleter struct {
	id        int
	list      *chain.List
	interval  time.Duration
	rng       *rand.Rand
	logger    *logrus.Logger
	deletions *concurrent.Counter
}

func NewDeleter(id int, list *chain.List, interval time.Duration, rng *rand.Rand,
	logger *logrus.Logger, deletions *concurrent.Counter) *Deleter {
	return &Deleter{
		id:        id,
		list:      list,
		interval:  interval,
		rng:       rng,
		logger:    logger,
		deletions: deletions,
	}
}

func (d *Deleter) Run() {
	cursor := d.list.NewCursor()

	for {
		length := d.list.Len()
		if length <= 0 {
			break
		}
		target := d.rng.Intn(length)

		_, ok := d.list.PositionAtHead(cursor)
		for i := 0; i < target && ok; i++ {
			_, ok, _ = d.list.Advance(cursor)
		}

		if ok {
			if err := d.list.DeleteCurrent(cursor); err != nil {
				d.logger.Errorf("Deleter %d: delete failed: %v", d.id, err)
			} else {
				d.deletions.Increase()
			}
		}

		time.Sleep(d.interval)
	}

	d.logger.Infof("List empty: deleter %d stopping", d.id)
}

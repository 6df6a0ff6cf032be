package worker

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/listops/list-walker/pkg/chain"
	"github.com/listops/list-walker/pkg/concurrent"
)

// Reader repeatedly walks the whole list head to tail, concatenates the
// payloads it passes and writes the result to the reporting sink as one
// line per completed pass. It stops once the list is observed empty.
type Reader struct {
	id     int
	list   *chain.List
	out    io.Writer
	logger *logrus.Logger
	passes *concurrent.Counter
}

func NewReader(id int, list *chain.List, out io.Writer, logger *logrus.Logger, passes *concurrent.Counter) *Reader {
	return &Reader{
		id:     id,
		list:   list,
		out:    out,
		logger: logger,
		passes: passes,
	}
}

func (r *Reader) Run() {
	cursor := r.list.NewCursor()

	for r.list.Len() > 0 {
		payload, ok := r.list.PositionAtHead(cursor)
		if !ok {
			// list emptied or lost its head while we approached it,
			// nothing to report this round
			continue
		}

		var concatenated strings.Builder
		for ok {
			concatenated.WriteString(payload)
			payload, ok, _ = r.list.Advance(cursor)
		}

		fmt.Fprintf(r.out, "reader %d: %s\n", r.id, concatenated.String())
		r.passes.Increase()
	}

	r.logger.Infof("List empty: reader %d stopping", r.id)
}

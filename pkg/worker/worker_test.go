package worker

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/listops/list-walker/pkg/chain"
	"github.com/listops/list-walker/pkg/concurrent"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func buildList(payloads ...string) *chain.List {
	l := chain.New()
	for i := len(payloads) - 1; i >= 0; i-- {
		l.InsertHead(payloads[i])
	}
	return l
}

func TestDeleterEmptiesList(t *testing.T) {
	l := buildList("abc", "de", "fgh", "ijkl", "mno")
	deletions := concurrent.NewCounter()

	d := NewDeleter(0, l, 0, rand.New(rand.NewSource(1)), newTestLogger(), deletions)
	d.Run()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, int64(5), deletions.Value())
}

func TestWorkersStopImmediatelyOnEmptyList(t *testing.T) {
	l := chain.New()
	passes := concurrent.NewCounter()
	deletions := concurrent.NewCounter()
	var out bytes.Buffer

	r := NewReader(0, l, &out, newTestLogger(), passes)
	d := NewDeleter(0, l, 0, rand.New(rand.NewSource(1)), newTestLogger(), deletions)

	done := make(chan struct{})
	go func() {
		r.Run()
		d.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not stop on an empty list")
	}

	assert.Equal(t, int64(0), passes.Value())
	assert.Equal(t, int64(0), deletions.Value())
	assert.Empty(t, out.String())
}

func TestReaderAndDeleterDrainList(t *testing.T) {
	// distinct fixed-width payloads so reported passes can be decoded
	payloads := make([]string, 30)
	index := map[string]int{}
	for i := range payloads {
		payloads[i] = fmt.Sprintf("ab%03d", i)
		index[payloads[i]] = i
	}
	l := buildList(payloads...)

	passes := concurrent.NewCounter()
	deletions := concurrent.NewCounter()
	var out bytes.Buffer

	r := NewReader(0, l, &out, newTestLogger(), passes)
	d := NewDeleter(0, l, time.Millisecond, rand.New(rand.NewSource(7)), newTestLogger(), deletions)

	concurrent.RunAndWait(r.Run, d.Run)

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, int64(30), deletions.Value())

	// every reported pass is an in-order subsequence of the original
	// head-to-tail payloads
	reported := int64(0)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		reported++
		concatenated := strings.TrimPrefix(line, "reader 0: ")
		assert.Zero(t, len(concatenated)%5, "unexpected report %q", line)

		last := -1
		for i := 0; i < len(concatenated); i += 5 {
			payload := concatenated[i : i+5]
			pos, known := index[payload]
			assert.True(t, known, "unknown payload %q in %q", payload, line)
			assert.True(t, pos > last, "payloads out of order in %q", line)
			last = pos
		}
	}
	assert.Equal(t, passes.Value(), reported)
}

func TestMultipleReadersAndDeleters(t *testing.T) {
	payloads := make([]string, 40)
	for i := range payloads {
		payloads[i] = fmt.Sprintf("cd%03d", i)
	}
	l := buildList(payloads...)

	passes := concurrent.NewCounter()
	deletions := concurrent.NewCounter()

	var workers []func()
	for i := 0; i < 2; i++ {
		r := NewReader(i, l, io.Discard, newTestLogger(), passes)
		workers = append(workers, r.Run)
	}
	for i := 0; i < 2; i++ {
		d := NewDeleter(i, l, time.Millisecond, rand.New(rand.NewSource(int64(i))), newTestLogger(), deletions)
		workers = append(workers, d.Run)
	}

	concurrent.RunAndWait(workers...)

	assert.Equal(t, 0, l.Len())
}

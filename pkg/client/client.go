package client

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/listops/list-walker/pkg/chain"
	"github.com/listops/list-walker/pkg/concurrent"
	"github.com/listops/list-walker/pkg/utils"
	"github.com/listops/list-walker/pkg/worker"
)

// Client describes one demo run: it builds the shared list and drives the
// reader and deleter workers against it until the list is empty.
type Client struct {
	config *Config

	// reporting sink for completed reader passes
	out io.Writer

	passes    *concurrent.Counter
	deletions *concurrent.Counter

	logger *logrus.Logger
}

// NewClient creates a demo client from a validated configuration.
func NewClient(config *Config, logFile string) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config:    config,
		out:       os.Stdout,
		passes:    concurrent.NewCounter(),
		deletions: concurrent.NewCounter(),
		logger:    NewFileLogger(logFile),
	}, nil
}

// Run is the main function of a demo client. It returns once every worker
// has observed an empty list and stopped.
func (c *Client) Run() error {
	seed := c.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	list := c.buildList(rand.New(rand.NewSource(seed)))
	c.logger.Infof("Built list with %v nodes, seed %v", list.Len(), seed)

	var workers []func()
	for i := 0; i < c.config.Readers; i++ {
		reader := worker.NewReader(i, list, c.out, c.logger, c.passes)
		workers = append(workers, reader.Run)
	}
	for i := 0; i < c.config.Deleters; i++ {
		// every worker draws from its own rand source
		rng := rand.New(rand.NewSource(seed + int64(i) + 1))
		deleter := worker.NewDeleter(i, list, c.config.DeleteInterval(), rng, c.logger, c.deletions)
		workers = append(workers, deleter.Run)
	}

	start := time.Now()
	concurrent.RunAndWait(workers...)

	c.logger.Infof("Finished, %v reader passes and %v deletions in %v",
		c.passes.Value(), c.deletions.Value(), time.Since(start).Round(time.Millisecond))
	return nil
}

func (c *Client) buildList(rng *rand.Rand) *chain.List {
	list := chain.New()
	for i := 0; i < c.config.Nodes; i++ {
		list.InsertHead(utils.RandomPayload(rng, c.config.MinPayloadLen, c.config.MaxPayloadLen, c.config.Alphabet))
	}
	return list
}

package client

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Config holds the run parameters of a demo. All values are fixed before the
// workers start.
type Config struct {
	// number of nodes the list is built with
	Nodes int `json:"nodes" yaml:"nodes"`

	// payload length range, inclusive
	MinPayloadLen int `json:"min_payload_len" yaml:"min_payload_len"`
	MaxPayloadLen int `json:"max_payload_len" yaml:"max_payload_len"`

	// characters payloads are drawn from
	Alphabet string `json:"alphabet" yaml:"alphabet"`

	// pause between deletion rounds, in milliseconds
	DeleteIntervalMS int `json:"delete_interval_ms" yaml:"delete_interval_ms"`

	// random seed, 0 means time-based
	Seed int64 `json:"seed" yaml:"seed"`

	// worker counts
	Readers  int `json:"readers" yaml:"readers"`
	Deleters int `json:"deleters" yaml:"deleters"`
}

// NewConfig creates a Config with default values, overridden by the given
// config file if one is provided.
func NewConfig(configFile string) (*Config, error) {
	config := &Config{
		Nodes:            140,
		MinPayloadLen:    3,
		MaxPayloadLen:    9,
		Alphabet:         defaultAlphabet,
		DeleteIntervalMS: 500,
		Readers:          1,
		Deleters:         1,
	}

	if len(configFile) != 0 {
		if err := openAndDecode(configFile, config); err != nil {
			return nil, fmt.Errorf("decode config file %v error: %v", configFile, err)
		}
	}

	return config, nil
}

// DeleteInterval returns the deleter pause as a duration.
func (c *Config) DeleteInterval() time.Duration {
	return time.Duration(c.DeleteIntervalMS) * time.Millisecond
}

// Validate checks that the configuration describes a runnable demo.
func (c *Config) Validate() error {
	if c.Nodes < 0 {
		return fmt.Errorf("nodes must not be negative, got %v", c.Nodes)
	}
	if c.MinPayloadLen <= 0 || c.MaxPayloadLen < c.MinPayloadLen {
		return fmt.Errorf("invalid payload length range [%v, %v]", c.MinPayloadLen, c.MaxPayloadLen)
	}
	if len(c.Alphabet) == 0 {
		return fmt.Errorf("alphabet must not be empty")
	}
	if c.DeleteIntervalMS < 0 {
		return fmt.Errorf("delete interval must not be negative, got %vms", c.DeleteIntervalMS)
	}
	if c.Readers < 0 || c.Deleters < 0 {
		return fmt.Errorf("worker counts must not be negative, got %v readers and %v deleters", c.Readers, c.Deleters)
	}
	if c.Nodes > 0 && c.Deleters == 0 {
		return fmt.Errorf("at least one deleter is required for a non-empty list, otherwise readers never finish")
	}
	return nil
}

// Open yaml/json file and decode into target interface
func openAndDecode(filePath string, target interface{}) error {
	if !strings.HasSuffix(filePath, ".yaml") &&
		!strings.HasSuffix(filePath, ".yml") &&
		!strings.HasSuffix(filePath, ".json") {
		return fmt.Errorf("only one of yaml/yml/json format is supported")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("file %v not exist: %v", filePath, err)
	}

	file, err := os.OpenFile(filePath, os.O_RDONLY, 0666)
	if err != nil {
		return fmt.Errorf("open file %v error: %v", filePath, err)
	}
	defer file.Close()

	if strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml") {
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(target); err != nil {
			return fmt.Errorf("unmarshal config error: %v", err)
		}
	} else {
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(target); err != nil {
			return fmt.Errorf("unmarshal config error: %v", err)
		}
	}

	return nil
}

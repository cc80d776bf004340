// Package config loads reader-profile configuration: the reader's address,
// connection timeouts, which ROSpecs to install at startup, and where to
// keep the audit log, from a YAML file.
package config

import (
	"fmt"
	"time"

	"github.com/esitarski/llrp-go/toolutils"
)

// Config describes one reader a client should manage.
type Config struct {
	// Name is a human-readable label for this reader, used in logs.
	Name string `json:"name"`
	// Address is the reader's LLRP endpoint, host:port.
	Address string `json:"address"`
	// ConnectTimeout_ms bounds the initial handshake.
	ConnectTimeout_ms uint64 `json:"connect_timeout_ms"`
	// TransactTimeout_ms bounds each request/response round trip.
	TransactTimeout_ms uint64 `json:"transact_timeout_ms"`
	// AuditLogPath, if set, records every sent/received message to a
	// SQLite database at this path.
	AuditLogPath string `json:"audit_log_path"`
	// ROSpecs to ADD_ROSPEC and ENABLE_ROSPEC at startup, in order.
	ROSpecs []ROSpecProfile `json:"rospecs"`
}

// ROSpecProfile is the subset of an ROSpec a profile needs to spell out;
// fields left zero take the reader's own defaults.
type ROSpecProfile struct {
	ROSpecID           uint32 `json:"rospec_id"`
	Priority           uint8  `json:"priority"`
	AntennaIDs         []uint16 `json:"antenna_ids"`
	DurationSec        uint64 `json:"duration_sec"`
	ReportEveryNTags   uint16 `json:"report_every_n_tags"`
}

// DefaultConfig returns a Config with the timeouts the rest of the module
// uses when a profile doesn't override them.
func DefaultConfig() *Config {
	return &Config{
		ConnectTimeout_ms:  5000,
		TransactTimeout_ms: 10000,
	}
}

// ConnectTimeout is ConnectTimeout_ms as a time.Duration.
func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeout_ms) * time.Millisecond
}

// TransactTimeout is TransactTimeout_ms as a time.Duration.
func (c *Config) TransactTimeout() time.Duration {
	return time.Duration(c.TransactTimeout_ms) * time.Millisecond
}

// Validate checks the fields Load cannot fill in on its own.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("config: address must be set")
	}
	if c.ConnectTimeout() <= 0 {
		return fmt.Errorf("config: connect_timeout_ms must be positive")
	}
	if c.TransactTimeout() <= 0 {
		return fmt.Errorf("config: transact_timeout_ms must be positive")
	}
	seen := map[uint32]bool{}
	for _, r := range c.ROSpecs {
		if r.ROSpecID == 0 {
			return fmt.Errorf("config: rospec_id must be nonzero")
		}
		if seen[r.ROSpecID] {
			return fmt.Errorf("config: duplicate rospec_id %d", r.ROSpecID)
		}
		seen[r.ROSpecID] = true
	}
	return nil
}

// Load reads and validates a Config from a YAML file at path.
func Load(path string) (*Config, error) {
	c := DefaultConfig()
	toolutils.ReadYaml(c, path)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

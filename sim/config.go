// sim/config.go
package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioConfig describes a runnable scenario end to end: the topology
// shape, cache/IP-mode settings, owned data, and each client's request
// schedule. Loaded from YAML with strict (KnownFields) parsing.
type ScenarioConfig struct {
	Topology   string         `yaml:"topology"` // "chain" | "star"
	Routers    int            `yaml:"routers"`
	CacheSize  int            `yaml:"cache_size"`
	SimulateIP bool           `yaml:"simulate_ip"`
	Data       map[string]int `yaml:"data"`
	Clients    []ClientConfig `yaml:"clients"`
	RunUntil   int64          `yaml:"run_until"`
	Star       *StarConfig    `yaml:"star,omitempty"`
}

// ClientConfig describes one client's attachment point and request
// schedule.
type ClientConfig struct {
	ID           string   `yaml:"id"`
	AttachTo     string   `yaml:"attach_to"`
	Requests     []string `yaml:"requests"`
	RequestDelay int64    `yaml:"request_delay"`
}

// StarConfig carries the extra parameters a star topology needs beyond
// the common ScenarioConfig fields.
type StarConfig struct {
	Clusters           int `yaml:"clusters"`
	ClusterClients     int `yaml:"cluster_clients"`
	ClientToRouterHops int `yaml:"client_to_router_hops"`
}

// LoadScenario reads and strictly parses a YAML scenario file.
// Unrecognized keys (typos) are rejected outright.
func LoadScenario(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario config: %w", err)
	}
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the scenario for obviously-fatal misconfiguration
// before a topology is built from it.
func (c *ScenarioConfig) Validate() error {
	switch c.Topology {
	case "chain":
		if c.Routers < 2 {
			return fmt.Errorf("chain topology requires routers >= 2, got %d", c.Routers)
		}
	case "star":
		if c.Star == nil {
			return fmt.Errorf("star topology requires a star: block")
		}
		if c.Star.Clusters < 1 {
			return fmt.Errorf("star topology requires clusters >= 1, got %d", c.Star.Clusters)
		}
	default:
		return fmt.Errorf("unknown topology %q (want chain or star)", c.Topology)
	}
	if len(c.Clients) == 0 {
		return fmt.Errorf("scenario must configure at least one client")
	}
	if c.RunUntil <= 0 {
		return fmt.Errorf("run_until must be positive, got %d", c.RunUntil)
	}
	return nil
}

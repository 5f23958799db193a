// cmd/routes.go
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ccn-sim/ccn-sim/sim"
	"github.com/ccn-sim/ccn-sim/sim/topology"
)

func sortedNames(fib *sim.FIB) []string {
	names := fib.Names()
	sort.Strings(names)
	return names
}

var (
	routesScenarioPath string
	routesRouters      int
	routesFormat       string
)

// routesCmd builds a topology, runs the routing broadcast, and dumps the
// resulting FIB of every router — a read-only diagnostic.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Build a topology and print each router's FIB",
	Run: func(cmd *cobra.Command, args []string) {
		var cfg *sim.ScenarioConfig
		if routesScenarioPath != "" {
			loaded, err := sim.LoadScenario(routesScenarioPath)
			if err != nil {
				logrus.Fatalf("loading scenario: %v", err)
			}
			cfg = loaded
		} else {
			cfg = &sim.ScenarioConfig{
				Topology: "chain",
				Routers:  routesRouters,
				Data:     map[string]int{"data/0": 0},
				RunUntil: 1,
			}
		}

		var routers []*sim.Node
		switch cfg.Topology {
		case "star":
			star, err := topology.NewStar(cfg.Star.Clusters, cfg.Star.ClusterClients, cfg.Star.ClientToRouterHops, cfg.CacheSize, cfg.SimulateIP, cfg.Data)
			if err != nil {
				logrus.Fatalf("building star topology: %v", err)
			}
			routers = append(star.Routers, star.Server)
		default:
			chain, err := topology.NewChain(cfg.Routers, cfg.CacheSize, cfg.SimulateIP, cfg.Data)
			if err != nil {
				logrus.Fatalf("building chain topology: %v", err)
			}
			routers = chain.Routers
		}

		sort.Slice(routers, func(i, j int) bool { return routers[i].ID < routers[j].ID })

		if routesFormat == "yaml" {
			dumpRoutesYAML(routers)
			return
		}
		dumpRoutesText(routers)
	},
}

type routeRow struct {
	Name     string `yaml:"name"`
	NextHop  string `yaml:"next_hop"`
	Distance int64  `yaml:"distance"`
}

func dumpRoutesText(routers []*sim.Node) {
	for _, r := range routers {
		fmt.Printf("%s:\n", r.ID)
		for _, name := range sortedNames(r.FIB) {
			entry, _ := r.FIB.Lookup(name)
			fmt.Printf("  %s -> %s (distance %d)\n", name, entry.NextHop, entry.Distance)
		}
	}
}

func dumpRoutesYAML(routers []*sim.Node) {
	out := make(map[string][]routeRow, len(routers))
	for _, r := range routers {
		rows := make([]routeRow, 0, r.FIB.Len())
		for _, name := range sortedNames(r.FIB) {
			entry, _ := r.FIB.Lookup(name)
			rows = append(rows, routeRow{Name: name, NextHop: entry.NextHop, Distance: entry.Distance})
		}
		out[r.ID] = rows
	}
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(out); err != nil {
		logrus.Fatalf("encoding routes: %v", err)
	}
}

func init() {
	routesCmd.Flags().StringVar(&routesScenarioPath, "scenario", "", "Path to a YAML scenario config")
	routesCmd.Flags().IntVar(&routesRouters, "routers", 100, "Number of routers in the chain topology")
	routesCmd.Flags().StringVar(&routesFormat, "format", "text", "Output format: text or yaml")
}

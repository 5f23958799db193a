// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccn-sim/ccn-sim/sim"
	"github.com/ccn-sim/ccn-sim/sim/export"
	"github.com/ccn-sim/ccn-sim/sim/topology"
)

var (
	scenarioPath string
	nRouters     int
	cacheSize    int
	simulateIP   bool
	runUntil     int64
	requestDelay int64
	logLevel     string
	outPath      string
)

var rootCmd = &cobra.Command{
	Use:   "ccn-sim",
	Short: "Discrete-event simulator for a Content-Centric Networking overlay",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a CCN simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		var cfg *sim.ScenarioConfig
		if scenarioPath != "" {
			loaded, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("loading scenario: %v", err)
			}
			cfg = loaded
		} else {
			cfg = &sim.ScenarioConfig{
				Topology:   "chain",
				Routers:    nRouters,
				CacheSize:  cacheSize,
				SimulateIP: simulateIP,
				Data:       map[string]int{"data/0": 0},
				Clients: []sim.ClientConfig{
					{ID: "c-0", Requests: []string{"data/0", "data/0"}, RequestDelay: requestDelay},
				},
				RunUntil: runUntil,
			}
		}

		logrus.Infof("starting %s simulation: runUntil=%d simulateIP=%v", cfg.Topology, cfg.RunUntil, cfg.SimulateIP)

		clients, routers := buildAndRun(cfg)

		metrics := sim.ComputeMetrics(clients)
		metrics.Print()

		if outPath != "" {
			if err := export.WriteHistories(outPath, routers, clients); err != nil {
				logrus.Fatalf("exporting history: %v", err)
			}
		}
		logrus.Info("simulation complete")
	},
}

// buildAndRun constructs the topology named by cfg.Topology, registers
// every node with a fresh Scheduler, and runs it to cfg.RunUntil.
func buildAndRun(cfg *sim.ScenarioConfig) (clients []*sim.Node, routers []*sim.Node) {
	scheduler := sim.NewScheduler()

	switch cfg.Topology {
	case "star":
		star, err := topology.NewStar(cfg.Star.Clusters, cfg.Star.ClusterClients, cfg.Star.ClientToRouterHops, cfg.CacheSize, cfg.SimulateIP, cfg.Data)
		if err != nil {
			logrus.Fatalf("building star topology: %v", err)
		}
		routers = append(star.Routers, star.Server)
		clients = star.Clients
	default:
		chain, err := topology.NewChain(cfg.Routers, cfg.CacheSize, cfg.SimulateIP, cfg.Data)
		if err != nil {
			logrus.Fatalf("building chain topology: %v", err)
		}
		routers = chain.Routers
		clients = []*sim.Node{chain.Client}
	}

	for _, r := range routers {
		scheduler.RunNode(r)
	}
	routerByID := make(map[string]*sim.Node, len(routers))
	for _, r := range routers {
		routerByID[r.ID] = r
	}
	clientByID := make(map[string]*sim.Node, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}
	for _, cc := range cfg.Clients {
		client, ok := clientByID[cc.ID]
		if !ok {
			// A scenario may place clients the builder didn't create;
			// attach them to the router named by attach_to.
			router, found := routerByID[cc.AttachTo]
			if !found {
				logrus.Fatalf("scenario client %q: attach_to %q does not name a router", cc.ID, cc.AttachTo)
			}
			client = topology.AttachClient(cc.ID, router, cfg.SimulateIP)
			clients = append(clients, client)
		}
		scheduler.RunClient(client, cc.Requests, cc.RequestDelay)
	}

	scheduler.RunUntil(cfg.RunUntil)
	return clients, routers
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario config (overrides discrete flags below)")
	runCmd.Flags().IntVar(&nRouters, "routers", 100, "Number of routers in the chain topology")
	runCmd.Flags().IntVar(&cacheSize, "cache", 5, "Content cache capacity per router (0 disables caching)")
	runCmd.Flags().BoolVar(&simulateIP, "simulate-ip", false, "Disable PIT aggregation to approximate plain IP forwarding (caching is set separately by --cache)")
	runCmd.Flags().Int64Var(&runUntil, "run-until", 100, "Simulated tick at which the run stops")
	runCmd.Flags().Int64Var(&requestDelay, "request-delay", 5, "Ticks between a client's successive requests")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&outPath, "out", "", "If set, write CSV history under output/<out>/")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(routesCmd)
}

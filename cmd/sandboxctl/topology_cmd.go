package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SynapticNetworks/sandbox-engine/network"
)

// newTopologyCmd builds a topology and reports its structural statistics
// without stepping the simulation, for inspecting connectivity and
// excitatory/inhibitory balance before committing to a full run.
func newTopologyCmd() *cobra.Command {
	cfg := defaultRunConfig()

	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Build a topology and report its structure without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			net := network.New()
			net.Seed(cfg.Seed)
			if err := buildTopology(net, cfg); err != nil {
				return err
			}

			excitatory, inhibitory := 0, 0
			for _, n := range net.Neurons() {
				if n.Excitatory() {
					excitatory++
				} else {
					inhibitory++
				}
			}

			stats := net.GetNetworkStats()
			fmt.Printf("topology=%q neurons=%d (excitatory=%d inhibitory=%d) synapses=%d connectivity=%.3f\n",
				cfg.Topology, len(net.Neurons()), excitatory, inhibitory, stats.TotalSynapses, stats.Connectivity)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Topology, "topology", cfg.Topology, "random|feedforward|ring|small-world|cortical-column")
	cmd.Flags().IntVar(&cfg.Size, "size", cfg.Size, "neuron count (ignored by cortical-column)")
	cmd.Flags().Float64Var(&cfg.ConnectProb, "connect-probability", cfg.ConnectProb, "edge/rewire probability, where applicable")
	cmd.Flags().Float64Var(&cfg.InhibitoryFraction, "inhibitory-fraction", cfg.InhibitoryFraction, "fraction of neurons marked inhibitory under Dale's principle")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for topology construction")

	return cmd
}

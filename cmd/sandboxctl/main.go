// Command sandboxctl drives the spiking-network engine from the command
// line: build a topology, run it for a fixed duration, and report summary
// statistics. It exists as an external, scriptable collaborator alongside
// the simulator package's interactive play/pause/reset loop.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sandboxctl",
		Short: "Build and run spiking neural network topologies headlessly",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newResetDemoCmd())
	root.AddCommand(newTopologyCmd())
	return root
}

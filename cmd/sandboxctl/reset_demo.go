package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetDemoCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "reset-demo",
		Short: "Write out a starter TOML config for the cortical-column demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeRunConfig(outPath, demoRunConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote demo config to %s; run it with: sandboxctl run --config %s\n", outPath, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "sandbox-demo.toml", "path to write the demo config file to")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scbunn/neomodel/graph"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Verify connectivity to the graph database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := graph.NewNeo4jClient(cfg.Graph.ClientConfig())
		if err != nil {
			return err
		}

		logger.Debug(ctx, "connecting", "uri", cfg.Graph.URI)
		if err := client.Connect(ctx); err != nil {
			return err
		}
		defer client.Close(ctx)

		if err := client.Verify(ctx); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "connected to %s\n", cfg.Graph.URI)
		return nil
	},
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scbunn/neomodel/graph"
	"github.com/scbunn/neomodel/model"
	"github.com/scbunn/neomodel/types"
)

var (
	findLabel string
	findLimit int
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "List nodes, optionally scoped to a label",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := graph.NewNeo4jClient(cfg.Graph.ClientConfig())
		if err != nil {
			return err
		}
		if err := client.Connect(ctx); err != nil {
			return err
		}
		defer client.Close(ctx)

		store := model.NewStore(client, model.NewRegistry(),
			model.WithLogger(logger.Slog()))

		nodes, err := store.Find(ctx, model.FindOptions{
			Label: findLabel,
			Limit: findLimit,
		})
		if err != nil {
			if types.HasCode(err, types.MODEL_NO_RESULTS) {
				fmt.Fprintln(cmd.OutOrStdout(), "no nodes found")
				return nil
			}
			return err
		}

		for _, node := range nodes {
			doc, err := json.Marshal(node.Document())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		}
		return nil
	},
}

func init() {
	findCmd.Flags().StringVarP(&findLabel, "label", "l", "", "label to scope the match to")
	findCmd.Flags().IntVarP(&findLimit, "limit", "n", 25, "maximum number of nodes to return")
}

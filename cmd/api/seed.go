package main

import (
	"github.com/spf13/cobra"

	"pallet-returns-dashboard/internal/database"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample return requests into an empty collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			n, err := database.SeedReturns(cmd.Context(), a.store, a.log)
			if err != nil {
				return err
			}
			a.log.WithField("inserted", n).Info("Seeding finished")
			return nil
		},
	}
}

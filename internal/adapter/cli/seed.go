package cli

import (
	"fmt"

	"hero_seguros/internal/infrastructure/seed"
	"hero_seguros/internal/infrastructure/wiring"

	"github.com/spf13/cobra"
)

func seedCmd(a *app) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "seed",
		Short: "Load destinations, risk factors and plans from a TOML or YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := seed.Load(file)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return a.withRepositories(ctx, func(repos *wiring.Repositories) error {
				uc := useCases(repos)
				res, err := seed.Apply(ctx, f, seed.Targets{
					Destinations: uc.Destinations,
					RiskFactors:  uc.RiskFactors,
					Plans:        uc.Plans,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "destinations: %d created, %d skipped\nrisk factors: %d created\nplans: %d created, %d skipped\n",
					res.DestinationsCreated, res.DestinationsSkipped, res.RiskFactorsCreated, res.PlansCreated, res.PlansSkipped)
				return nil
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "seed file (.toml, .yaml or .yml)")
	_ = c.MarkFlagRequired("file")
	return c
}

package cli

import (
	"fmt"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/pricing"
	"hero_seguros/internal/infrastructure/wiring"
	"hero_seguros/internal/usecase"

	"github.com/spf13/cobra"
)

func expireCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expire",
		Short: "Mark pending quotations whose trip has ended as expired",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return a.withRepositories(ctx, func(repos *wiring.Repositories) error {
				n, err := useCases(repos).Quotations.ExpireOverdue(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "expired %d quotations\n", n)
				return nil
			})
		},
	}
}

func quoteCmd(a *app) *cobra.Command {
	var destination, plan, start, end string
	var travelers int

	c := &cobra.Command{
		Use:   "quote",
		Short: "Price a trip without storing a quotation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate, err := entities.ParseDate(start)
			if err != nil {
				return err
			}
			endDate, err := entities.ParseDate(end)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return a.withRepositories(ctx, func(repos *wiring.Repositories) error {
				destinationID := destination
				// --destination also accepts a country code.
				if d, err := repos.Destinations.GetByCode(ctx, entities.NormalizeDestinationCode(destination)); err == nil && d.ID != "" {
					destinationID = d.ID
				}

				b, err := useCases(repos).Quotations.Quote(ctx, usecase.QuotationInput{
					DestinationID: destinationID,
					PlanID:        plan,
					StartDate:     startDate,
					EndDate:       endDate,
					Travelers:     travelers,
				})
				if err != nil {
					return err
				}
				printBreakdown(cmd, b)
				return nil
			})
		},
	}

	c.Flags().StringVar(&destination, "destination", "", "destination id or code")
	c.Flags().StringVar(&plan, "plan", "", "plan id")
	c.Flags().StringVar(&start, "start", "", "trip start date (YYYY-MM-DD)")
	c.Flags().StringVar(&end, "end", "", "trip end date (YYYY-MM-DD)")
	c.Flags().IntVar(&travelers, "travelers", 1, "number of travelers")
	for _, f := range []string{"destination", "plan", "start", "end"} {
		_ = c.MarkFlagRequired(f)
	}
	return c
}

func printBreakdown(cmd *cobra.Command, b pricing.Breakdown) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "days:            %d\n", b.Days)
	fmt.Fprintf(out, "travelers:       %d\n", b.Travelers)
	fmt.Fprintf(out, "daily rate:      %s\n", b.DailyRate.StringFixed(pricing.MoneyPlaces))
	fmt.Fprintf(out, "base premium:    %s\n", b.BasePremium.StringFixed(pricing.MoneyPlaces))
	fmt.Fprintf(out, "risk multiplier: %s\n", b.RiskMultiplier.String())
	fmt.Fprintf(out, "final premium:   %s\n", pricing.RoundMoney(b.FinalPremium).StringFixed(pricing.MoneyPlaces))
}

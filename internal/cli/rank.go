package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

func rankNeighborhoodsCmd(opts *options) *cobra.Command {
	weights := valueobject.EqualWeights()
	budget := newDecimalFlag("0")
	var minBedrooms int

	cmd := &cobra.Command{
		Use:   "rank-neighborhoods",
		Short: "Rank neighborhoods by weighted priorities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCases()
			if err != nil {
				return err
			}
			resp, err := uc.RankNeighborhoods.Execute(cmd.Context(), dto.RankNeighborhoodsRequest{
				Weights:     weights,
				Budget:      budget.value,
				MinBedrooms: minBedrooms,
			})
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tAREA\tSCORE\tBONUS\tNOTES")
			for _, r := range resp.Results {
				var notes []string
				if r.EnvironmentDefaulted {
					notes = append(notes, "no risk data")
				}
				if r.AboveScale {
					notes = append(notes, "above 100")
				}
				fmt.Fprintf(tw, "%d\t%s\t%.2f\t%+.0f\t%s\n", r.Rank, r.Area, r.Score, r.Bonus, strings.Join(notes, ", "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&weights.Safety, "safety", 1, "safety weight")
	cmd.Flags().Float64Var(&weights.Schools, "schools", 1, "schools weight")
	cmd.Flags().Float64Var(&weights.Healthcare, "healthcare", 1, "healthcare weight")
	cmd.Flags().Float64Var(&weights.Shopping, "shopping", 1, "shopping weight")
	cmd.Flags().Float64Var(&weights.Transportation, "transportation", 1, "transportation weight")
	cmd.Flags().Float64Var(&weights.Environmental, "environmental", 1, "environmental weight")
	cmd.Flags().Var(budget, "budget", "budget in SAR; areas with a listing within it get a bonus")
	cmd.Flags().IntVar(&minBedrooms, "min-bedrooms", 0, "areas with a listing this large get a bonus")
	return cmd
}

func rankOffersCmd(opts *options) *cobra.Command {
	var req dto.RankFinancingRequest
	price := newDecimalFlag("0")

	cmd := &cobra.Command{
		Use:   "rank-offers",
		Short: "Rank bank financing offers against borrower preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCases()
			if err != nil {
				return err
			}
			req.Price = price.value
			req.Language = opts.lang
			resp, err := uc.RankFinancingOffers.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tBANK\tSCORE\tRATE\tMONTHLY\tREASONS")
			for _, r := range resp.Results {
				monthly := "-"
				if r.EstimatedMonthlyPayment != nil {
					monthly = sar(*r.EstimatedMonthlyPayment)
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f%%\t%s\t%s\n",
					r.Rank, r.Offer.Bank, r.Score, r.Offer.InterestRate, monthly, strings.Join(r.Reasons, ", "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&req.PreferredTermYears, "term", 25, "preferred term in years")
	cmd.Flags().Float64Var(&req.PreferredDownPaymentPercent, "down", 20, "preferred down payment percent")
	cmd.Flags().StringVar(&req.RatePreference, "rate-pref", "", "FIXED, VARIABLE or ISLAMIC")
	cmd.Flags().StringVar(&req.EmploymentType, "employment", "", "GOVERNMENT, PRIVATE, SELF_EMPLOYED or RETIRED")
	cmd.Flags().StringVar(&req.PurchasePurpose, "purpose", "", "FIRST_HOME, INVESTMENT or UPGRADE")
	cmd.Flags().Var(price, "price", "property price in SAR for payment estimates")
	return cmd
}

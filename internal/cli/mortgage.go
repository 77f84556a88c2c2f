package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/pkg/money"
)

type mortgageFlags struct {
	propertyID string
	price      *decimalFlag
	down       *decimalFlag
	rate       *decimalFlag
	income     *decimalFlag
	years      int
}

func bindMortgageFlags(cmd *cobra.Command) *mortgageFlags {
	f := &mortgageFlags{
		price:  newDecimalFlag("0"),
		down:   newDecimalFlag("20"),
		rate:   newDecimalFlag("3.5"),
		income: newDecimalFlag("0"),
	}
	cmd.Flags().StringVar(&f.propertyID, "property", "", "use the price of this listing id")
	cmd.Flags().Var(f.price, "price", "property price in SAR")
	cmd.Flags().Var(f.down, "down", "down payment percent")
	cmd.Flags().Var(f.rate, "rate", "annual interest rate percent")
	cmd.Flags().Var(f.income, "income", "monthly income in SAR for an affordability verdict")
	cmd.Flags().IntVar(&f.years, "years", 25, "loan term in years")
	return f
}

func (f *mortgageFlags) request(lang string) dto.MortgageRequest {
	return dto.MortgageRequest{
		PropertyID:         f.propertyID,
		Price:              f.price.value,
		DownPaymentPercent: f.down.value,
		AnnualRatePercent:  f.rate.value,
		TermYears:          f.years,
		MonthlyIncome:      f.income.value,
		Language:           lang,
	}
}

func mortgageCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Compute the monthly payment and totals of a fixed-rate mortgage",
		Args:  cobra.NoArgs,
	}
	flags := bindMortgageFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		uc, err := opts.useCases()
		if err != nil {
			return err
		}
		resp, err := uc.CalculateMortgage.Execute(cmd.Context(), flags.request(opts.lang))
		if err != nil {
			return err
		}
		if opts.asJSON {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		return printSummary(cmd.OutOrStdout(), resp)
	}
	return cmd
}

func scheduleCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the yearly amortization schedule of a mortgage",
		Args:  cobra.NoArgs,
	}
	flags := bindMortgageFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		uc, err := opts.useCases()
		if err != nil {
			return err
		}
		resp, err := uc.GenerateSchedule.Execute(cmd.Context(), flags.request(opts.lang))
		if err != nil {
			return err
		}
		if opts.asJSON {
			return writeJSON(cmd.OutOrStdout(), resp)
		}

		if err := printSummary(cmd.OutOrStdout(), resp.Summary); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "YEAR\tPRINCIPAL\tINTEREST\tPAID\tBALANCE\t")
		for _, y := range resp.Years {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", y.Year,
				y.Principal.StringFixed(2), y.Interest.StringFixed(2),
				y.TotalPaid.StringFixed(2), y.RemainingBalance.StringFixed(2))
		}
		return tw.Flush()
	}
	return cmd
}

func sar(d decimal.Decimal) string {
	return money.NewSAR(d).Display()
}

func printSummary(w io.Writer, s dto.MortgageSummaryResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Price\t%s\n", sar(s.Price))
	fmt.Fprintf(tw, "Down payment\t%s\n", sar(s.DownPayment))
	fmt.Fprintf(tw, "Loan amount\t%s\n", sar(s.LoanAmount))
	fmt.Fprintf(tw, "Monthly payment\t%s\n", s.MonthlyPaymentDisplay)
	fmt.Fprintf(tw, "Total payment\t%s\n", sar(s.TotalPayment.Round(2)))
	fmt.Fprintf(tw, "Total interest\t%s\n", sar(s.TotalInterest.Round(2)))
	fmt.Fprintf(tw, "Payments\t%d\n", s.NumPayments)
	if a := s.Affordability; a != nil {
		fmt.Fprintf(tw, "Affordability\t%s (%s%% of income)\n", a.Label, a.DebtToIncome.StringFixed(1))
	}
	return tw.Flush()
}

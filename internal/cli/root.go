// Package cli implements suhailctl, which runs the calculation engines
// against a catalog without starting the service.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/suhailre/suhail/internal/application/usecase"
	"github.com/suhailre/suhail/internal/infrastructure/catalog"
	"github.com/suhailre/suhail/pkg/observability"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	_ = godotenv.Load()
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	catalogFile string
	lang        string
	asJSON      bool
	verbose     bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "suhailctl",
		Short:        "Suhail real-estate calculations from the command line",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			observability.InitLogger(observability.LogConfig{
				Level:  level,
				Format: "text",
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", os.Getenv("CATALOG_FILE"), "catalog YAML file (built-in Riyadh seed when empty)")
	cmd.PersistentFlags().StringVar(&opts.lang, "lang", "en", "output language for labels (en or ar)")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		mortgageCmd(opts),
		scheduleCmd(opts),
		rankNeighborhoodsCmd(opts),
		rankOffersCmd(opts),
		catalogCmd(opts),
		devCertCmd(),
	)
	return cmd
}

func (o *options) loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(o.catalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// useCases builds the use cases over the catalog. Events and chat are not
// wired for the CLI.
func (o *options) useCases() (*usecase.Set, error) {
	cat, err := o.loadCatalog()
	if err != nil {
		return nil, err
	}
	return usecase.NewSet(usecase.Dependencies{Catalog: cat}), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// decimalFlag is a pflag.Value holding a decimal amount.
type decimalFlag struct {
	value decimal.Decimal
}

func newDecimalFlag(def string) *decimalFlag {
	return &decimalFlag{value: decimal.RequireFromString(def)}
}

func (f *decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", s)
	}
	f.value = d
	return nil
}

func (f *decimalFlag) String() string { return f.value.String() }

func (f *decimalFlag) Type() string { return "decimal" }

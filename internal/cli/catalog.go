package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/suhailre/suhail/pkg/tlsutil"
)

func catalogCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the reference catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Parse the catalog and check the joins between its tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			if err := cat.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return errors.New("catalog has missing joins")
			}

			ctx := cmd.Context()
			properties, _ := cat.Properties(ctx)
			neighborhoods, _ := cat.Neighborhoods(ctx)
			offers, _ := cat.FinancingOffers(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d properties, %d neighborhoods, %d financing offers\n",
				len(properties), len(neighborhoods), len(offers))
			return nil
		},
	})
	return cmd
}

func devCertCmd() *cobra.Command {
	var hosts []string
	var outDir string

	cmd := &cobra.Command{
		Use:   "dev-cert",
		Short: "Write a self-signed certificate for local gRPC TLS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			certFile, keyFile, err := tlsutil.GenerateDevCertificate(hosts, outDir)
			if err != nil {
				return fmt.Errorf("generate certificate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "GRPC_TLS_CERT_FILE=%s\nGRPC_TLS_KEY_FILE=%s\n",
				filepath.Clean(certFile), filepath.Clean(keyFile))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&hosts, "hosts", []string{"localhost", "127.0.0.1"}, "DNS names and IPs the certificate is valid for")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}

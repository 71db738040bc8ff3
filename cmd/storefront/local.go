package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mzansi-thrift/storefront/pkg/sautil"
)

func newQuoteShippingCmd() *cobra.Command {
	var province, weight string

	cmd := &cobra.Command{
		Use:   "quote-shipping",
		Short: "Quote courier delivery to a province (offline)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kg, err := decimal.NewFromString(weight)
			if err != nil || kg.IsNegative() {
				return fmt.Errorf("invalid --weight %q", weight)
			}
			cost := sautil.CalculateShipping(province, kg)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", sautil.FormatCurrency(cost))
			return nil
		},
	}

	cmd.Flags().StringVar(&province, "province", "", "One of: "+strings.Join(sautil.Provinces, ", "))
	cmd.Flags().StringVar(&weight, "weight", "0", "Parcel weight in kg")
	_ = cmd.MarkFlagRequired("province")
	return cmd
}

func newFormatPhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format-phone <number>",
		Short: "Validate a South African phone number and print it in +27 form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sautil.ValidatePhone(args[0]) {
				return fmt.Errorf("%q is not a South African phone number", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), sautil.FormatPhone(args[0]))
			return nil
		},
	}
}

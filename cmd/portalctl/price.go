package main

import (
	"fmt"
	"text/tabwriter"

	"alu_portal/internal/domain/documents"
	"alu_portal/internal/domain/entities"
	"alu_portal/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func priceCmd() *cobra.Command {
	var (
		unitPrice      string
		weightPerMeter string
		length         int
		qty            int
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a cut without touching any store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := decimal.NewFromString(unitPrice)
			if err != nil {
				return fmt.Errorf("invalid --unit-price %q: %w", unitPrice, err)
			}
			weight, err := decimal.NewFromString(weightPerMeter)
			if err != nil {
				return fmt.Errorf("invalid --weight-per-meter %q: %w", weightPerMeter, err)
			}
			if err := pricing.Validate(length, qty); err != nil {
				return err
			}

			q := pricing.Price(price, weight, length, qty)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Length:\t%s\n", documents.FormatLength(length))
			fmt.Fprintf(tw, "Quantity:\t%d\n", qty)
			fmt.Fprintf(tw, "Custom cut:\t%s\n", yesNo(q.IsCustom))
			fmt.Fprintf(tw, "Line total:\t%s\n", documents.FormatAmount(q.LineTotal))
			fmt.Fprintf(tw, "Weight:\t%s kg\n", q.WeightKg.StringFixed(3))
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&unitPrice, "unit-price", "", "Price of one standard 6m bar")
	cmd.Flags().StringVar(&weightPerMeter, "weight-per-meter", "0", "Weight in kg per meter")
	cmd.Flags().IntVar(&length, "length", entities.StandardLengthMM, "Cut length in mm")
	cmd.Flags().IntVar(&qty, "qty", 1, "Number of pieces")
	_ = cmd.MarkFlagRequired("unit-price")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

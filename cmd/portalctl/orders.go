package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"alu_portal/internal/app"
	"alu_portal/internal/domain/documents"
	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase"

	"github.com/spf13/cobra"
)

func ordersCmd(open containerOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders and move them through fulfillment",
	}
	cmd.AddCommand(ordersListCmd(open))
	cmd.AddCommand(ordersStatusCmd(open))
	return cmd
}

func ordersListCmd(open containerOpener) *cobra.Command {
	var filter usecase.OrderFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, open, func(c *app.Container) error {
				orders, err := c.OrderStatus.ListOrders(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if len(orders) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No orders.")
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "REF\tCUSTOMER\tSTATUS\tTOTAL\tITEMS\tCREATED\tID")
				for _, o := range orders {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
						o.RefNumber, o.CustomerName, o.Status, documents.FormatAmount(o.TotalPrice),
						len(o.Items), o.CreatedAt.Format(time.DateTime), o.ID)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&filter.Status, "status", "", "all, pending, processing, delivered or cancelled")
	cmd.Flags().StringVarP(&filter.Query, "q", "q", "", "Ref number or customer substring")
	cmd.Flags().StringVar(&filter.Customer, "customer", "", "Exact customer name")
	return cmd
}

func ordersStatusCmd(open containerOpener) *cobra.Command {
	var (
		version int64
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Change an order status and wait until it is stored",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, open, func(c *app.Container) error {
				order, write, err := c.OrderStatus.UpdateStatus(cmd.Context(), args[0], entities.OrderStatus(args[1]), version)
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				if timeout > 0 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, timeout)
					defer cancel()
				}
				if err := write.Wait(ctx); err != nil {
					return fmt.Errorf("status write for %s: %w", order.RefNumber, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", order.RefNumber, order.Status)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&version, "version", 0, "Expected order version (0 skips the check)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "How long to wait for the store")
	return cmd
}

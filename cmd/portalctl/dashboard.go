package main

import (
	"fmt"
	"text/tabwriter"

	"alu_portal/internal/app"
	"alu_portal/internal/domain/documents"
	"alu_portal/internal/domain/entities"

	"github.com/spf13/cobra"
)

var dashboardStatuses = []entities.OrderStatus{
	entities.OrderStatusPending,
	entities.OrderStatusProcessing,
	entities.OrderStatusDelivered,
	entities.OrderStatusCancelled,
}

func dashboardCmd(open containerOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Order counts and booked revenue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, open, func(c *app.Container) error {
				m, err := c.OrderStatus.Metrics(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintf(tw, "Total orders:\t%d\n", m.TotalOrders)
				fmt.Fprintf(tw, "Pending:\t%d\n", m.PendingCount)
				fmt.Fprintf(tw, "Booked revenue:\t%s\n", documents.FormatAmount(m.BookedRevenue))
				for _, s := range dashboardStatuses {
					fmt.Fprintf(tw, "  %s:\t%d\n", s, m.ByStatus[s])
				}
				return tw.Flush()
			})
		},
	}
}

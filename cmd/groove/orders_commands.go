package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"groove/internal/api"
)

func newOrdersCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage customer orders",
	}
	cmd.AddCommand(newOrdersListCommand(ctx))
	cmd.AddCommand(newOrdersShowCommand(ctx))
	cmd.AddCommand(newOrdersCreateCommand(ctx))
	return cmd
}

func newOrdersListCommand(ctx *commandContext) *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := ctx.newClient()
			if err != nil {
				return err
			}

			params := url.Values{}
			if page > 0 {
				params.Set("page", strconv.Itoa(page))
			}
			if limit > 0 {
				params.Set("limit", strconv.Itoa(limit))
			}

			result, err := cli.ListOrders(cmd.Context(), params)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.Orders))
			for _, order := range result.Orders {
				rows = append(rows, []string{
					order.ID,
					order.RecordID,
					formatCount(int(order.Quantity)),
					formatPrice(order.TotalPrice),
					order.CustomerName,
					order.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Record", "Qty", "Total", "Customer", "Placed"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%s orders)\n",
				result.Page, result.TotalPages, formatCount(result.Total))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size")
	return cmd
}

func newOrdersShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := ctx.newClient()
			if err != nil {
				return err
			}
			order, err := cli.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOrder(cmd, order)
			return nil
		},
	}
}

func newOrdersCreateCommand(ctx *commandContext) *cobra.Command {
	var req api.CreateOrderRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place an order against a catalog record",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := ctx.newClient()
			if err != nil {
				return err
			}
			order, err := cli.CreateOrder(cmd.Context(), req)
			if err != nil {
				return err
			}
			printOrder(cmd, order)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.RecordID, "record", "", "Record id to order")
	cmd.Flags().Int64Var(&req.Quantity, "quantity", 1, "Quantity to order")
	cmd.Flags().StringVar(&req.CustomerName, "name", "", "Customer name")
	cmd.Flags().StringVar(&req.CustomerEmail, "email", "", "Customer email")
	cmd.Flags().StringVar(&req.ShippingAddress, "address", "", "Shipping address")
	_ = cmd.MarkFlagRequired("record")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}

func printOrder(cmd *cobra.Command, order api.Order) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Order %s\n", order.ID)
	fmt.Fprintf(out, "  Record:   %s\n", order.RecordID)
	fmt.Fprintf(out, "  Quantity: %d\n", order.Quantity)
	fmt.Fprintf(out, "  Total:    %s\n", formatPrice(order.TotalPrice))
	fmt.Fprintf(out, "  Customer: %s <%s>\n", order.CustomerName, order.CustomerEmail)
	fmt.Fprintf(out, "  Ship to:  %s\n", order.ShippingAddress)
	fmt.Fprintf(out, "  Placed:   %s\n", order.CreatedAt.Local().Format("2006-01-02 15:04:05"))
}

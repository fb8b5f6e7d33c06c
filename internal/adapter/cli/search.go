package cli

import (
	"fmt"

	"github.com/laundryexpress/pro/internal/domain"

	"github.com/spf13/cobra"
)

func (a *CLIAdapter) FindOrderComm(cmd *cobra.Command, args []string) error {
	orderID, err := cmd.Flags().GetUint64("order-id")
	if err != nil {
		return fmt.Errorf("flag.GetUint64: %w", err)
	}

	order, err := a.appService.GetOrderByID(cmd.Context(), orderID)
	if err != nil {
		return mapError(err)
	}

	printOrder(order)
	fmt.Printf("Entered: %s\n", MapTimeToString(order.EntryTime))
	return nil
}

func (a *CLIAdapter) SearchOrdersComm(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}

	orders, err := a.appService.SearchByName(cmd.Context(), name)
	if err != nil {
		return mapError(err)
	}

	if len(orders) == 0 {
		fmt.Println("No orders found for this name.")
		return nil
	}
	for _, order := range orders {
		printOrder(order)
	}
	fmt.Printf("TOTAL: %d\n", len(orders))
	return nil
}

func (a *CLIAdapter) StatusOrdersComm(cmd *cobra.Command, args []string) error {
	statusStr, err := cmd.Flags().GetString("status")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}

	status, err := domain.ParseOrderStatus(statusStr)
	if err != nil {
		return mapError(err)
	}

	groups, err := a.appService.OrdersByStatus(cmd.Context(), status)
	if err != nil {
		return mapError(err)
	}

	if len(groups) == 0 {
		fmt.Printf("No orders in status %s.\n", statusStr)
		return nil
	}
	for _, group := range groups {
		fmt.Printf("Customer: %s Orders: %d IDs: %v\n", group.Name, len(group.OrderIDs), group.OrderIDs)
	}
	return nil
}

func (a *CLIAdapter) CustomerComm(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}

	summary, err := a.appService.CustomerSummary(cmd.Context(), name)
	if err != nil {
		return mapError(err)
	}

	fmt.Printf("Orders matching %q:\n", summary.Name)
	for _, order := range summary.Orders {
		printOrder(order)
	}
	fmt.Printf("TOTAL_SPENDING: Rp %d\n", int64(summary.TotalSpending))
	return nil
}

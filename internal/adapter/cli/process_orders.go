package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/laundryexpress/pro/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func (a *CLIAdapter) ProcessOrderComm(cmd *cobra.Command, args []string) error {
	orderID, err := cmd.Flags().GetUint64("order-id")
	if err != nil {
		return fmt.Errorf("flag.GetUint64: %w", err)
	}
	action, err := cmd.Flags().GetString("action")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}

	var order domain.Order
	switch action {
	case "advance":
		order, err = a.appService.AdvanceOrder(cmd.Context(), orderID)
	case "cancel":
		order, err = a.appService.CancelOrder(cmd.Context(), orderID)
	default:
		return mapError(domain.ValidationFailedError(
			fmt.Sprintf("invalid action %q: action must be 'advance' or 'cancel'", action)))
	}
	if err != nil {
		return mapError(err)
	}

	fmt.Printf("ORDER_UPDATED: %d STATUS: %s\n", order.OrderID, order.GetStatusString())
	return nil
}

func (a *CLIAdapter) ProcessOrdersComm(cmd *cobra.Command, args []string) error {
	action, err := cmd.Flags().GetString("action")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}
	orderIDsStr, err := cmd.Flags().GetString("order-ids")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}

	orderIDStrings := strings.Split(orderIDsStr, ",")
	orderIDs := make([]uint64, 0, len(orderIDStrings))
	for _, s := range orderIDStrings {
		orderID, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return mapError(domain.ValidationFailedError(
				fmt.Sprintf("invalid order ID %q: must be a number", s)))
		}
		orderIDs = append(orderIDs, orderID)
	}

	if processingErr := a.appService.ProcessOrders(cmd.Context(), action, orderIDs); processingErr != nil {
		for _, e := range multierr.Errors(processingErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", mapError(e))
		}
		return fmt.Errorf("one or more orders failed to process")
	}

	for _, orderID := range orderIDs {
		fmt.Printf("PROCESSED: %d\n", orderID)
	}
	return nil
}

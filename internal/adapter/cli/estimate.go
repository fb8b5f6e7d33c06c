package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *CLIAdapter) EstimateComm(cmd *cobra.Command, args []string) error {
	orderID, err := cmd.Flags().GetUint64("order-id")
	if err != nil {
		return fmt.Errorf("flag.GetUint64: %w", err)
	}

	est, err := a.appService.EstimateWait(cmd.Context(), orderID)
	if err != nil {
		return mapError(err)
	}

	fmt.Println("Queue position (sorted by status and priority):")
	for _, order := range est.QueueAhead {
		fmt.Printf("- ID %d (%s, prio %d)\n", order.OrderID, order.GetStatusString(), order.Priority)
	}
	fmt.Printf(">> Your order (ID %d) <<\n", est.OrderID)
	fmt.Printf("ESTIMATED_DONE_IN: %d minutes\n", est.Minutes)
	return nil
}

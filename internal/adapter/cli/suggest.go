package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *CLIAdapter) SuggestComm(cmd *cobra.Command, args []string) error {
	method, err := cmd.Flags().GetString("method")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}

	orders, err := a.appService.SuggestProcessingOrder(cmd.Context(), method)
	if err != nil {
		return mapError(err)
	}

	if len(orders) == 0 {
		fmt.Println("No waiting orders.")
		return nil
	}

	fmt.Printf("Suggested processing sequence (%s):\n", method)
	for _, order := range orders {
		printOrder(order)
	}
	return nil
}

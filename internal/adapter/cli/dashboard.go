package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *CLIAdapter) DashboardComm(cmd *cobra.Command, args []string) error {
	ov, err := a.appService.Overview(cmd.Context())
	if err != nil {
		return mapError(err)
	}
	groups, err := a.appService.StatusBoard(cmd.Context())
	if err != nil {
		return mapError(err)
	}

	fmt.Printf("Total: %d Completed: %d Active: %d Cancelled: %d\n",
		ov.Total, ov.Completed, ov.Active, ov.Cancelled)
	for _, group := range groups {
		fmt.Printf("%-10s:", statusLabel(group.Status))
		for _, id := range group.OrderIDs {
			fmt.Printf(" [%d]", id)
		}
		fmt.Println()
	}
	return nil
}

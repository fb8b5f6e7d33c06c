package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *CLIAdapter) ReportComm(cmd *cobra.Command, args []string) error {
	report, err := a.appService.BuildReport(cmd.Context())
	if err != nil {
		return mapError(err)
	}

	fmt.Println("=== Daily Business Report ===")
	fmt.Printf("1. Total revenue        : Rp %d\n", int64(report.TotalRevenue))
	fmt.Printf("2. Average weight       : %.2f kg\n", report.AverageWeight)
	fmt.Printf("3. Most popular service : %s\n", report.MostPopularService)
	fmt.Printf("4. Active orders        : %d not finished yet\n", report.ActiveCount)
	fmt.Println("5. Top customers        :")
	for _, c := range report.TopCustomers {
		fmt.Printf("   - %s (%d orders)\n", c.Name, c.Orders)
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/laundryexpress/pro/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func (a *CLIAdapter) ImportOrdersComm(cmd *cobra.Command, args []string) error {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file '%s': %w", filePath, err)
	}

	var ordersToImport []domain.OrderToImport
	if err := json.Unmarshal(data, &ordersToImport); err != nil {
		return fmt.Errorf("failed to parse JSON from file '%s': %w", filePath, err)
	}

	importedCount, err := a.appService.ImportOrders(cmd.Context(), ordersToImport)
	if err != nil {
		if importedCount > 0 {
			fmt.Printf("IMPORTED: %d orders successfully.\n", importedCount)
		}
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", mapError(e))
		}
		return fmt.Errorf("import completed with errors")
	}

	fmt.Printf("IMPORTED: %d\n", importedCount)
	return nil
}

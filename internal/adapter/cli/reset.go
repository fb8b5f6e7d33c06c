package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *CLIAdapter) ResetComm(cmd *cobra.Command, args []string) error {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return fmt.Errorf("flag.GetBool: %w", err)
	}

	if !yes {
		fmt.Print("Reset all data? (y/n): ")
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() {
			return nil
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" {
			fmt.Println("Reset aborted.")
			return nil
		}
	}

	if err := a.appService.ResetAll(cmd.Context()); err != nil {
		return mapError(err)
	}
	fmt.Println("DATA_RESET")
	return nil
}

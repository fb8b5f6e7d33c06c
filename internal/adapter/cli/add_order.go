package cli

import (
	"fmt"

	"github.com/laundryexpress/pro/internal/domain"

	"github.com/spf13/cobra"
)

func (a *CLIAdapter) AddOrderComm(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}
	garmentStr, err := cmd.Flags().GetString("garment")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}
	weight, err := cmd.Flags().GetFloat64("weight")
	if err != nil {
		return fmt.Errorf("flag.GetFloat64: %w", err)
	}
	serviceStr, err := cmd.Flags().GetString("service")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}
	priority, err := cmd.Flags().GetInt("priority")
	if err != nil {
		return fmt.Errorf("flag.GetInt: %w", err)
	}

	garment, err := domain.ParseGarmentType(garmentStr)
	if err != nil {
		return mapError(err)
	}
	service, err := domain.ParseServiceTier(serviceStr)
	if err != nil {
		return mapError(err)
	}

	order, err := a.appService.CreateOrder(cmd.Context(), domain.CreateOrderRequest{
		CustomerName: name,
		Weight:       weight,
		Garment:      garment,
		Service:      service,
		Priority:     priority,
	})
	if err != nil {
		return mapError(err)
	}

	fmt.Printf("ORDER_CREATED: %d\n", order.OrderID)
	fmt.Printf("PRICE: Rp %d\n", int64(order.FinalPrice))
	if order.IsDiscounted {
		fmt.Println("DISCOUNT_APPLIED")
	}
	return nil
}

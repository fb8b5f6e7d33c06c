package cli

import (
	"context"
	"fmt"

	"github.com/laundryexpress/pro/internal/domain"

	"github.com/spf13/cobra"
)

type LaundryService interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	AdvanceOrder(ctx context.Context, orderID uint64) (domain.Order, error)
	CancelOrder(ctx context.Context, orderID uint64) (domain.Order, error)
	ProcessOrders(ctx context.Context, action string, orderIDs []uint64) error
	GetOrderByID(ctx context.Context, orderID uint64) (domain.Order, error)
	SearchByName(ctx context.Context, text string) ([]domain.Order, error)
	OrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.CustomerGroup, error)
	CustomerSummary(ctx context.Context, name string) (domain.CustomerSummary, error)
	EstimateWait(ctx context.Context, orderID uint64) (domain.WaitEstimate, error)
	BuildReport(ctx context.Context) (domain.Report, error)
	SuggestProcessingOrder(ctx context.Context, method string) ([]domain.Order, error)
	StatusBoard(ctx context.Context) ([]domain.StatusGroup, error)
	Overview(ctx context.Context) (domain.Overview, error)
	ImportOrders(ctx context.Context, rows []domain.OrderToImport) (uint64, error)
	ResetAll(ctx context.Context) error
}

type CLIAdapter struct {
	appService LaundryService
}

func NewCLIAdapter(appService LaundryService) *CLIAdapter {
	return &CLIAdapter{appService: appService}
}

func (a *CLIAdapter) RegisterCommands(rootCmd *cobra.Command) {
	addOrderCmd := &cobra.Command{
		Use:   "add-order",
		Short: "Takes in a new laundry order and quotes its price.",
		RunE:  a.AddOrderComm,
	}
	addOrderCmd.Flags().StringP("name", "", "", "Customer name")
	addOrderCmd.Flags().StringP("garment", "", "", "Garment type: shirt, pants, jacket, blanket or other")
	addOrderCmd.Flags().Float64P("weight", "", 0, "Weight in kg (0.5 - 20)")
	addOrderCmd.Flags().StringP("service", "", "normal", "Service tier: normal, fast or express")
	addOrderCmd.Flags().IntP("priority", "", 3, "Priority (1 urgent - 5 relaxed)")
	addOrderCmd.MarkFlagRequired("name")
	addOrderCmd.MarkFlagRequired("garment")
	addOrderCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(addOrderCmd)

	processOrderCmd := &cobra.Command{
		Use:   "process-order",
		Short: "Advances an order one stage or cancels it.",
		RunE:  a.ProcessOrderComm,
	}
	processOrderCmd.Flags().Uint64P("order-id", "", 0, "ID of the order")
	processOrderCmd.Flags().StringP("action", "", "", "Action to perform: 'advance' or 'cancel'")
	processOrderCmd.MarkFlagRequired("order-id")
	processOrderCmd.MarkFlagRequired("action")
	rootCmd.AddCommand(processOrderCmd)

	processOrdersCmd := &cobra.Command{
		Use:   "process-orders",
		Short: "Advances or cancels a batch of orders.",
		RunE:  a.ProcessOrdersComm,
	}
	processOrdersCmd.Flags().StringP("action", "", "", "Action to perform: 'advance' or 'cancel'")
	processOrdersCmd.Flags().StringP("order-ids", "", "", "Comma-separated list of order IDs")
	processOrdersCmd.MarkFlagRequired("action")
	processOrdersCmd.MarkFlagRequired("order-ids")
	rootCmd.AddCommand(processOrdersCmd)

	findOrderCmd := &cobra.Command{
		Use:   "find-order",
		Short: "Shows a single order by its ID.",
		RunE:  a.FindOrderComm,
	}
	findOrderCmd.Flags().Uint64P("order-id", "", 0, "ID of the order")
	findOrderCmd.MarkFlagRequired("order-id")
	rootCmd.AddCommand(findOrderCmd)

	searchOrdersCmd := &cobra.Command{
		Use:   "search-orders",
		Short: "Finds orders by customer name (case-insensitive substring).",
		RunE:  a.SearchOrdersComm,
	}
	searchOrdersCmd.Flags().StringP("name", "", "", "Customer name or part of it")
	searchOrdersCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(searchOrdersCmd)

	statusOrdersCmd := &cobra.Command{
		Use:   "status-orders",
		Short: "Lists orders in a given status, grouped by customer.",
		RunE:  a.StatusOrdersComm,
	}
	statusOrdersCmd.Flags().StringP("status", "", "", "Status: waiting, washing, drying, ironing, done or cancelled")
	statusOrdersCmd.MarkFlagRequired("status")
	rootCmd.AddCommand(statusOrdersCmd)

	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "Shows all orders and total spending of a customer.",
		RunE:  a.CustomerComm,
	}
	customerCmd.Flags().StringP("name", "", "", "Customer name or part of it")
	customerCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(customerCmd)

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimates how many minutes until an order is done.",
		RunE:  a.EstimateComm,
	}
	estimateCmd.Flags().Uint64P("order-id", "", 0, "ID of the order")
	estimateCmd.MarkFlagRequired("order-id")
	rootCmd.AddCommand(estimateCmd)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Prints the daily business report.",
		RunE:  a.ReportComm,
	}
	rootCmd.AddCommand(reportCmd)

	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggests a processing sequence for the waiting orders.",
		RunE:  a.SuggestComm,
	}
	suggestCmd.Flags().StringP("method", "", "priority", "Sorting method: priority, efficiency or garment")
	rootCmd.AddCommand(suggestCmd)

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Shows order IDs grouped by pipeline stage.",
		RunE:  a.DashboardComm,
	}
	rootCmd.AddCommand(dashboardCmd)

	importOrdersCmd := &cobra.Command{
		Use:   "import-orders",
		Short: "Imports orders from a JSON file.",
		RunE:  a.ImportOrdersComm,
	}
	importOrdersCmd.Flags().StringP("file", "", "", "Path to the JSON file with orders")
	importOrdersCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importOrdersCmd)

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Deletes every order and restarts IDs from 1.",
		RunE:  a.ResetComm,
	}
	resetCmd.Flags().BoolP("yes", "", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "exit",
		Short: "Exits the laundry system.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Exiting laundry system.")
		},
	})
}

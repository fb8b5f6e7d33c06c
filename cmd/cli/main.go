package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/laundryexpress/pro/internal/adapter/cli"
	"github.com/laundryexpress/pro/internal/app"
	"github.com/laundryexpress/pro/internal/config"
	"github.com/laundryexpress/pro/internal/domain"
	"github.com/laundryexpress/pro/internal/repository/inmemory"
	"github.com/laundryexpress/pro/pkg/cache"

	"github.com/spf13/cobra"
)

var (
	debug   bool
	rootCmd = &cobra.Command{
		Short:         "Laundry shop command-line interface",
		Long:          `A simple command-line interface for managing laundry-shop orders.`,
		Run:           func(cmd *cobra.Command, args []string) { cmd.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func initLogging(logFile string) {
	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	log.SetOutput(file)
}

func loadTariff(cfg *config.Config) domain.Tariff {
	if cfg.Service.TariffPath == "" {
		return domain.DefaultTariff()
	}
	tariff, err := domain.LoadTariff(cfg.Service.TariffPath)
	if err != nil {
		log.Fatalf("Failed to load tariff: %v", err)
	}
	return tariff
}

func main() {
	cfg, err := config.Load(os.Getenv("LAUNDRY_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config load failed: %v\n", err)
		os.Exit(1)
	}
	initLogging(cfg.Service.LogFile)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")

	orderRepo := inmemory.NewInMemoryOrderRepository()
	laundryService := app.NewLaundryService(orderRepo, loadTariff(cfg), app.Config{
		TopCustomers: cfg.Report.TopCustomers,
		EstimateCache: cache.Config{
			MaxSize: cfg.EstimateCache.MaxSize,
			TTL:     cfg.EstimateCache.TTL,
		},
	})
	cliAdapter := cli.NewCLIAdapter(laundryService)

	cliAdapter.RegisterCommands(rootCmd)

	fmt.Println("=== Laundry Express Pro Management App ===")
	fmt.Printf("Today: %s\n", time.Now().Format("Monday, 02 January 2006"))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("laundry> ")

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "exit" {
			fmt.Println("Exiting laundry system.")
			os.Exit(0)
		}

		rootCmd.SetArgs(strings.Fields(line))
		if err := rootCmd.Execute(); err != nil {
			log.Printf("Command execution error: %v", err)
			fmt.Fprintf(os.Stderr, "%s\n", err)
			if debug {
				fmt.Fprintf(os.Stderr, "DEBUG: %+v\n", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading from stdin: %v", err)
	}
}

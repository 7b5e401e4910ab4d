package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	postgresRepo "github.com/mariner/fueleuledger/internal/adapter/repository/postgres"
	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/infrastructure/config"
	"github.com/mariner/fueleuledger/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fueleu-cli",
		Short: "FuelEU compliance ledger CLI tool",
		Long:  `A command line interface for interacting with the FuelEU compliance ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the compliance ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(bankingCmd())
	rootCmd.AddCommand(poolCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(activityCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Compliance balance operations",
	}

	var vesselID string
	var period int

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the balance for a vessel and period from voyage activity",
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/balances/compute", map[string]any{
				"vessel_id": vesselID,
				"period":    period,
			})
		},
	}
	computeCmd.Flags().StringVar(&vesselID, "vessel", "", "Vessel ID (IMO number)")
	computeCmd.Flags().IntVar(&period, "period", 0, "Reporting period (year)")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Get the balance for a vessel and period",
		Run: func(cmd *cobra.Command, args []string) {
			doGet(fmt.Sprintf("/api/v1/balances/%s?period=%d", vesselID, period))
		},
	}
	getCmd.Flags().StringVar(&vesselID, "vessel", "", "Vessel ID (IMO number)")
	getCmd.Flags().IntVar(&period, "period", 0, "Reporting period (year)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List balances for a period",
		Run: func(cmd *cobra.Command, args []string) {
			doGet(fmt.Sprintf("/api/v1/balances/?period=%d", period))
		},
	}
	listCmd.Flags().IntVar(&period, "period", 0, "Reporting period (year)")

	cmd.AddCommand(computeCmd, getCmd, listCmd)
	return cmd
}

func bankingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Banking operations",
	}

	var vesselID, amount string
	var period int

	surplusCmd := &cobra.Command{
		Use:   "surplus",
		Short: "Bank surplus from the ledger",
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/banking/bank", map[string]any{
				"vessel_id": vesselID,
				"period":    period,
				"amount":    amount,
			})
		},
	}
	surplusCmd.Flags().StringVar(&vesselID, "vessel", "", "Vessel ID (IMO number)")
	surplusCmd.Flags().IntVar(&period, "period", 0, "Reporting period (year)")
	surplusCmd.Flags().StringVar(&amount, "amount", "", "Amount in gCO2eq")

	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply banked value back to the ledger",
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/banking/apply", map[string]any{
				"vessel_id": vesselID,
				"period":    period,
				"amount":    amount,
			})
		},
	}
	applyCmd.Flags().StringVar(&vesselID, "vessel", "", "Vessel ID (IMO number)")
	applyCmd.Flags().IntVar(&period, "period", 0, "Reporting period (year)")
	applyCmd.Flags().StringVar(&amount, "amount", "", "Amount in gCO2eq")

	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "Show the banked total for a vessel and period",
		Run: func(cmd *cobra.Command, args []string) {
			doGet(fmt.Sprintf("/api/v1/banking/%s/total?period=%d", vesselID, period))
		},
	}
	totalCmd.Flags().StringVar(&vesselID, "vessel", "", "Vessel ID (IMO number)")
	totalCmd.Flags().IntVar(&period, "period", 0, "Reporting period (year)")

	cmd.AddCommand(surplusCmd, applyCmd, totalCmd)
	return cmd
}

func poolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Pooling operations",
	}

	var name, id string
	var period int
	var vessels []string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pool from the named vessels' balances",
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/pools/", map[string]any{
				"name":       name,
				"period":     period,
				"vessel_ids": vessels,
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Pool name")
	createCmd.Flags().IntVar(&period, "period", 0, "Reporting period (year)")
	createCmd.Flags().StringSliceVar(&vessels, "vessels", nil, "Member vessel IDs")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Get a pool by ID",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/pools/" + id)
		},
	}
	getCmd.Flags().StringVar(&id, "id", "", "Pool ID")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pools",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/pools/")
		},
	}

	cmd.AddCommand(createCmd, getCmd, listCmd)
	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	}

	cmd.AddCommand(consistencyCmd)
	return cmd
}

// activityCmd writes voyage activity rows directly to the database. The
// server has no ingestion endpoint; activity normally arrives through the
// voyage data pipeline, and this command stands in for it during testing.
func activityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Voyage activity operations",
	}

	var vesselID, intensity, energy string
	var period int

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed voyage activity for a vessel and period",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			intensityDec, err := decimal.NewFromString(intensity)
			if err != nil {
				return fmt.Errorf("invalid intensity: %w", err)
			}
			energyDec, err := decimal.NewFromString(energy)
			if err != nil {
				return fmt.Errorf("invalid energy: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			repo := postgresRepo.NewActivityRepository(pool)
			if _, err := repo.Upsert(ctx, &domain.VoyageActivity{
				VesselID:        vesselID,
				Period:          period,
				IntensityActual: intensityDec,
				EnergyUsedMJ:    energyDec,
			}); err != nil {
				return err
			}

			fmt.Printf("Seeded activity for %s period %d\n", vesselID, period)
			return nil
		},
	}
	seedCmd.Flags().StringVar(&vesselID, "vessel", "", "Vessel ID (IMO number)")
	seedCmd.Flags().IntVar(&period, "period", 0, "Reporting period (year)")
	seedCmd.Flags().StringVar(&intensity, "intensity", "", "Attained GHG intensity (gCO2eq/MJ)")
	seedCmd.Flags().StringVar(&energy, "energy", "", "Energy used (MJ)")

	cmd.AddCommand(seedCmd)
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
				return err
			}
			fmt.Println("Migrations applied")
			return nil
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
				return err
			}
			fmt.Println("Migrations rolled back")
			return nil
		},
	}

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

func checkConsistency() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledger/consistency")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Consistency check PASSED\n")
	if consistent, ok := result["consistent"].(bool); ok {
		fmt.Printf("Consistent: %v\n", consistent)
	}
	fmt.Printf("Status: %s\n", result["status"])
}

func doGet(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func doPost(path string, payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", strings.NewReader(string(body)))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(body), 2000))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("%s\n", string(body))
		return
	}

	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

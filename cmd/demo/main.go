package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"student-coin/internal/config"
	"student-coin/internal/domain/dto"
	"student-coin/internal/gateway"
	"student-coin/internal/ledger"
	"student-coin/internal/notify"
)

// Walkthrough of the student flow: login, browse advantages, redeem one and
// print the coupon. Works against a running backend, or entirely offline on
// the local demo ledger.
func main() {
	cfg := config.MustLoadClient()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := ledger.Open(cfg.Gateway.LedgerPath, log)
	if err != nil {
		log.Error("Failed to open ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dispatcher := notify.NewDispatcher(log, cfg.Email)
	defer dispatcher.Close()

	client := gateway.New(cfg.Gateway.APIBase, store, dispatcher, log)

	ctx := context.Background()

	session, err := client.Login(ctx, "ana@uni.br", "demo")
	if err != nil {
		log.Error("Login failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Printf("Logged in as %s (%s)\n", session.Name, session.Role)

	page, err := client.ListAdvantages(ctx, gateway.PageRequest{Page: 0, Size: 10})
	if err != nil {
		log.Error("Listing advantages failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	advantage := pickAdvantage(ctx, client, page.Items)
	fmt.Printf("Redeeming %q for %d coins\n", advantage.Description, advantage.CoinCost)

	redemption, err := client.Redeem(ctx, advantage.ID, session.ID)
	if err != nil {
		log.Error("Redemption failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Coupon: %s\n", redemption.CouponCode)
	fmt.Printf("New balance: %d coins\n", redemption.NewBalance)

	statement, err := client.TransactionsByStudent(ctx, session.ID)
	if err != nil {
		log.Error("Statement fetch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("Statement:")
	for _, tx := range statement {
		fmt.Printf("  %s  %-16s %5d  %s\n", tx.Date, tx.Kind, tx.Amount, tx.Reason)
	}
}

// pickAdvantage returns the first listed advantage, publishing a sample one
// when the catalog is empty so the walkthrough always has something to
// redeem.
func pickAdvantage(ctx context.Context, client *gateway.Client, items []dto.AdvantageDTO) dto.AdvantageDTO {
	if len(items) > 0 {
		return items[0]
	}

	created, err := client.CreateAdvantage(ctx, 1, dto.AdvantageDTO{
		Description: "Meia-entrada no cinema",
		CoinCost:    500,
		CompanyName: "Empresa Ex",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not publish sample advantage:", err)
		os.Exit(1)
	}

	return created
}

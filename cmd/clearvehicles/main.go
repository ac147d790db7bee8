// Package main is the clearvehicles admin CLI.
// It deletes every vehicle from the catalog; bookmarks and bookings cascade
// away with their vehicles. Intended for resetting demo environments, so it
// prompts for confirmation unless --confirm is passed.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/motorlane/backend/internal/repo"
)

func main() {
	confirm := pflag.Bool("confirm", false, "skip the confirmation prompt")
	pflag.Parse()

	if err := run(context.Background(), *confirm); err != nil {
		fmt.Fprintln(os.Stderr, "clearvehicles:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, confirm bool) error {
	// The CLI needs only the database; it does not load the full server
	// config, which would demand the admin token too.
	_ = godotenv.Load()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	vehicles := repo.NewVehicleRepo(pool)

	count, err := vehicles.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println("No vehicles found in the database.")
		return nil
	}

	if !confirm && !promptYes(count) {
		fmt.Println("Operation cancelled.")
		return nil
	}

	deleted, err := vehicles.DeleteAll(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully deleted %d vehicle(s) from the database.\n", deleted)
	return nil
}

// promptYes asks for an explicit "yes" on stdin before a destructive delete.
func promptYes(count int64) bool {
	fmt.Printf("Are you sure you want to delete all %d vehicles? (yes/no): ", count)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}

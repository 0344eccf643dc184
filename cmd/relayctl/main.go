package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate:     Apply or inspect database migrations
// - hash-key:    Produce the bcrypt hash of an API key for auth.apiKeyHashes
// - admin-token: Mint an admin bearer token
// - sweep:       Trigger the deletion sweep once
// - schedule:    Trigger the deletion sweep on a cron schedule

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	hashKeyCmd := flag.NewFlagSet("hash-key", flag.ExitOnError)
	adminTokenCmd := flag.NewFlagSet("admin-token", flag.ExitOnError)
	sweepCmd := flag.NewFlagSet("sweep", flag.ExitOnError)
	scheduleCmd := flag.NewFlagSet("schedule", flag.ExitOnError)

	migrateStatus := migrateCmd.Bool("status", false, "Print migration status instead of applying")

	hashKeyKey := hashKeyCmd.String("key", "", "API key to hash (reads RELAY_API_KEY when empty)")

	adminSubject := adminTokenCmd.String("subject", "", "Operator identity written to the token subject")
	adminTTL := adminTokenCmd.Duration("ttl", 0, "Token lifetime (defaults to auth.adminTokenTTL)")

	sweepURL := sweepCmd.String("url", "", "Sweep endpoint (defaults to deletion.sweepUrl)")
	sweepDryRun := sweepCmd.Bool("dry-run", false, "Report due requests without deleting")

	scheduleURL := scheduleCmd.String("url", "", "Sweep endpoint (defaults to deletion.sweepUrl)")
	scheduleSpec := scheduleCmd.String("cron", "", "Cron spec (defaults to deletion.sweepSchedule)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := ctlFlags{
		Migrate:    migrateFlags{cmd: migrateCmd, status: migrateStatus},
		HashKey:    hashKeyFlags{cmd: hashKeyCmd, key: hashKeyKey},
		AdminToken: adminTokenFlags{cmd: adminTokenCmd, subject: adminSubject, ttl: adminTTL},
		Sweep:      sweepFlags{cmd: sweepCmd, url: sweepURL, dryRun: sweepDryRun},
		Schedule:   scheduleFlags{cmd: scheduleCmd, url: scheduleURL, spec: scheduleSpec},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate    migrateFlags
	HashKey    hashKeyFlags
	AdminToken adminTokenFlags
	Sweep      sweepFlags
	Schedule   scheduleFlags
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "hash-key":
		return handleHashKey(flags)
	case "admin-token":
		return handleAdminToken(flags)
	case "sweep":
		return handleSweep(ctx, flags)
	case "schedule":
		return handleSchedule(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: relayctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate      Apply pending migrations (-status to inspect)")
	fmt.Println("  hash-key     Print the bcrypt hash of an API key")
	fmt.Println("  admin-token  Mint an admin bearer token")
	fmt.Println("  sweep        Trigger the deletion sweep once")
	fmt.Println("  schedule     Trigger the deletion sweep on a cron schedule")
	fmt.Println("")
	fmt.Println("Use 'relayctl <command> -h' for more information about a command.")
}

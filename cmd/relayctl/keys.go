package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"clubrelay/config"
	"clubrelay/internal/domain/constants"
	"clubrelay/internal/infra/auth"
	"clubrelay/internal/util"

	"github.com/pkg/errors"
)

type hashKeyFlags struct {
	cmd *flag.FlagSet
	key *string
}

type adminTokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	ttl     *time.Duration
}

func handleHashKey(flags *ctlFlags) error {
	if err := flags.HashKey.cmd.Parse(argsAfterCommand()); err != nil {
		return errors.Wrap(err, "failed to parse hash-key flags")
	}

	key := strings.TrimSpace(*flags.HashKey.key)
	if key == "" {
		key = strings.TrimSpace(os.Getenv("RELAY_API_KEY"))
	}
	if key == "" {
		return errors.New("-key or RELAY_API_KEY is required")
	}

	// Cost comes from auth.bcryptCost when a config file is present.
	cfg := &config.Config{}
	if loaded, err := config.New(); err == nil {
		cfg = loaded
	}

	hash, err := auth.NewBcryptHasher(cfg).Hash(key)
	if err != nil {
		return err
	}

	fmt.Println(hash)

	return nil
}

func handleAdminToken(flags *ctlFlags) error {
	if err := flags.AdminToken.cmd.Parse(argsAfterCommand()); err != nil {
		return errors.Wrap(err, "failed to parse admin-token flags")
	}

	subject := strings.TrimSpace(*flags.AdminToken.subject)
	if subject == "" {
		return errors.New("-subject is required")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	ttl := *flags.AdminToken.ttl
	if ttl <= 0 {
		ttl = cfg.Auth.AdminTokenTTL
	}

	token, err := tokens.GenerateToken(subject, []string{constants.RoleAdmin}, ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "valid for %s\n", util.FormatDuration(ttl))

	return nil
}

func argsAfterCommand() []string {
	return os.Args[2:]
}

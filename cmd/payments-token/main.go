package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/config"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd("config/payments.env").Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd mints bearer tokens for the GET /transactions guard using the
// same JWT_SECRET and JWT_ISSUER the API validates against.
func newRootCmd(configPath string) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:          "payments-token",
		Short:        "Mint a bearer token for the transactions listing",
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configs := config.InitConfig(configPath)
			if configs.JWT.Secret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}

			token, expiresAt, err := jwt.GenerateToken(subject, ttl, configs.JWT)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			return printToken(cmd.OutOrStdout(), cmd.ErrOrStderr(), token, expiresAt)
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "ops", "Subject (sub claim) of the token")
	cmd.Flags().DurationVarP(&ttl, "ttl", "t", 24*time.Hour, "How long the token stays valid")

	return cmd
}

func printToken(out, errOut io.Writer, token string, expiresAt int64) error {
	if _, err := fmt.Fprintln(out, token); err != nil {
		return err
	}
	_, err := fmt.Fprintf(errOut, "expires at %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
	return err
}

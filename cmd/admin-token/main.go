package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/client-portal/engine/internal/services"
	"github.com/client-portal/engine/pkg/config"
)

var (
	subject string
	ttl     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "admin-token",
	Short: "Mint a bearer token for the /api/admin routes",
	Long:  "Signs an HS256 token with JWT_SECRET from the engine configuration and prints it to stdout.",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&subject, "subject", "operator", "token subject recorded in request logs")
	rootCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	tok, err := services.NewTokenService([]byte(cfg.JWTSecret)).Issue(subject, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

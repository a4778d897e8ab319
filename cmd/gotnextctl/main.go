package main

import (
	"fmt"
	"os"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/config"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotnextctl",
	Short: "Operator tools for the GotNext backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
	SilenceUsage: true,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed bearer token for a user",
	Long: `Print a signed bearer token for a user, using the same JWT settings as the server.
Refuses to run when ENVIRONMENT=production.

Example:
  gotnextctl token --user 7b1e8a52-3c4d-4f6a-9b1e-2d3c4b5a6f70 --email sam@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userFlag, _ := cmd.Flags().GetString("user")
		email, _ := cmd.Flags().GetString("email")

		userID, err := uuid.Parse(userFlag)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		token, err := issueToken(cfg, userID, email)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Load and validate configuration without starting the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "environment:      %s\n", cfg.Environment)
		fmt.Fprintf(out, "port:             %s\n", cfg.Port)
		fmt.Fprintf(out, "log level:        %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "allowed origins:  %v\n", cfg.AllowedOrigins)
		fmt.Fprintf(out, "max repeat count: %d\n", cfg.MaxRepeatCount)
		fmt.Fprintf(out, "rate limit:       %g rps, burst %d\n", cfg.RateLimitRPS, cfg.RateLimitBurst)
		return nil
	},
}

func issueToken(cfg *config.Config, userID uuid.UUID, email string) (string, error) {
	if cfg.IsProduction() {
		return "", fmt.Errorf("refusing to issue tokens in production")
	}
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return "", err
	}
	return authService.GenerateJWT(userID, email)
}

func init() {
	tokenCmd.Flags().String("user", "", "user ID (UUID) to issue the token for")
	tokenCmd.Flags().String("email", "", "email claim")
	_ = tokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(checkConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/notemill/notemill/internal/connectors/notion"
	"github.com/notemill/notemill/internal/core/ports/driven"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Notion integration token",
	Long: `Store, check, and remove the Notion internal integration token.

The token is kept in the config store (~/.notemill/config.toml). The
NOTION_API_KEY environment variable, when set, takes precedence over
the stored token.

Examples:
  # Prompt for the token and store it
  notemill auth login

  # Non-interactive (CI)
  notemill auth login --token ntn_xxx

  # Check the stored token against the API
  notemill auth status

  # Remove the stored token
  notemill auth logout`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Validate and store an integration token",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the configured token against the API",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored token",
	RunE:  runAuthLogout,
}

var authLoginToken string

// apiBaseURL overrides the Notion API root in tests. Empty means the
// production endpoint.
var apiBaseURL string

func init() {
	authLoginCmd.Flags().StringVar(
		&authLoginToken, "token", "", "Integration token (prompts when omitted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	token := strings.TrimSpace(authLoginToken)
	if token == "" {
		var err error
		token, err = promptToken(cmd)
		if err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("no token provided")
	}

	if err := notion.ValidateToken(context.Background(), token, apiBaseURL); err != nil {
		return fmt.Errorf("token rejected by the Notion API: %w", err)
	}

	cfg, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	if err := cfg.Set(driven.ConfigKeyToken, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	cmd.Println(successStyle.Render("✓") + " Token stored.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	token := os.Getenv("NOTION_API_KEY")
	source := "NOTION_API_KEY"
	if token == "" {
		cfg, err := openConfigStore()
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		token = cfg.GetString(driven.ConfigKeyToken)
		source = "config store"
	}
	if token == "" {
		return errors.New("no token configured: run 'notemill auth login'")
	}

	if err := notion.ValidateToken(context.Background(), token, apiBaseURL); err != nil {
		return fmt.Errorf("token from %s is not valid: %w", source, err)
	}

	cmd.Printf("%s Token from %s is valid.\n", successStyle.Render("✓"), source)
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	if err := cfg.Delete(driven.ConfigKeyToken); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}

	cmd.Println("Token removed.")
	return nil
}

// promptToken reads the token without echoing when stdin is a
// terminal, falling back to a plain line read otherwise.
func promptToken(cmd *cobra.Command) (string, error) {
	cmd.Print("Notion integration token: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

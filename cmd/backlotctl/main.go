package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL  string
	adminToken string
	skipPrompt bool
)

// rootCmd is the entry point for the admin operations CLI
var rootCmd = &cobra.Command{
	Use:   "backlotctl",
	Short: "Admin operations for a running Backlot server",
	Long: `backlotctl talks to the Backlot admin API.

Destructive operations ask for confirmation before they are dispatched;
pass --yes to skip the prompt in scripts.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the Backlot server")
	rootCmd.PersistentFlags().StringVar(&adminToken, "token", "", "Admin access token (defaults to BACKLOT_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&skipPrompt, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(availabilityCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(statsCmd)
}

func newClient() *Client {
	token := adminToken
	if token == "" {
		token = os.Getenv("BACKLOT_TOKEN")
	}
	return NewClient(serverURL, token)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

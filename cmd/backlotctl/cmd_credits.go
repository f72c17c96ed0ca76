package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var rejectNote string

// creditsCmd groups credit review operations
var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Review pending credit submissions",
}

var creditsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List pending credit submissions, newest first",
	RunE:  runCreditsPending,
}

var creditsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending credit submission",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreditsApprove,
}

var creditsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending credit submission",
	Long:  "Reject a pending credit submission. A justification note is required.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreditsReject,
}

func init() {
	creditsRejectCmd.Flags().StringVar(&rejectNote, "note", "", "Justification shown to the submitter (required)")

	creditsCmd.AddCommand(creditsPendingCmd)
	creditsCmd.AddCommand(creditsApproveCmd)
	creditsCmd.AddCommand(creditsRejectCmd)
}

func parseCreditID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid credit submission ID %q", arg)
	}
	return id, nil
}

func runCreditsPending(cmd *cobra.Command, args []string) error {
	client := newClient()
	credits, err := client.ListPendingCredits(cmd.Context())
	if err != nil {
		return err
	}

	if len(credits) == 0 {
		fmt.Println("No pending credit submissions.")
		return nil
	}

	fmt.Printf("%-6s %-20s %-30s %s\n", "ID", "SUBMITTER", "PRODUCTION", "POSITION")
	for _, credit := range credits {
		submitter := ""
		if credit.Submitter != nil {
			submitter = credit.Submitter.Username
		}
		production := ""
		if credit.Production != nil {
			production = fmt.Sprintf("%s (%d)", credit.Production.Title, credit.Production.Year)
		}
		fmt.Printf("%-6d %-20s %-30s %s\n", credit.ID, submitter, production, credit.Position)
	}
	return nil
}

func runCreditsApprove(cmd *cobra.Command, args []string) error {
	id, err := parseCreditID(args[0])
	if err != nil {
		return err
	}

	client := newClient()
	return runConfirmed(
		fmt.Sprintf("Approve credit submission %d?", id),
		func() error {
			if err := client.ApproveCredit(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Credit submission %d approved.\n", id)
			return nil
		},
	)
}

func runCreditsReject(cmd *cobra.Command, args []string) error {
	id, err := parseCreditID(args[0])
	if err != nil {
		return err
	}

	// Refuse locally before bothering the server
	if strings.TrimSpace(rejectNote) == "" {
		return fmt.Errorf("a rejection note is required, pass one with --note")
	}

	client := newClient()
	return runConfirmed(
		fmt.Sprintf("Reject credit submission %d?", id),
		func() error {
			if err := client.RejectCredit(cmd.Context(), id, rejectNote); err != nil {
				return err
			}
			fmt.Printf("Credit submission %d rejected.\n", id)
			return nil
		},
	)
}

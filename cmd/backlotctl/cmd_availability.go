package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// availabilityCmd groups availability roster operations
var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Manage the availability roster",
}

var availabilityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List availability records, soonest first",
	RunE:  runAvailabilityList,
}

var availabilityDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an availability record",
	Args:  cobra.ExactArgs(1),
	RunE:  runAvailabilityDelete,
}

func init() {
	availabilityCmd.AddCommand(availabilityListCmd)
	availabilityCmd.AddCommand(availabilityDeleteCmd)
}

func runAvailabilityList(cmd *cobra.Command, args []string) error {
	client := newClient()
	records, err := client.ListAvailability(cmd.Context())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No availability records.")
		return nil
	}

	fmt.Printf("%-6s %-12s %-12s %-20s %s\n", "ID", "START", "END", "MEMBER", "NOTES")
	for _, record := range records {
		username := ""
		if record.Profile != nil {
			username = record.Profile.Username
		}
		notes := ""
		if record.Notes != nil {
			notes = *record.Notes
		}
		fmt.Printf("%-6d %-12s %-12s %-20s %s\n", record.ID, record.StartDate, record.EndDate, username, notes)
	}
	return nil
}

func runAvailabilityDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid availability record ID %q", args[0])
	}

	client := newClient()
	return runConfirmed(
		fmt.Sprintf("Delete availability record %d? This cannot be undone.", id),
		func() error {
			if err := client.DeleteAvailability(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Availability record %d deleted.\n", id)
			return nil
		},
	)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emin/backlot/internal/app/models"
)

// statsCmd prints the community summary
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the community summary",
	RunE:  runStats,
}

func formatCount(stat models.StatCount) string {
	if !stat.Known {
		return "unknown"
	}
	return fmt.Sprintf("%d", stat.Count)
}

func runStats(cmd *cobra.Command, args []string) error {
	client := newClient()
	stats, err := client.GetStats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Members:         %s\n", formatCount(stats.Members))
	fmt.Printf("Active collabs:  %s\n", formatCount(stats.ActiveCollabs))
	fmt.Printf("Pending reports: %s\n", formatCount(stats.PendingReports))
	fmt.Printf("Active mutes:    %s\n", formatCount(stats.ActiveMutes))
	fmt.Printf("Generated at:    %s\n", stats.GeneratedAt.Format("2006-01-02 15:04:05"))
	return nil
}

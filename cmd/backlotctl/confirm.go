package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/emin/backlot/internal/pkg/confirm"
)

// runConfirmed stages action behind a confirmation gate, prompts the
// operator, and dispatches on "y". With --yes the prompt is skipped and the
// action is confirmed immediately. Either way the action runs at most once.
func runConfirmed(prompt string, action func() error) error {
	gate := confirm.NewGate()
	if err := gate.Request(action); err != nil {
		return err
	}

	if skipPrompt {
		return gate.Confirm()
	}

	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		_ = gate.Cancel()
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		_ = gate.Cancel()
		fmt.Println("Cancelled.")
		return nil
	}

	return gate.Confirm()
}

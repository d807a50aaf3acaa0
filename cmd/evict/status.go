package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evict-bt/evict/internal/fsm"
	"github.com/evict-bt/evict/internal/selection"
	"github.com/evict-bt/evict/internal/types"
)

type statusFlags struct {
	idFragment string
	name       string
}

// statusStep takes the id fragment then the status name and halts on
// anything further.
func statusStep(flags statusFlags, token string) fsm.Outcome[statusFlags] {
	switch {
	case flags.idFragment == "":
		flags.idFragment = token
	case flags.name == "":
		flags.name = token
	default:
		return fsm.Halt(flags)
	}
	return fsm.Continue(flags)
}

var statusCmd = &cobra.Command{
	Use:   "status [issue-id] [name]",
	Short: "Set an issue's workflow status",
	Long: `Set an issue's workflow status.

Status is a single current label with its own last-change time, distinct
from tags. New issues start as "` + types.DefaultStatusName + `".`,
	Run: func(cmd *cobra.Command, args []string) {
		machine := fsm.New(statusStep, statusFlags{})
		machine.Run(args)
		flags := machine.FinalState()
		if flags.idFragment == "" {
			fail("the issue id, or an end section of it, must be provided")
		}
		if flags.name == "" {
			fail("a status name must be provided")
		}

		s := openStore()
		issues, err := s.LoadIssues()
		if err != nil {
			fail("%v", err)
		}
		var changedID string
		updated, err := selection.UpdateIssue(flags.idFragment, issues, func(issue *types.Issue) *types.Issue {
			issue.Status = types.NewStatus(flags.name)
			changedID = issue.ID
			return issue
		})
		if err != nil {
			fail("%v", err)
		}
		if err := s.SaveIssues(updated); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Status of %s set to %s\n", changedID, flags.name)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evict-bt/evict/internal/fsm"
	"github.com/evict-bt/evict/internal/selection"
	"github.com/evict-bt/evict/internal/types"
)

type tagFlags struct {
	idFragment string
	name       string
}

// tagStep takes the id fragment then the tag name and halts on anything
// further.
func tagStep(flags tagFlags, token string) fsm.Outcome[tagFlags] {
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

var tagCmd = &cobra.Command{
	Use:   "tag [issue-id] [name]",
	Short: "Enable a tag on an issue",
	Long: `Enable a named tag on an issue.

Tag state is derived from the issue's timeline: this appends an
enabling toggle rather than editing a stored set.`,
	Run: func(cmd *cobra.Command, args []string) {
		applyTag(cmd, args, true)
	},
}

var untagCmd = &cobra.Command{
	Use:   "untag [issue-id] [name]",
	Short: "Disable a tag on an issue",
	Run: func(cmd *cobra.Command, args []string) {
		applyTag(cmd, args, false)
	},
}

func applyTag(cmd *cobra.Command, args []string, enabled bool) {
	machine := fsm.New(tagStep, tagFlags{})
	machine.Run(args)
	flags := machine.FinalState()
	if flags.idFragment == "" {
		fail("the issue id, or an end section of it, must be provided")
	}
	if flags.name == "" {
		fail("a tag name must be provided")
	}

	s := openStore()
	issues, err := s.LoadIssues()
	if err != nil {
		fail("%v", err)
	}
	author := getAuthor(cmd)
	var taggedID string
	updated, err := selection.UpdateIssue(flags.idFragment, issues, func(issue *types.Issue) *types.Issue {
		issue.AddTag(types.NewTag(flags.name, author, enabled))
		taggedID = issue.ID
		return issue
	})
	if err != nil {
		fail("%v", err)
	}
	if err := s.SaveIssues(updated); err != nil {
		fail("%v", err)
	}
	if enabled {
		fmt.Printf("Tagged %s with %s\n", taggedID, flags.name)
	} else {
		fmt.Printf("Removed %s from %s\n", flags.name, taggedID)
	}
}

func init() {
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(untagCmd)
}

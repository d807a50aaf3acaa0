package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/evict-bt/evict/internal/editor"
	"github.com/evict-bt/evict/internal/fsm"
	"github.com/evict-bt/evict/internal/types"
	"github.com/evict-bt/evict/internal/ui"
	"github.com/evict-bt/evict/internal/vcs"
)

type newFlags struct {
	title string
}

// newStep joins every positional token into the issue title.
func newStep(flags newFlags, token string) fsm.Outcome[newFlags] {
	if flags.title != "" {
		flags.title += " "
	}
	flags.title += token
	return fsm.Continue(flags)
}

var newCmd = &cobra.Command{
	Use:   "new [title...]",
	Short: "Create a new issue",
	Long: `Create a new issue.

Examples:
  # Create with a title
  evict new Fix the login timeout

  # Create with a body
  evict new Fix the login timeout -b "Repro: log in twice quickly"

  # Compose the body in your editor
  evict new Fix the login timeout -e

  # No title: fill in an interactive form
  evict new`,
	Run: func(cmd *cobra.Command, args []string) {
		machine := fsm.New(newStep, newFlags{})
		machine.Run(args)
		flags := machine.FinalState()

		title := flags.title
		body, _ := cmd.Flags().GetString("body")

		if title == "" {
			if !ui.IsTerminal() {
				fail("a title must be provided")
			}
			var err error
			title, body, err = issueForm(title, body)
			if err != nil {
				fail("%v", err)
			}
		}
		if edit, _ := cmd.Flags().GetBool("edit"); edit {
			text, err := editor.Compose(getEditor(), "ISSUE_BODY")
			if err != nil {
				fail("%v", err)
			}
			body = text
		}

		s := openStore()
		issues, err := s.LoadIssues()
		if err != nil {
			fail("%v", err)
		}
		issue := types.NewIssue(strings.TrimSpace(title), body, getAuthor(cmd), vcs.CurrentBranchOrUnknown())
		issues = append(issues, issue)
		if err := s.SaveIssues(issues); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Created issue %s\n", issue.ID)
	},
}

// issueForm collects a title and body interactively.
func issueForm(title, body string) (string, string, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Brief summary of the issue").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Body").
				Placeholder("Longer description (optional)").
				Value(&body),
		),
	)
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return title, body, nil
}

func init() {
	newCmd.Flags().StringP("body", "b", "", "Issue body text")
	newCmd.Flags().BoolP("edit", "e", false, "Compose the body in your editor")
	rootCmd.AddCommand(newCmd)
}

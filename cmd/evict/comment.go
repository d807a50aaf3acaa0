package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evict-bt/evict/internal/editor"
	"github.com/evict-bt/evict/internal/fsm"
	"github.com/evict-bt/evict/internal/selection"
	"github.com/evict-bt/evict/internal/types"
	"github.com/evict-bt/evict/internal/vcs"
)

type commentFlags struct {
	idFragment string
	body       string
}

// commentStep takes the first token as the id fragment; the rest become
// the comment body.
func commentStep(flags commentFlags, token string) fsm.Outcome[commentFlags] {
	if flags.idFragment == "" {
		flags.idFragment = token
		return fsm.Continue(flags)
	}
	if flags.body != "" {
		flags.body += " "
	}
	flags.body += token
	return fsm.Continue(flags)
}

var commentCmd = &cobra.Command{
	Use:   "comment [issue-id] [text...]",
	Short: "Add a comment to an issue's timeline",
	Long: `Add a comment to an issue's timeline.

Examples:
  # Inline text
  evict comment 4821 Reproduced on the release branch

  # Body from a file
  evict comment 4821 -f notes.md

  # No text: compose in your editor
  evict comment 4821`,
	Run: func(cmd *cobra.Command, args []string) {
		machine := fsm.New(commentStep, commentFlags{})
		machine.Run(args)
		flags := machine.FinalState()
		if flags.idFragment == "" {
			fail("the issue id, or an end section of it, must be provided")
		}

		body := flags.body
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			data, err := os.ReadFile(file) // #nosec G304 - user-provided file path is intentional
			if err != nil {
				fail("reading file: %v", err)
			}
			body = string(data)
		}
		if body == "" {
			text, err := editor.Compose(getEditor(), "COMMENT_ON_"+flags.idFragment)
			if err != nil {
				fail("%v", err)
			}
			body = text
		}
		if strings.TrimSpace(body) == "" {
			fail("no comment body provided")
		}

		s := openStore()
		issues, err := s.LoadIssues()
		if err != nil {
			fail("%v", err)
		}
		author := getAuthor(cmd)
		branch := vcs.CurrentBranchOrUnknown()
		var commentedOn string
		updated, err := selection.UpdateIssue(flags.idFragment, issues, func(issue *types.Issue) *types.Issue {
			issue.AddComment(types.NewComment(author, body, branch))
			commentedOn = issue.ID
			return issue
		})
		if err != nil {
			fail("%v", err)
		}
		if err := s.SaveIssues(updated); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Commented on %s\n", commentedOn)
	},
}

func init() {
	commentCmd.Flags().StringP("file", "f", "", "Read the comment body from a file")
	rootCmd.AddCommand(commentCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evict-bt/evict/internal/fsm"
	"github.com/evict-bt/evict/internal/selection"
	"github.com/evict-bt/evict/internal/types"
	"github.com/evict-bt/evict/internal/ui"
)

// displayTimeFormat is for terminal output only; the stored form uses the
// codec's wire format.
const displayTimeFormat = "2006-01-02 15:04"

type showFlags struct {
	idFragment string
}

// showStep takes the first token as the id fragment and halts on anything
// further.
func showStep(flags showFlags, token string) fsm.Outcome[showFlags] {
	if flags.idFragment != "" {
		return fsm.Halt(flags)
	}
	flags.idFragment = token
	return fsm.Continue(flags)
}

var showCmd = &cobra.Command{
	Use:   "show [issue-id]",
	Short: "Show an issue and its timeline",
	Long: `Show an issue's metadata, body and full timeline.

The issue id may be abbreviated to any trailing fragment that is unique
within the collection.`,
	Run: func(cmd *cobra.Command, args []string) {
		machine := fsm.New(showStep, showFlags{})
		machine.Run(args)
		flags := machine.FinalState()
		if flags.idFragment == "" {
			fail("the issue id, or an end section of it, must be provided")
		}

		s := openStore()
		issues, err := s.LoadIssues()
		if err != nil {
			fail("%v", err)
		}
		issue, err := selection.FindByIDFragment(flags.idFragment, issues)
		if err != nil {
			fail("%v", err)
		}
		printIssue(issue)
	},
}

func printIssue(issue *types.Issue) {
	fmt.Println(ui.RenderTitle(issue.Title))
	fmt.Println(ui.RenderMuted("id:      " + issue.ID))
	fmt.Println(ui.RenderMuted("author:  " + issue.Author))
	fmt.Println(ui.RenderMuted("branch:  " + issue.Branch))
	fmt.Println(ui.RenderMuted("created: " + issue.CreatedAt.Format(displayTimeFormat)))
	fmt.Println(ui.RenderMuted("status:  " + issue.Status.Name))
	if tags := issue.AllTags(); len(tags) > 0 {
		fmt.Println(ui.RenderMuted("tags:    ") + ui.RenderTag(strings.Join(tags, ", ")))
	}
	if issue.Body != "" {
		fmt.Println()
		fmt.Print(ui.RenderMarkdown(issue.Body))
	}
	if len(issue.Events) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(ui.RenderHeader("TIMELINE"))
	for _, evt := range issue.Events {
		when := evt.EventTime().Format(displayTimeFormat)
		switch e := evt.(type) {
		case *types.Comment:
			fmt.Printf("%s %s\n", ui.RenderAccent(e.Author), ui.RenderMuted(when))
			fmt.Print(ui.RenderMarkdown(e.Body))
		case *types.Tag:
			verb := "tagged"
			if !e.Enabled {
				verb = "untagged"
			}
			fmt.Printf("%s %s %s %s\n", ui.RenderAccent(e.Author), verb, ui.RenderTag(e.Name), ui.RenderMuted(when))
		}
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}

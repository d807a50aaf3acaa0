package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evict-bt/evict/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List issues",
	Long: `List issues with their status and currently enabled tags.

Examples:
  evict list
  evict list --status open
  evict list --tag urgent`,
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		issues, err := s.LoadIssues()
		if err != nil {
			fail("%v", err)
		}

		statusFilter, _ := cmd.Flags().GetString("status")
		tagFilter, _ := cmd.Flags().GetString("tag")

		shown := 0
		for _, issue := range issues {
			if statusFilter != "" && issue.Status.Name != statusFilter {
				continue
			}
			tags := issue.AllTags()
			if tagFilter != "" && !containsTag(tags, tagFilter) {
				continue
			}
			line := fmt.Sprintf("%s  %s  %s",
				ui.RenderAccent(shortID(issue.ID)),
				ui.RenderTitle(issue.Title),
				ui.RenderMuted("["+issue.Status.Name+"]"))
			if len(tags) > 0 {
				line += "  " + ui.RenderTag(strings.Join(tags, ","))
			}
			fmt.Println(line)
			shown++
		}
		if shown == 0 {
			fmt.Println("No issues.")
		}
	},
}

func containsTag(tags []string, name string) bool {
	for _, tag := range tags {
		if tag == name {
			return true
		}
	}
	return false
}

// shortID returns the id suffix that is convenient to type back into
// commands taking an id fragment.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Only issues with this status")
	listCmd.Flags().StringP("tag", "t", "", "Only issues with this tag enabled")
	rootCmd.AddCommand(listCmd)
}

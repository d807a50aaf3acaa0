package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evict-bt/evict/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .evict tracker in the current directory",
	Long: `Create the .evict tracker directory and an empty issue collection.

Safe to run on an already-initialized tracker.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := store.Default()
		if err := s.Init(); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Initialized issue tracker in %s\n", s.Dir())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

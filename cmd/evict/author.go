package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evict-bt/evict/internal/configfile"
	"github.com/evict-bt/evict/internal/fsm"
)

type authorFlags struct {
	name string
}

// authorStep joins every positional token into the author name.
func authorStep(flags authorFlags, token string) fsm.Outcome[authorFlags] {
	if flags.name != "" {
		flags.name += " "
	}
	flags.name += token
	return fsm.Continue(flags)
}

var authorCmd = &cobra.Command{
	Use:   "author [name...]",
	Short: "Show or set the recorded author name",
	Long: `Show the author that will be recorded on new issues and events,
or set it in the tracker config when a name is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(getAuthor(cmd))
			return
		}

		machine := fsm.New(authorStep, authorFlags{})
		machine.Run(args)
		name := machine.FinalState().name

		s := openStore()
		cfg := configfile.Load(s.Dir())
		cfg.Author = name
		if err := cfg.Save(s.Dir()); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Author set to %s\n", name)
	},
}

func init() {
	rootCmd.AddCommand(authorCmd)
}

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evict-bt/evict/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "evict",
	Short: "File-backed issue tracking inside your working copy",
	Long: `evict keeps structured issue records next to your code.

Issues live in .evict/issues.json as versioned JSON. Each issue carries a
timeline of events (comments, tag toggles); the current tag state and the
workflow status are derived from that history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringP("author", "a", "", "Author name recorded on new issues and events")
}

// initConfig wires the tracker config file and EVICT_* env vars through
// viper. A missing config file is fine; every setting has a fallback.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(store.DirName)
	viper.SetEnvPrefix("EVICT")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// fail prints a message and exits non-zero. User input and store errors
// are surfaced this way, never as panics.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// openStore returns the tracker store, failing with a hint when the
// current directory has no initialized tracker.
func openStore() *store.Store {
	s := store.Default()
	if !s.Exists() {
		fail("%v", store.ErrNotInitialized)
	}
	return s
}

// getAuthor resolves the author recorded on new records.
// Priority: --author flag > EVICT_AUTHOR env / config author > git config
// user.name > $USER > "unknown".
func getAuthor(cmd *cobra.Command) string {
	if author, _ := cmd.Flags().GetString("author"); author != "" {
		return author
	}
	if author := viper.GetString("author"); author != "" {
		return author
	}
	if out, err := exec.Command("git", "config", "user.name").Output(); err == nil {
		if name := strings.TrimSpace(string(out)); name != "" {
			return name
		}
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "unknown"
}

// getEditor returns the configured editor command, empty when unset.
func getEditor() string {
	return viper.GetString("editor")
}

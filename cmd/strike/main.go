// strike is Shadow Strike, a side-scrolling ninja runner for the terminal
// with adaptive difficulty.
//
// Usage:
//
//	strike play              - Play in this terminal
//	strike serve             - Start SSH server for remote play
//	strike scores            - Print the score history
//	strike board             - Browse the score history interactively
//	strike backends          - List difficulty suggestion backends
//	strike suggest-server    - Serve difficulty suggestions over HTTP
//	strike config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.strike/scores.db, env STRIKE_DB)
//	--config <path>       - Load configuration from a YAML file
//	--difficulty <name>   - Difficulty suggestion backend
//	--suggest-url <url>   - Suggestion service URL for the remote backend (env STRIKE_SUGGEST_URL)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where play writes its log (default: ~/.strike/strike.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/shadow-strike/internal/difficulty/linear"
	_ "github.com/vovakirdan/shadow-strike/internal/difficulty/remote"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSuggestURL string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "strike",
	Short: "Shadow Strike - a ninja runner in your terminal",
	Long: `Shadow Strike is a side-scrolling runner: jump over obstacles and throw
shuriken at incoming enemies. The game gets harder as your score grows,
driven by a difficulty suggestion backend.

Available commands:
  play            - Play in this terminal
  serve           - Start SSH server for remote play
  scores          - Print the score history
  board           - Browse the score history interactively
  backends        - List difficulty suggestion backends
  suggest-server  - Serve difficulty suggestions over HTTP
  config          - Print the effective configuration

Examples:
  strike play
  strike play --difficulty fixed
  strike suggest-server --listen :8080
  strike play --difficulty remote --suggest-url http://localhost:8080/difficulty
  strike serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.strike/scores.db)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty backend (see 'strike backends')")
	pf.StringVar(&flagSuggestURL, "suggest-url", "", "Suggestion service URL for the remote backend")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file for play (default ~/.strike/strike.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(suggestServerCmd)
	rootCmd.AddCommand(configCmd)
}

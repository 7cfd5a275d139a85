package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	logLevel   string
)

// rootCmd is the root command for vectorize.
var rootCmd = &cobra.Command{
	Use:     "vectorize",
	Version: "dev",
	Short:   "Find the flat parts in a woodworking design",
	Long: `vectorize evaluates a design file, finds every solid that is a flat part
of the chosen stock thickness, and reports the face each part is cut from.

Designs are written in a small lisp:

  (defpart "shelf" (board :length 800 :width 200 :thickness 18))
  (place (part "shelf") :at (vec3 0 0 150))`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion sets the version printed by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides VECTORIZE_LOG_LEVEL")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "design",
		Title: "Design Commands:",
	})

	partsCmd.GroupID = "design"
	graphicsCmd.GroupID = "design"
	checkCmd.GroupID = "design"
	rootCmd.AddCommand(partsCmd)
	rootCmd.AddCommand(graphicsCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

package cli

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a design without building parts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, args[0])
		if err != nil {
			return err
		}

		result := newApp(cmd, loadConfig()).Check(cmd.Context(), source)

		if jsonOutput {
			if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			return reportFindings(cmd, result.Errors, nil)
		}

		if err := reportFindings(cmd, result.Errors, result.Warnings); err != nil {
			return err
		}
		PrintSuccess(cmd.OutOrStdout(), "Design is valid")
		return nil
	},
}

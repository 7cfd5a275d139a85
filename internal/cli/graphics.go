package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var graphicsSelect []string

var graphicsCmd = &cobra.Command{
	Use:   "graphics FILE",
	Short: "List the solids of a design and their mirrored faces",
	Long: `Evaluate a design and list every solid with each pair of mirrored faces
it holds, at any thickness. Useful for finding why a part is ambiguous.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		source, err := readSource(cmd, args[0])
		if err != nil {
			return err
		}

		result := newApp(cmd, cfg).Graphics(cmd.Context(), source, graphicsSelect)

		if jsonOutput {
			if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			return reportFindings(cmd, result.Errors, nil)
		}

		if err := reportFindings(cmd, result.Errors, result.Warnings); err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(result.Graphics) == 0 {
			PrintEmptyState(w, "No solids found")
			return nil
		}
		for _, g := range result.Graphics {
			PrintSection(w, g.Name)
			PrintLabelValue(w, "Faces", fmt.Sprint(g.Faces))
			if len(g.Mirrors) == 0 {
				PrintEmptyState(w, "No mirrored faces")
				continue
			}
			rows := make([][]string, 0, len(g.Mirrors))
			for _, m := range g.Mirrors {
				rows = append(rows, []string{m.Axis, formatMM(m.Distance), m.Faces[0], m.Faces[1]})
			}
			PrintTable(w, []string{"AXIS", "DISTANCE", "FACE", "MIRROR"}, rows)
		}
		return nil
	},
}

func init() {
	graphicsCmd.Flags().StringSliceVar(&graphicsSelect, "select", nil, "List only the named parts or assemblies")
}

package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/chazu/vectorize/internal/app"
)

var (
	partsThickness float64
	partsSelect    []string
	partsStrict    bool
)

var partsCmd = &cobra.Command{
	Use:   "parts FILE",
	Short: "List the flat parts of a design",
	Long: `Evaluate a design and list every part that can be cut from stock of the
given thickness, along with the face it is cut from.

A part with more than one candidate face is reported as invalid. Use "-"
to read the design from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if partsThickness > 0 {
			cfg.Thickness = partsThickness
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		source, err := readSource(cmd, args[0])
		if err != nil {
			return err
		}

		result := newApp(cmd, cfg).Vectorize(cmd.Context(), source, app.Options{Select: partsSelect})

		if jsonOutput {
			if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
		} else {
			printParts(cmd, cfg.Thickness, result)
		}

		if err := reportFindings(cmd, result.Errors, nil); err != nil {
			return err
		}
		if partsStrict && len(result.Invalid) > 0 {
			return fmt.Errorf("%s without a single orientation", PrintCount(len(result.Invalid), "part", "parts"))
		}
		return nil
	},
}

func init() {
	partsCmd.Flags().Float64VarP(&partsThickness, "thickness", "t", 0, "Stock thickness in mm; overrides VECTORIZE_THICKNESS")
	partsCmd.Flags().StringSliceVar(&partsSelect, "select", nil, "Analyze only the named parts or assemblies")
	partsCmd.Flags().BoolVar(&partsStrict, "strict", false, "Exit non-zero when any part is invalid")
}

func printParts(cmd *cobra.Command, thickness float64, result app.Result) {
	w := cmd.OutOrStdout()
	for _, warning := range result.Warnings {
		PrintWarning(w, describe(warning))
	}
	if len(result.Errors) > 0 {
		return
	}

	PrintSection(w, fmt.Sprintf("Parts at %smm", formatMM(thickness)))
	if len(result.Parts) == 0 {
		PrintEmptyState(w, "No parts found")
		return
	}

	rows := lo.Map(result.Parts, func(p app.PartData, _ int) []string {
		if p.Axis == "" {
			return []string{p.Name, "-", "-", fmt.Sprintf("%d candidates", p.Candidates)}
		}
		dims := lo.Map(p.Dimensions, func(d float64, _ int) string { return formatMM(d) })
		return []string{p.Name, p.Axis, strings.Join(dims, " x "), ""}
	})
	PrintTable(w, []string{"NAME", "AXIS", "SIZE", "NOTE"}, rows)
	_, _ = fmt.Fprintln(w)

	if len(result.Invalid) == 0 {
		PrintSuccess(w, fmt.Sprintf("%s, all oriented", PrintCount(len(result.Parts), "part", "parts")))
		return
	}
	for _, p := range result.Invalid {
		PrintWarning(w, fmt.Sprintf("%s has %d candidate orientations", p.Name, p.Candidates))
	}
}

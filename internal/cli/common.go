package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/vectorize/internal/app"
	"github.com/chazu/vectorize/internal/config"
	"github.com/chazu/vectorize/internal/logging"
)

// errDesign is returned after a design's errors have been reported.
var errDesign = errors.New("design has errors")

// loadConfig reads the environment and applies the global flags.
func loadConfig() config.Config {
	cfg := config.Load()
	if logLevel != "" {
		cfg.LogLevel = strings.ToLower(logLevel)
	}
	return cfg
}

// newApp builds the app with a logger writing to the command's stderr.
func newApp(cmd *cobra.Command, cfg config.Config) *app.App {
	return app.New(cfg, logging.NewWithWriter(cmd.ErrOrStderr(), cfg))
}

// readSource reads the design file at path, or stdin for "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read design: %w", err)
	}
	return string(data), nil
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportFindings prints errors to stderr and warnings to stdout. It
// returns errDesign when there were errors.
func reportFindings(cmd *cobra.Command, errs, warnings []app.ErrorData) error {
	for _, w := range warnings {
		PrintWarning(cmd.OutOrStdout(), describe(w))
	}
	for _, e := range errs {
		PrintError(cmd.ErrOrStderr(), describe(e))
	}
	if len(errs) > 0 {
		return errDesign
	}
	return nil
}

// describe formats a finding with its location.
func describe(e app.ErrorData) string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	case e.Node != "":
		return fmt.Sprintf("%s: %s", e.Node, e.Message)
	default:
		return e.Message
	}
}

// formatMM formats a length without trailing zeros.
func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

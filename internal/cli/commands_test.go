package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/chazu/vectorize/internal/app"
	"github.com/chazu/vectorize/internal/config"
)

const boxPath = "../../examples/box.lisp"

const ambiguous = `
(defpart "block" (board :length 19 :width 19 :thickness 19))
(place (part "block"))
`

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvThickness, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvLogLevel, "error")
}

func TestPartsCommand_JSON(t *testing.T) {
	setupEnv(t)
	out, _, err := execute(t, nil, "parts", boxPath, "-t", "19", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result app.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(result.Parts) != 5 {
		t.Errorf("expected 5 parts, got %d", len(result.Parts))
	}
	if len(result.Invalid) != 0 {
		t.Errorf("expected no invalid parts, got %d", len(result.Invalid))
	}
}

func TestPartsCommand_Table(t *testing.T) {
	setupEnv(t)
	out, _, err := execute(t, nil, "parts", boxPath, "--thickness", "19")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Parts at 19mm", "bottom", "262 x 362", "5 parts, all oriented"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPartsCommand_ThicknessFromEnv(t *testing.T) {
	setupEnv(t)
	t.Setenv(config.EnvThickness, "19")
	out, _, err := execute(t, nil, "parts", boxPath, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, `"thickness": 19`) {
		t.Errorf("expected parts at 19, got:\n%s", out)
	}
}

func TestPartsCommand_NoThickness(t *testing.T) {
	setupEnv(t)
	_, _, err := execute(t, nil, "parts", boxPath)
	if !errors.Is(err, config.ErrNoThickness) {
		t.Errorf("expected ErrNoThickness, got %v", err)
	}
}

func TestPartsCommand_Select(t *testing.T) {
	setupEnv(t)
	out, _, err := execute(t, nil, "parts", "../../examples/shelf.lisp", "-t", "18", "--select", "shelf", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var result app.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(result.Parts) != 1 || result.Parts[0].Name != "shelf" {
		t.Errorf("expected only the shelf, got %+v", result.Parts)
	}
}

func TestPartsCommand_Strict(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, strings.NewReader(ambiguous), "parts", "-", "-t", "19")
	if err != nil {
		t.Fatalf("without --strict an invalid part is not an error, got %v", err)
	}
	if !strings.Contains(out, "block has 3 candidate orientations") {
		t.Errorf("expected a warning about block, got:\n%s", out)
	}

	_, _, err = execute(t, strings.NewReader(ambiguous), "parts", "-", "-t", "19", "--strict")
	if err == nil || !strings.Contains(err.Error(), "1 part without a single orientation") {
		t.Errorf("expected a strict failure, got %v", err)
	}
}

func TestPartsCommand_DesignErrors(t *testing.T) {
	setupEnv(t)
	_, stderr, err := execute(t, strings.NewReader(`(place (part "missing"))`), "parts", "-", "-t", "19")
	if !errors.Is(err, errDesign) {
		t.Fatalf("expected errDesign, got %v", err)
	}
	if !strings.Contains(stderr, "missing") {
		t.Errorf("expected stderr to name the missing part, got %q", stderr)
	}
}

func TestPartsCommand_MissingFile(t *testing.T) {
	setupEnv(t)
	_, _, err := execute(t, nil, "parts", "does-not-exist.lisp", "-t", "19")
	if err == nil || !strings.Contains(err.Error(), "failed to read design") {
		t.Errorf("expected a read error, got %v", err)
	}
}

func TestGraphicsCommand(t *testing.T) {
	setupEnv(t)
	out, _, err := execute(t, nil, "graphics", boxPath, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var result app.GraphicsResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(result.Graphics) != 5 {
		t.Errorf("expected 5 graphics, got %d", len(result.Graphics))
	}

	out, _, err = execute(t, nil, "graphics", boxPath, "--select", "front")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "front") || !strings.Contains(out, "DISTANCE") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCheckCommand(t *testing.T) {
	setupEnv(t)
	out, _, err := execute(t, nil, "check", boxPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Design is valid") {
		t.Errorf("expected success message, got:\n%s", out)
	}

	bad := `(defpart "a" (board :length 10 :width 0 :thickness 1)) (place (part "a"))`
	_, stderr, err := execute(t, strings.NewReader(bad), "check", "-")
	if !errors.Is(err, errDesign) {
		t.Fatalf("expected errDesign, got %v", err)
	}
	if !strings.Contains(stderr, "a: board dimension Y") {
		t.Errorf("expected a dimension error, got %q", stderr)
	}
}

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/registry"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func execRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[strings.Fields(sub.Use)[0]] = true
	}
	for _, expected := range []string{"convert", "units", "history", "tui", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"debug", "no-temperature", "config"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected --%s persistent flag", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- REPL ---

func TestRoot_RunsInteractiveSession(t *testing.T) {
	tmp := t.TempDir()

	out, err := execRoot(t, "5 m to cm\nabc\nexit\n", "--config", tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.DefaultPrompt + "\n" +
		"5.0 meters is 500.0 centimeters\n" +
		domain.DefaultPrompt + "\n" +
		"Parse error\n" +
		domain.DefaultPrompt + "\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRoot_NoTemperatureFlag(t *testing.T) {
	tmp := t.TempDir()

	out, err := execRoot(t, "100 c to k\n", "--config", tmp, "--no-temperature")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Conversion from ??? to ??? is impossible") {
		t.Fatalf("expected temperature to be unknown, got:\n%s", out)
	}
}

// --- convert ---

func TestConvertCmd_Pretty(t *testing.T) {
	out, err := execRoot(t, "", "--config", t.TempDir(), "convert", "5", "m", "to", "cm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5.0 meters is 500.0 centimeters\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertCmd_FailureReturnsError(t *testing.T) {
	out, err := execRoot(t, "", "--config", t.TempDir(), "convert", "5", "m", "to", "kg")
	if err == nil {
		t.Fatal("expected error for impossible conversion")
	}
	if !strings.Contains(err.Error(), string(domain.KindFamilyMismatch)) {
		t.Fatalf("expected kind in error, got %v", err)
	}
	if !strings.Contains(out, "Conversion from meters to kilograms is impossible") {
		t.Fatalf("expected message in output, got %q", out)
	}
}

func TestConvertCmd_NegativeAfterDoubleDash(t *testing.T) {
	out, err := execRoot(t, "", "--config", t.TempDir(), "convert", "--", "-40", "c", "to", "f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "-40.0 degrees Celsius is -40.0 degrees Fahrenheit\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

// --- printResult ---

func TestPrintResult_JSON(t *testing.T) {
	e := usecase.NewEngine(registry.Default())
	res := e.Evaluate("5 m to cm")

	var buf bytes.Buffer
	if err := printResult(&buf, "5 m to cm", res, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["ok"] != true || payload["from"] != "m" || payload["to"] != "cm" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload["converted"] != 500.0 {
		t.Fatalf("expected converted=500, got %v", payload["converted"])
	}
}

func TestPrintResult_JSONParseError(t *testing.T) {
	e := usecase.NewEngine(registry.Default())

	var buf bytes.Buffer
	if err := printResult(&buf, "x", e.Evaluate("x"), "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload["kind"] != string(domain.KindParse) {
		t.Fatalf("expected parse kind, got %v", payload["kind"])
	}
	if _, ok := payload["quantity"]; ok {
		t.Fatalf("expected no quantity for parse errors")
	}
}

func TestPrintResult_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printResult(&buf, "", domain.ConversionResult{}, "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

// --- units ---

func TestPrintUnits_PrettyGroupsByFamily(t *testing.T) {
	var buf bytes.Buffer
	if err := printUnits(&buf, registry.Default().Units(), "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, w := range []string{"length:", "mass:", "temperature:", "foot / feet", "degreescelsius"} {
		if !strings.Contains(out, w) {
			t.Errorf("expected %q in output:\n%s", w, out)
		}
	}
}

func TestUnitsCmd_FamilyFilterJSON(t *testing.T) {
	out, err := execRoot(t, "", "--config", t.TempDir(), "units", "--family", "mass", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var units []unitPayload
	if err := json.Unmarshal([]byte(out), &units); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(units) != 5 {
		t.Fatalf("expected 5 mass units, got %d", len(units))
	}
	for _, u := range units {
		if u.Family != "mass" {
			t.Fatalf("unexpected family %q", u.Family)
		}
	}
}

func TestUnitsCmd_UnknownFamily(t *testing.T) {
	_, err := execRoot(t, "", "--config", t.TempDir(), "units", "--family", "volume")
	if err == nil {
		t.Fatal("expected error for unknown family")
	}
}

// --- init + history ---

func TestInitThenHistory(t *testing.T) {
	tmp := t.TempDir()

	if _, err := execRoot(t, "", "init", "--path", tmp); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := execRoot(t, "", "--config", tmp, "convert", "1", "kg", "to", "g"); err != nil {
		t.Fatalf("convert: %v", err)
	}

	out, err := execRoot(t, "", "--config", tmp, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "1 kg to g") || !strings.Contains(out, "1.0 kilogram is 1000.0 grams") {
		t.Fatalf("expected conversion in history, got:\n%s", out)
	}
	if _, statErr := os.Stat(filepath.Join(tmp, ".unitconv", "history.jsonl")); statErr != nil {
		t.Fatalf("expected history file: %v", statErr)
	}
}

func TestHistory_DisabledWithoutConfig(t *testing.T) {
	out, err := execRoot(t, "", "--config", t.TempDir(), "history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "unitconv init") {
		t.Fatalf("expected init hint, got %q", out)
	}
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, []domain.HistoryEntry{
		{At: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), Input: "5 m to kg", Kind: domain.KindFamilyMismatch, Message: "Conversion from meters to kilograms is impossible"},
	})
	out := buf.String()
	if !strings.Contains(out, "[family_mismatch] 5 m to kg") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	buf.Reset()
	printHistory(&buf, nil)
	if !strings.Contains(buf.String(), "no history") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

// --- resolveStartDir ---

func TestResolveStartDir_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveStartDir(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveStartDir_RelativePath(t *testing.T) {
	got, err := resolveStartDir(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

func TestPrintResult_JSONOverflowOmitsConverted(t *testing.T) {
	e := usecase.NewEngine(registry.Default())
	res := e.Evaluate("1e308 km to mm")

	var buf bytes.Buffer
	if err := printResult(&buf, "1e308 km to mm", res, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if _, ok := payload["converted"]; ok {
		t.Fatalf("expected converted to be omitted, got %v", payload["converted"])
	}
	if payload["ok"] != true || payload["message"] != "1.0E308 kilometers is Infinity millimeters" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestInitCmd_KeepsExistingConfig(t *testing.T) {
	tmp := t.TempDir()

	out, err := execRoot(t, "", "init", "--path", tmp)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Wrote ") || !strings.Contains(out, "Added .unitconv/ to .gitignore") {
		t.Fatalf("unexpected first init output:\n%s", out)
	}

	out, err = execRoot(t, "", "init", "--path", tmp)
	if err != nil {
		t.Fatalf("init again: %v", err)
	}
	if !strings.Contains(out, "Kept existing") || strings.Contains(out, ".gitignore") {
		t.Fatalf("unexpected second init output:\n%s", out)
	}
}

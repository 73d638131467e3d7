package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig puts a minimal config file in a temp dir so tests never
// pick up the developer's ~/.mapcell/cli.yaml.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestAppStructure(t *testing.T) {
	app := App()

	if app.Name != "mapcell" {
		t.Errorf("app name = %q, want mapcell", app.Name)
	}
	if app.Action == nil {
		t.Error("app has no default action")
	}

	want := []string{"shell", "eval", "version"}
	if len(app.Commands) != len(want) {
		t.Fatalf("got %d commands, want %d", len(app.Commands), len(want))
	}
	for i, name := range want {
		if app.Commands[i].Name != name {
			t.Errorf("command %d = %q, want %q", i, app.Commands[i].Name, name)
		}
	}
}

func TestAppRunsShellByDefault(t *testing.T) {
	cfgPath := writeConfig(t, "prompt: \"> \"\nhistory_file: \"\"\n")

	app := App()
	app.Reader = strings.NewReader("init\nexit\n")
	var out strings.Builder
	app.Writer = &out

	if err := app.Run([]string{"mapcell", "-c", cfgPath}); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "use `help` if you are totally lost") {
		t.Errorf("missing banner in output:\n%s", got)
	}
	if !strings.Contains(got, "m = {}") {
		t.Errorf("missing init result in output:\n%s", got)
	}
}

func TestAppExplicitMissingConfig(t *testing.T) {
	app := App()
	app.Reader = strings.NewReader("exit\n")
	app.Writer = &strings.Builder{}

	err := app.Run([]string{"mapcell", "-c", "/nonexistent/cli.yaml", "shell"})
	if err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestVersionCommand(t *testing.T) {
	cfgPath := writeConfig(t, "output: plain\n")

	app := App()
	var out strings.Builder
	app.Writer = &out

	if err := app.Run([]string{"mapcell", "-c", cfgPath, "version"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "version:") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}

func TestOutputFlagOverridesConfig(t *testing.T) {
	cfgPath := writeConfig(t, "output: plain\n")

	app := App()
	var out strings.Builder
	app.Writer = &out

	args := []string{"mapcell", "-c", cfgPath, "-o", "json", "version"}
	if err := app.Run(args); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `"key": "version"`) {
		t.Errorf("expected json output, got: %q", out.String())
	}
}

func TestInvalidOutputFlag(t *testing.T) {
	cfgPath := writeConfig(t, "output: plain\n")

	app := App()
	app.Writer = &strings.Builder{}

	err := app.Run([]string{"mapcell", "-c", cfgPath, "-o", "bogus", "version"})
	if err == nil {
		t.Fatal("expected error for invalid output format")
	}
}

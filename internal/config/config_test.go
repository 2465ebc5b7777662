package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points the loader at a nonexistent config file so host
// configuration never leaks into a test.
func isolate(extra ...string) []string {
	return append([]string{"RDCT_CONFIG=/nonexistent/rdct.yaml"}, extra...)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, isolate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected size defaults 0, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer shown by default")
	}
	if cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected verbose and trace off by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := isolate("RDCT_WIDTH=100", "RDCT_FOOTER=true")
	cfg, err := LoadArgs([]string{"-width", "80", "-footer=false"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag to win over env, got width %d", cfg.App.Width)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected flag to disable footer")
	}
}

func TestLoadArgsEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "width: 50\nheight: 20\ntrace: true\n")
	env := []string{"RDCT_CONFIG=" + path, "RDCT_WIDTH=70"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 70 {
		t.Fatalf("expected env width 70, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 20 {
		t.Fatalf("expected file height 20, got %d", cfg.App.Height)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from file")
	}
}

func TestLoadArgsFileDefaults(t *testing.T) {
	path := writeConfigFile(t, "footer: false\nlog_file: /tmp/alt.log\n")
	cfg, err := LoadArgs(nil, []string{"RDCT_CONFIG=" + path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled via file")
	}
	if cfg.Logging.FilePath != "/tmp/alt.log" {
		t.Fatalf("expected log file from config file, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsMalformedFileIgnored(t *testing.T) {
	path := writeConfigFile(t, "width: [not an int\n")
	cfg, err := LoadArgs(nil, []string{"RDCT_CONFIG=" + path})
	if err != nil {
		t.Fatalf("expected malformed file to be ignored, got error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected default width, got %d", cfg.App.Width)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, isolate()); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, isolate()); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsInvalidEnvFallsBack(t *testing.T) {
	env := isolate("RDCT_WIDTH=banana", "RDCT_TRACE=maybe")
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected unparsable width ignored, got %d", cfg.App.Width)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected unparsable trace ignored")
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"-trace", "-width", "42"}
	cfg, err := LoadArgs(args, isolate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Flags["width"] != "42" || cfg.Flags["trace"] != "true" {
		t.Fatalf("expected resolved flag snapshot, got %v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected raw args preserved, got %v", cfg.Args)
	}
}

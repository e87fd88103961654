package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	// Missing file yields the zero config
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() with no file: %v", err)
	}
	if cfg.Token != "" || cfg.Timeout.Duration != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}

	dir := filepath.Join(tmp, appName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "token = \"ghp_test\"\ntimeout = \"10s\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Token != "ghp_test" {
		t.Errorf("Token = %q, want %q", cfg.Token, "ghp_test")
	}
	if cfg.Timeout.Duration != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout.Duration)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, appName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("timeout = \"not-a-duration\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30s", 30 * time.Second, false},
		{"1m30s", 90 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"", 0, true},
		{"fast", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d duration
			err := d.UnmarshalText([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && d.Duration != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, d.Duration, tt.want)
			}
		})
	}
}

func TestConfigInitCommand(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	c := New(io.Discard, LogInfo)
	cmd := c.configInitCommand()
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	path := filepath.Join(tmp, appName, "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "token") {
		t.Error("template should mention the token setting")
	}

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := stat.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}

	// Second run must leave the existing file alone
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("repeated config init failed: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(data) {
		t.Error("repeated config init should not rewrite the file")
	}
}

func TestConfigPathCommand(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	c := New(io.Discard, LogInfo)
	cmd := c.configPathCommand()
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("config path failed: %v", err)
	}
}

package cli

import (
	"io"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.infoCommand()

	if cmd.Use != "info owner/repo" {
		t.Errorf("Use = %q, want %q", cmd.Use, "info owner/repo")
	}

	for _, name := range []string{"json", "token", "timeout"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("info should define the --%s flag", name)
		}
	}

	if f := cmd.Flags().Lookup("timeout"); f != nil && f.DefValue != "30s" {
		t.Errorf("timeout default = %q, want %q", f.DefValue, "30s")
	}
}

func TestInfoCommandArgs(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.infoCommand()

	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("zero arguments should be rejected")
	}
	if err := cmd.Args(cmd, []string{"golang/go", "extra"}); err == nil {
		t.Error("two arguments should be rejected")
	}
	if err := cmd.Args(cmd, []string{"golang/go"}); err != nil {
		t.Errorf("one argument should be accepted: %v", err)
	}
}

func TestResolveToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	cfg := Config{Token: "from-config"}

	if got := resolveToken("from-flag", cfg); got != "from-flag" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := resolveToken("", cfg); got != "from-config" {
		t.Errorf("config should be the fallback, got %q", got)
	}
	if got := resolveToken("", Config{}); got != "" {
		t.Errorf("no sources should yield empty, got %q", got)
	}

	t.Setenv("GITHUB_TOKEN", "from-env")

	if got := resolveToken("", cfg); got != "from-env" {
		t.Errorf("environment should beat config, got %q", got)
	}
	if got := resolveToken("from-flag", cfg); got != "from-flag" {
		t.Errorf("flag should beat environment, got %q", got)
	}
}

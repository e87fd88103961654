package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// duration wraps time.Duration so TOML values like "30s" parse directly.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config holds the optional settings read from the config file.
type Config struct {
	// Token authenticates API requests. Empty means anonymous access.
	Token string `toml:"token"`

	// Timeout bounds a single fetch. Zero means the built-in default.
	Timeout duration `toml:"timeout"`
}

// configTemplate is written by "ghrepo config init".
const configTemplate = `# ghrepo configuration
#
# token authenticates requests against api.github.com. Anonymous access
# works for public repositories but is limited to 60 requests per hour.
#token = "ghp_..."

# timeout bounds a single fetch, e.g. "10s" or "1m".
#timeout = "30s"
`

// configPath returns the config file location (~/.config/ghrepo/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the config file. A missing file is not an error; the
// zero Config is returned so flags and environment variables still apply.
func loadConfig() (Config, error) {
	var cfg Config

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the ghrepo configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a commented starter config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}

			if _, err := os.Stat(path); err == nil {
				printInfo("Config already exists")
				printFile(path)
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
				return fmt.Errorf("create config dir: %w", err)
			}
			if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			printSuccess("Config created")
			printFile(path)
			printNextStep("Add your token", "$EDITOR "+path)
			return nil
		},
	}
}

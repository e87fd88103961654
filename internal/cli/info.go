package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ghrepo/pkg/github"
)

// infoCommand creates the info command.
func (c *CLI) infoCommand() *cobra.Command {
	var (
		asJSON  bool
		token   string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "info owner/repo",
		Short: "Show metadata for a GitHub repository",
		Long: `Fetch metadata for a single GitHub repository and print a summary.

The API token is resolved from --token, then the GITHUB_TOKEN environment
variable, then the config file. Anonymous access works for public
repositories but is limited to 60 requests per hour.

Examples:
  ghrepo info golang/go
  ghrepo info golang/go --json
  ghrepo info golang/go --timeout 5s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(cmd, args[0], asJSON, token, timeout)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the metadata as JSON instead of a summary")
	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (overrides GITHUB_TOKEN and the config file)")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "timeout for the fetch")

	return cmd
}

func (c *CLI) runInfo(cmd *cobra.Command, ref string, asJSON bool, token string, timeout time.Duration) error {
	owner, repo, err := github.ParseRepoRef(ref)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token = resolveToken(token, cfg)
	if !cmd.Flags().Changed("timeout") && cfg.Timeout.Duration > 0 {
		timeout = cfg.Timeout.Duration
	}

	c.Logger.Debug("Fetching repository", "owner", owner, "repo", repo, "authenticated", token != "", "timeout", timeout)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	p := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s/%s...", owner, repo))
	spinner.Start()

	client := github.NewClient(token)
	info, err := client.GetRepoInfo(ctx, owner, repo)
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			spinner.StopWithError(fmt.Sprintf("Repository %s/%s not found", owner, repo))
		} else {
			spinner.StopWithError("Fetch failed")
		}
		return err
	}
	spinner.Stop()
	p.done(fmt.Sprintf("Fetched %s", info.FullName))

	if asJSON {
		return printJSON(info)
	}

	printRepoInfo(info)
	return nil
}

// resolveToken picks the API token in precedence order: flag, environment,
// config file. Empty means anonymous access.
func resolveToken(flag string, cfg Config) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env
	}
	return cfg.Token
}

// =============================================================================
// Output
// =============================================================================

// printJSON prints the metadata as indented JSON.
func printJSON(info *github.RepoInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printRepoInfo prints the metadata as a labeled summary.
func printRepoInfo(info *github.RepoInfo) {
	printSuccess("%s", info.FullName)

	if info.Description != "" {
		printKeyValue("Description", info.Description)
	}
	printKeyValue("Owner", fmt.Sprintf("%s (%s)", info.Owner.Login, info.Owner.Kind))
	printKeyValue("URL", StyleLink.Render(info.URL))
	if info.Homepage != "" {
		printKeyValue("Homepage", StyleLink.Render(info.Homepage))
	}
	if info.Language != "" {
		printKeyValue("Language", info.Language)
	}
	if info.License != nil {
		printKeyValue("License", info.License.Name)
	}
	printKeyValue("Stars", StyleNumber.Render(strconv.Itoa(info.Stars)))
	printKeyValue("Subscribers", StyleNumber.Render(strconv.Itoa(info.Subscribers)))
	printKeyValue("Forks", StyleNumber.Render(strconv.Itoa(info.Forks)))
	printKeyValue("Open issues", StyleNumber.Render(strconv.Itoa(info.OpenIssues)))
	printKeyValue("Branch", info.DefaultBranch)
	if len(info.Topics) > 0 {
		printKeyValue("Topics", strings.Join(info.Topics, ", "))
	}

	if info.Fork {
		printDetail("Fork of an upstream repository")
	}
	if info.Archived {
		printNewline()
		printWarning("This repository is archived and read-only")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yourusername/gitscout/internal/adapter/browser"
	"github.com/yourusername/gitscout/internal/adapter/config"
	"github.com/yourusername/gitscout/internal/adapter/github"
	"github.com/yourusername/gitscout/internal/adapter/i18n"
	"github.com/yourusername/gitscout/internal/adapter/telemetry"
	"github.com/yourusername/gitscout/internal/domain"
	"github.com/yourusername/gitscout/internal/ui"
)

var (
	version    = "0.1.0"
	cfgManager *config.Manager
)

func main() {
	var err error
	cfgManager, err = config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "gscout",
		Short: "gitscout - browse GitHub users from the terminal",
		Long: `gitscout (gscout) lists GitHub users page by page, searches them by
name and shows each user's profile and public repositories.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd.Context())
		},
	}

	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(userCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

func usersCmd() *cobra.Command {
	var since int64
	var perPage int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Print one page of GitHub users",
		Long: `Prints the users whose ID is greater than --since. Pass the last ID
printed as --since to read the next page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, s *session) error {
				if perPage <= 0 {
					perPage = s.cfg.GitHub.UsersPerPage
				}
				users, err := s.repo.FetchUsers(ctx, github.ListUsersOptions{PerPage: perPage, Since: since})
				if err != nil {
					return fmt.Errorf("%s: %w", s.localize(i18n.KeyFailedFetchUsers), err)
				}
				printUsers(users, s.localize)
				if last, ok := domain.LastUserID(users); ok {
					ui.PrintSubtle(fmt.Sprintf("next page: gscout users --since %d", last))
				}
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&since, "since", 0, "Only list users with an ID greater than this")
	cmd.Flags().IntVarP(&perPage, "per-page", "n", 0, "Page size (defaults to github.users_per_page)")

	return cmd
}

func searchCmd() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search GitHub users by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, s *session) error {
				if perPage <= 0 {
					perPage = s.cfg.GitHub.UsersPerPage
				}
				users, err := s.repo.SearchUsers(ctx, args[0], perPage)
				if err != nil {
					return fmt.Errorf("%s: %w", s.localize(i18n.KeyFailedSearch), err)
				}
				printUsers(users, s.localize)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&perPage, "per-page", "n", 0, "Maximum number of results")

	return cmd
}

func userCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user LOGIN",
		Short: "Show a user's profile and repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, s *session) error {
				detail, err := s.repo.FetchUserDetail(ctx, args[0])
				if err != nil {
					return fmt.Errorf("%s: %w", s.localize(i18n.KeyFailedUserInfo), err)
				}

				fmt.Printf("%s %s\n", ui.FormatValue(detail.DisplayName()), ui.FormatLabel("@"+detail.Login))
				fmt.Println(ui.FormatStats(*detail, s.localize(i18n.KeyFollowers), s.localize(i18n.KeyFollowing)))
				fmt.Println()

				repos, err := s.repo.FetchRepositories(ctx, detail.Login, s.cfg.GitHub.ReposPerPage)
				if err != nil {
					ui.PrintWarning(fmt.Sprintf("%s: %v", s.localize(i18n.KeyRepositories), err))
					return nil
				}
				fmt.Printf("%s (%d)  %s\n", s.localize(i18n.KeyRepositories), len(repos),
					ui.FormatTotalStars(repos, s.localize(i18n.KeyStars)))
				if len(repos) == 0 {
					ui.PrintSubtle(s.localize(i18n.KeyEmptyRepositories))
				}
				for _, repo := range repos {
					fmt.Println("  " + ui.FormatRepository(repo, "-"))
				}
				return nil
			})
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show gitscout settings",
		Long: `Prints the effective settings after environment overrides. Use
'gscout config set KEY VALUE' to change a setting in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set KEY VALUE",
		Short:     "Store a setting in the config file",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfgManager.Set(args[0], args[1]); err != nil {
				if errors.Is(err, config.ErrUnknownKey) {
					return fmt.Errorf("%w (known keys: %v)", err, config.Keys)
				}
				return err
			}
			ui.PrintSuccess(fmt.Sprintf("%s saved to %s", args[0], cfgManager.ConfigPath()))
			return nil
		},
	})

	return cmd
}

func runConfig() error {
	cfg, err := cfgManager.Resolve()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ui.PrintInfo(fmt.Sprintf("Config file: %s", cfgManager.ConfigPath()))
	for _, key := range config.Keys {
		value, err := config.Get(cfg, key)
		if err != nil {
			return err
		}
		if key == "github.token" && value != "" {
			value = value[:min(4, len(value))] + "***"
		}
		fmt.Printf("  %s = %s\n", ui.FormatLabel(key), ui.FormatValue(value))
	}
	ui.PrintSubtle(fmt.Sprintf("Themes: %v  Locales: %v", ui.GetThemeNames(), i18n.Locales()))
	return nil
}

func runBrowser(ctx context.Context) error {
	return withSession(ctx, func(ctx context.Context, s *session) error {
		model := ui.NewAppModel(ui.AppDeps{
			Repository: s.repo,
			Opener:     browser.NewOpener(),
			Config:     s.cfg,
			Localize:   s.localize,
			Logger:     s.logger,
			Version:    version,
		})

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("UI error: %w", err)
		}
		return nil
	})
}

// session is everything a command needs to talk to GitHub.
type session struct {
	cfg      *domain.Config
	repo     github.Repository
	localize func(string) string
	logger   *slog.Logger
}

// withSession resolves the configuration, wires logging, tracing and the API
// client, runs fn and tears everything down again.
func withSession(ctx context.Context, fn func(context.Context, *session) error) error {
	cfg, err := cfgManager.Resolve()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.OTLPEndpoint, "gitscout", version)
	if err != nil {
		logger.Warn("telemetry disabled", slog.Any("error", err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	if !cfg.HasToken() {
		if token, err := github.NewGHCLI().Token(ctx); err == nil {
			cfg.GitHub.Token = token
			logger.Debug("using gh CLI token")
		}
	}
	if !cfg.HasToken() {
		logger.Info("no GitHub token configured, requests are rate limited")
	}

	ui.SetGlobalTheme(cfg.UI.Theme)
	localizer := i18n.New(cfg.UI.Locale)

	client := github.NewHTTPClient(github.TransportConfig{
		Token:     cfg.GitHub.Token,
		Timeout:   cfg.Timeout(),
		UserAgent: "gitscout/" + version,
	})
	repo := github.NewHTTPRepository(
		github.NewNetworkService(client, logger),
		github.WithBaseURL(cfg.GitHub.BaseURL),
	)

	return fn(ctx, &session{
		cfg:      cfg,
		repo:     repo,
		localize: localizer.Localize,
		logger:   logger,
	})
}

// newLogger writes text logs to cfg.File. The TUI owns the terminal, so an
// empty path discards logs instead of printing them.
func newLogger(cfg domain.LogConfig) (*slog.Logger, func(), error) {
	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func printUsers(users []domain.User, localize func(string) string) {
	if len(users) == 0 {
		ui.PrintSubtle(localize(i18n.KeyEmptyUsers))
		return
	}
	for _, user := range users {
		fmt.Println(ui.FormatUser(user))
	}
}

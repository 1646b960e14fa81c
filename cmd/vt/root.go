package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avitaltamir/vibetools/internal/app"
	"github.com/avitaltamir/vibetools/internal/clipboard"
	"github.com/avitaltamir/vibetools/internal/config"
	"github.com/avitaltamir/vibetools/internal/logger"
	"github.com/avitaltamir/vibetools/internal/theme"
)

type flags struct {
	configPath  string
	page        string
	theme       string
	debug       bool
	noClipboard bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "vt",
		Short: "Terminal toolbox for ids, encodings, hashes and conversions",
		Long: `vt is a two-pane terminal toolbox. Pick a tool on the left, then work
with it on the right: generate UUIDs and ULIDs, encode Base64 and URLs,
hash text, convert unix timestamps and number bases.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
	cmd.SetVersionTemplate(versionTemplate())

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (default $"+config.EnvPath+" or the user config dir)")
	cmd.Flags().StringVarP(&f.page, "page", "p", "", "Page to open first, e.g. hash or unixtime")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Color theme: "+strings.Join(theme.Names(), ", "))
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&f.noClipboard, "no-clipboard", false, "Keep copies in memory instead of the system clipboard")
	return cmd
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("vt %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("vt %s\n", version)
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	path := f.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("error loading config: %w", err)
	}

	if cmd.Flags().Changed("page") {
		cfg.StartPage = f.page
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = f.theme
	}
	if f.debug {
		cfg.Debug = true
	}
	if f.noClipboard {
		cfg.Clipboard.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid option: %w", err)
	}
	return cfg, nil
}

func runTUI(cfg config.Config) error {
	logger.SetDebug(cfg.Debug)
	logPath := cfg.LogFile
	if logPath == "" && cfg.Debug {
		logPath = logger.DefaultPath()
	}
	if logPath != "" {
		if err := logger.Init(logPath); err != nil {
			return err
		}
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	th, err := theme.ByName(cfg.Theme)
	if err != nil {
		return err
	}
	theme.ApplyTheme(th)

	var cb clipboard.Clipboard = clipboard.NewMemory("")
	if cfg.Clipboard.Enabled {
		cb = clipboard.NewSystem()
	}

	m, err := app.New(cfg, app.WithClipboard(cb))
	if err != nil {
		return err
	}

	logger.Info("starting vt %s", version)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

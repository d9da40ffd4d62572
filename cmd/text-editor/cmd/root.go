package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	texteditor "github.com/jeremyd1/text-editor"
	"github.com/jeremyd1/text-editor/internal/config"
)

type rootOptions struct {
	configPath string
	width      int
	debugLog   string
}

// NewRootCmd builds the text-editor command tree.
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "text-editor [file]",
		Short: "A line-wrapping terminal text editor",
		Long: `text-editor opens file (created on first save if it does not exist) in a
terminal editor that soft-wraps long lines at the window width.`,
		Version:      texteditor.ReadBuildInfo().String(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runEditor(cmd, opts, path)
		},
	}

	root.Flags().StringVar(&opts.configPath, "config", "", "settings file (default: <user config dir>/text-editor/config.toml)")
	root.Flags().IntVar(&opts.width, "width", 0, "wrap width in cells (0 follows the terminal)")
	root.Flags().StringVar(&opts.debugLog, "debug", "", "write debug log to this file")

	root.AddCommand(newLayoutCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runEditor(cmd *cobra.Command, opts rootOptions, path string) error {
	if opts.debugLog != "" {
		f, err := tea.LogToFile(opts.debugLog, "text-editor")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}
	text, err := readText(path)
	if err != nil {
		return err
	}
	log.Printf("loaded %q (%d bytes)", path, len(text))

	p := tea.NewProgram(newApp(path, text, settings),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func loadSettings(opts rootOptions) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "text-editor", "config.toml")
		}
	}
	settings, err := config.Load(path)
	if err != nil {
		return settings, err
	}
	if opts.width > 0 {
		settings.WrapWidth = opts.width
	}
	if settings.Measure == config.MeasureFont {
		log.Printf("measure %q has no meaning in a terminal; using %q", settings.Measure, config.MeasureCells)
		settings.Measure = config.MeasureCells
	}
	return settings, nil
}

// readText returns the contents of path. A missing file is an empty text.
func readText(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

package cli

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pixelsmith/gamepainter/internal/config"
	"github.com/pixelsmith/gamepainter/pkg/kit"
)

// kitOpts holds the command-line flags for the kit command.
type kitOpts struct {
	theme string // dialog theme: default, modern, fantasy, scifi, pixel
	out   string // target directory (relative paths land under the config output dir)
	plain bool   // disable the interactive progress view
}

// newKitCmd creates the kit command for batch asset generation.
// It renders the complete fixed catalog (buttons, control buttons, icons,
// gems, bars, slots, one themed dialog, arrows) into a directory, showing a
// live progress bar unless --plain is set or stdout is not a terminal.
func newKitCmd(cfgPath *string) *cobra.Command {
	opts := kitOpts{theme: "default", out: "ui_kit"}

	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Generate the full UI asset catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			dir := opts.out
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(cfg.OutputDir, dir)
			}
			if opts.plain {
				return runKitPlain(cmd, dir, opts.theme)
			}
			return runKitTUI(cmd, dir, opts.theme)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", opts.theme, "dialog theme: default, modern, fantasy, scifi, pixel")
	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "target directory")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable the interactive progress view")

	return cmd
}

// runKitPlain generates the kit with spinner-and-list output suitable for
// pipes and CI logs.
func runKitPlain(cmd *cobra.Command, dir, theme string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	sp := newSpinnerWithContext(cmd.Context(), "generating assets")
	sp.Start()
	files, err := kit.Generate(dir, theme, nil)
	sp.Stop()
	if err != nil {
		printError("kit generation failed: %s", err)
		return err
	}

	prog.done("Generated " + dir)
	for _, f := range files {
		printFile(filepath.Join(dir, f))
	}
	printNewline()
	printSuccess("UI kit complete: %d assets", len(files))
	return nil
}

// runKitTUI generates the kit behind a bubbletea progress bar.
func runKitTUI(cmd *cobra.Command, dir, theme string) error {
	catalog, err := kit.Catalog(theme)
	if err != nil {
		return err
	}

	events := make(chan tea.Msg)
	go func() {
		files, err := kit.Generate(dir, theme, func(name string) {
			events <- kitFileMsg(name)
		})
		events <- kitDoneMsg{files: files, err: err}
	}()

	p := tea.NewProgram(NewKitProgressModel(len(catalog), events))
	final, err := p.Run()
	if err != nil {
		return err
	}

	m := final.(KitProgressModel)
	if m.Err != nil {
		printError("kit generation failed: %s", m.Err)
		return m.Err
	}
	printSuccess("UI kit complete: %d assets in %s", len(m.Files), dir)
	printNextStep("Preview a single widget", "gamepainter draw button --text OK")
	return nil
}

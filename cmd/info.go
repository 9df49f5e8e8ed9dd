package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/videoinfo/types"
	"github.com/lepinkainen/videoinfo/ui"
	"github.com/lepinkainen/videoinfo/utils"
	"github.com/lepinkainen/videoinfo/video"
)

type InfoCmd struct {
	TUI  bool `help:"Enter fields in an interactive form instead of plain prompts"`
	JSON bool `name:"json" help:"Print the collected metadata as JSON instead of the text report"`
}

func (cmd *InfoCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	var meta video.Metadata
	var err error
	if cmd.TUI {
		meta, err = cmd.collectWithForm(version)
	} else {
		meta, err = video.Collect(os.Stdin, os.Stdout)
	}
	if err != nil {
		return err
	}

	file, err := video.NewFile(meta)
	if err != nil {
		return err
	}

	if cmd.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(file.Summary()); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return nil
	}

	file.DisplayInfo()
	return nil
}

// collectWithForm gathers the fields through the full-screen entry form
func (cmd *InfoCmd) collectWithForm(version string) (video.Metadata, error) {
	if !utils.IsTerminal(os.Stdout) {
		return video.Metadata{}, errors.New("the interactive form needs a terminal, rerun without --tui")
	}

	model := ui.NewFormModel(version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return video.Metadata{}, fmt.Errorf("failed to run entry form: %w", err)
	}

	form, ok := final.(ui.FormModel)
	if !ok || !form.Done() {
		return video.Metadata{}, errors.New("entry cancelled")
	}
	return form.Metadata(), nil
}

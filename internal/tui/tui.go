// Package tui implements the interactive clinic configuration generator.
// It collects the clinic identity, contact details, opening hours and
// social links, and renders them as a JSON override accepted by the
// server's SITE_CLINIC_CONFIG and SITE_CLINIC_CONFIG_FILE settings.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	buildInfo models.AppBuildInfo
	prefill   *Answers
	copyText  func(string) error
	logger    *logger.Logger
}

// New returns a TUI that copies to the system clipboard. prefill, when
// non-nil, seeds the form.
func New(buildInfo models.AppBuildInfo, prefill *Answers, log *logger.Logger) *TUI {
	return &TUI{
		buildInfo: buildInfo,
		prefill:   prefill,
		copyText:  clipboard.WriteAll,
		logger:    log,
	}
}

// Run shows the form until the user accepts a generated override or
// quits. Quitting returns ErrUserQuit.
func (t *TUI) Run(ctx context.Context, opts ...tea.ProgramOption) (Output, error) {
	pages := map[string]tea.Model{
		pageForm:   NewFormModel(t.prefill),
		pageResult: NewResultModel(t.copyWithLog),
	}
	root := NewRootModel(pages, pageForm, t.buildInfo)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return Output{}, ErrUserQuit
		}
		return Output{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return Output{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.finished {
		t.logger.Info().Msg("configuration generator closed without output")
		return Output{}, ErrUserQuit
	}

	t.logger.Info().Int("bytes", len(result.output.Minified)).Msg("clinic override generated")
	return result.output, nil
}

func (t *TUI) copyWithLog(text string) error {
	if t.copyText == nil {
		return nil
	}
	if err := t.copyText(text); err != nil {
		t.logger.Warn().Err(err).Msg("clipboard is not available")
		return err
	}
	t.logger.Debug().Msg("minified override copied to clipboard")
	return nil
}

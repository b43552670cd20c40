// Package prompt renders the search form as interactive terminal prompts,
// one per search-field descriptor.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/aanand-mishra/customer-search/internal/render"
	"github.com/aanand-mishra/customer-search/internal/types"
)

// ErrAborted is returned when the user interrupts the prompts.
var ErrAborted = errors.New("prompt aborted")

// InputConfig describes a free-text prompt.
type InputConfig struct {
	Message string
	Help    string
}

// SelectConfig describes a single-choice prompt over Options.
type SelectConfig struct {
	Message string
	Options []string
	Help    string
}

// Driver abstracts the terminal so form logic can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// Survey returns the Driver backed by the survey library.
func Survey() Driver {
	return surveyDriver{}
}

// Ask prompts for each descriptor in display order and returns the
// collected values keyed by name, one entry per descriptor.
func Ask(ctx context.Context, d Driver, descriptors []types.FieldDescriptor) (map[string]string, error) {
	form := render.NewForm(descriptors, nil, false)
	values := make(map[string]string, len(form.Controls))

	for _, ctrl := range form.Controls {
		if ctrl.IsSelect {
			labels := make([]string, len(ctrl.Options))
			for i, o := range ctrl.Options {
				labels[i] = o.Label
			}
			idx, err := d.Select(ctx, SelectConfig{Message: ctrl.Label, Options: labels})
			if err != nil {
				return nil, err
			}
			values[ctrl.Name] = ""
			if idx >= 0 && idx < len(ctrl.Options) {
				values[ctrl.Name] = ctrl.Options[idx].Value
			}
			continue
		}

		v, err := d.Input(ctx, InputConfig{Message: ctrl.Label, Help: ctrl.Placeholder})
		if err != nil {
			return nil, err
		}
		values[ctrl.Name] = v
	}

	return values, nil
}

type surveyDriver struct{}

// Input asks one survey.Input question.
func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	p := &survey.Input{Message: cfg.Message, Help: cfg.Help}
	if err := survey.AskOne(p, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Select asks one survey.Select question and returns the chosen index.
func (surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out int
	p := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if err := survey.AskOne(p, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

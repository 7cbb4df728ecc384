package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	gqerrors "gq.dev/gq/internal/errors"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GQ_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GQ_NO_INTERACTIVE is set)")

// InteractiveAllowed reports whether prompts may be shown: GQ_NO_INTERACTIVE
// is unset and the terminal is attached
func InteractiveAllowed() bool {
	return os.Getenv("GQ_NO_INTERACTIVE") == "" && IsTTY()
}

func checkInteractiveAllowed() error {
	if os.Getenv("GQ_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// Prompter asks the user questions. Cancelling any prompt yields
// errors.ErrAmbiguousSelection.
type Prompter interface {
	// Select returns the index of the chosen option
	Select(message string, options []string, defaultIndex int) (int, error)
	// MultiSelect returns the indices of the chosen options in option order
	MultiSelect(message string, options []string) ([]int, error)
	Confirm(message string, defaultValue bool) (bool, error)
	Input(message, defaultValue string) (string, error)
}

// SurveyPrompter is the terminal Prompter
type SurveyPrompter struct {
	opts []survey.AskOpt
}

var _ Prompter = (*SurveyPrompter)(nil)

// NewSurveyPrompter creates a prompter on the process's stdio
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

func (p *SurveyPrompter) ask(prompt survey.Prompt, response any, opts ...survey.AskOpt) error {
	if err := checkInteractiveAllowed(); err != nil {
		return err
	}
	return translateSurveyError(survey.AskOne(prompt, response, append(opts, p.opts...)...))
}

// translateSurveyError maps an interrupted prompt onto a cancelled selection
func translateSurveyError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return gqerrors.ErrAmbiguousSelection
	}
	return err
}

// Select shows a single-choice list
func (p *SurveyPrompter) Select(message string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("nothing to select")
	}
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		prompt.Default = options[defaultIndex]
	}

	var index int
	if err := p.ask(prompt, &index); err != nil {
		return -1, err
	}
	return index, nil
}

// MultiSelect shows a checklist. Options must be unique.
func (p *SurveyPrompter) MultiSelect(message string, options []string) ([]int, error) {
	prompt := &survey.MultiSelect{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}

	var chosen []string
	if err := p.ask(prompt, &chosen); err != nil {
		return nil, err
	}
	return indicesOf(options, chosen), nil
}

// Confirm asks a yes/no question
func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	answer := defaultValue
	if err := p.ask(&survey.Confirm{Message: message, Default: defaultValue}, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// Input asks for a non-empty line of text
func (p *SurveyPrompter) Input(message, defaultValue string) (string, error) {
	var answer string
	if err := p.ask(&survey.Input{Message: message, Default: defaultValue}, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return answer, nil
}

// indicesOf returns the positions of chosen within options, in option order
func indicesOf(options, chosen []string) []int {
	picked := make(map[string]bool, len(chosen))
	for _, c := range chosen {
		picked[c] = true
	}
	var out []int
	for i, o := range options {
		if picked[o] {
			out = append(out, i)
		}
	}
	return out
}

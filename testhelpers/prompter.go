package testhelpers

import (
	"fmt"
	"sync"
)

// ScriptedPrompter answers prompts from a queue. Each answer is an int
// (Select), []int (MultiSelect), bool (Confirm), string (Input) or an
// error returned by whichever prompt comes next.
type ScriptedPrompter struct {
	mu      sync.Mutex
	answers []any
	asked   []string
}

// NewScriptedPrompter creates a prompter that replies with answers in order
func NewScriptedPrompter(answers ...any) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Asked returns the messages of every prompt shown so far
func (p *ScriptedPrompter) Asked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.asked...)
}

// Remaining reports how many scripted answers were not consumed
func (p *ScriptedPrompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}

func (p *ScriptedPrompter) next(message string) (any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked = append(p.asked, message)
	if len(p.answers) == 0 {
		return nil, fmt.Errorf("unexpected prompt: %s", message)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if err, ok := answer.(error); ok {
		return nil, err
	}
	return answer, nil
}

func (p *ScriptedPrompter) Select(message string, _ []string, _ int) (int, error) {
	answer, err := p.next(message)
	if err != nil {
		return -1, err
	}
	index, ok := answer.(int)
	if !ok {
		return -1, fmt.Errorf("prompt %q: scripted %T, want int", message, answer)
	}
	return index, nil
}

func (p *ScriptedPrompter) MultiSelect(message string, _ []string) ([]int, error) {
	answer, err := p.next(message)
	if err != nil {
		return nil, err
	}
	indices, ok := answer.([]int)
	if !ok {
		return nil, fmt.Errorf("prompt %q: scripted %T, want []int", message, answer)
	}
	return indices, nil
}

func (p *ScriptedPrompter) Confirm(message string, _ bool) (bool, error) {
	answer, err := p.next(message)
	if err != nil {
		return false, err
	}
	yes, ok := answer.(bool)
	if !ok {
		return false, fmt.Errorf("prompt %q: scripted %T, want bool", message, answer)
	}
	return yes, nil
}

func (p *ScriptedPrompter) Input(message, _ string) (string, error) {
	answer, err := p.next(message)
	if err != nil {
		return "", err
	}
	text, ok := answer.(string)
	if !ok {
		return "", fmt.Errorf("prompt %q: scripted %T, want string", message, answer)
	}
	return text, nil
}

package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// PromptState is the outcome of feeding a key to a Prompt.
type PromptState int

const (
	// PromptEditing means the prompt still wants input.
	PromptEditing PromptState = iota
	// PromptDone means Enter was pressed.
	PromptDone
	// PromptCancelled means Escape was pressed; the input is cleared.
	PromptCancelled
)

// maxInput bounds the prompt buffer to the longest path the map file tools accept.
const maxInput = 255

// Prompt is a one-line path input on the message row.
type Prompt struct {
	label string
	input []rune
}

// NewPrompt creates an empty prompt with the given label, e.g. "Open: ".
func NewPrompt(label string) *Prompt {
	return &Prompt{label: label}
}

// Input returns the text entered so far.
func (p *Prompt) Input() string {
	return string(p.input)
}

// IsPathChar reports whether r may appear in a path typed at the prompt.
func IsPathChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return strings.ContainsRune("._-/~", r)
	}
}

// HandleKey applies a key event to the prompt.
func (p *Prompt) HandleKey(ev *tcell.EventKey) PromptState {
	switch ev.Key() {
	case tcell.KeyEnter:
		return PromptDone
	case tcell.KeyEscape:
		p.input = p.input[:0]
		return PromptCancelled
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case tcell.KeyRune:
		if IsPathChar(ev.Rune()) && len(p.input) < maxInput {
			p.input = append(p.input, ev.Rune())
		}
	}
	return PromptEditing
}

// Draw shows the label and input on the message row with the cursor after it.
func (p *Prompt) Draw(r *Renderer) {
	r.ClearLine(MessageRow)
	x := r.Text(0, MessageRow, p.label, r.styles.Text)
	x = r.Text(x, MessageRow, string(p.input), r.styles.Text)
	r.screen.ShowCursor(x, MessageRow)
}

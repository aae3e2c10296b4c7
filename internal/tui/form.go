package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pboard/internal/cli"
	"pboard/internal/forms"
)

// form is the new-project modal: three inputs collected and validated
// before the store is ever touched. On validation failure the error is
// shown in place and the store is not called.
type form struct {
	inputs []textinput.Model
	focus  int
	err    string

	width int
}

var _ component = (*form)(nil)

const (
	fieldTitle = iota
	fieldDescription
	fieldEffort
)

var fieldLabels = [...]string{"Title", "Description", "Effort (mandays)"}

func newForm() *form {
	f := &form{inputs: make([]textinput.Model, 3)}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].Placeholder = "Dig test hole"
	f.inputs[fieldDescription].Placeholder = "What needs doing, in a sentence or two"
	f.inputs[fieldEffort].Placeholder = "5"
	f.inputs[fieldEffort].CharLimit = 4

	f.inputs[fieldTitle].Focus()
	return f
}

// update handles one key event. It returns the validated input and true
// once the form is successfully submitted.
func (f *form) update(msg tea.KeyMsg) (forms.Input, bool, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return forms.Input{}, false, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return forms.Input{}, false, nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return forms.Input{}, false, nil
		}
		return f.submit()
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return forms.Input{}, false, cmd
}

// submit gathers and validates the triple. Only a valid triple is
// handed back; anything else keeps the form open with an error banner.
func (f *form) submit() (forms.Input, bool, tea.Cmd) {
	effortStr := strings.TrimSpace(f.inputs[fieldEffort].Value())
	effort, err := strconv.Atoi(effortStr)
	if err != nil {
		f.err = cli.FormatError(&cli.ValidationError{
			Field:   "effort",
			Message: "must be a number",
		})
		return forms.Input{}, false, nil
	}

	in := forms.Input{
		Title:       f.inputs[fieldTitle].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Effort:      effort,
	}
	if err := forms.Validate(in); err != nil {
		f.err = cli.FormatError(err)
		return forms.Input{}, false, nil
	}

	f.err = ""
	return in, true, nil
}

func (f *form) setFocus(i int) {
	if i < 0 {
		i = len(f.inputs) - 1
	}
	if i >= len(f.inputs) {
		i = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *form) resize(width, _ int) {
	f.width = width
	for i := range f.inputs {
		f.inputs[i].Width = max(width/2-8, 20)
	}
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(formLabelStyle.Render("New Project"))
	b.WriteString("\n\n")

	for i, ti := range f.inputs {
		b.WriteString(fieldLabels[i])
		b.WriteString("\n")
		b.WriteString(ti.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.err != "" {
		b.WriteString(errorStyle.Render(f.err))
	} else {
		b.WriteString(emptyColumnStyle.Render("enter to submit, esc to cancel"))
	}

	return formStyle.Render(b.String())
}

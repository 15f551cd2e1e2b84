package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timestables/internal/ui/theme"
)

// Picker is a segmented single-choice selector over a fixed set of integers.
// Only the listed options can ever be selected.
type Picker struct {
	Options  []int
	Selected int
	Focused  bool
}

// NewPicker creates a picker with the option equal to value selected, or the
// first option if value is not listed.
func NewPicker(options []int, value int) Picker {
	p := Picker{Options: options}
	for i, o := range options {
		if o == value {
			p.Selected = i
			break
		}
	}
	return p
}

// Value returns the selected option.
func (p Picker) Value() int {
	if len(p.Options) == 0 {
		return 0
	}
	return p.Options[p.Selected]
}

// Update handles left/right navigation when focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}
	return p, nil
}

// View renders the options side by side with the selection highlighted.
func (p Picker) View() string {
	segments := make([]string, 0, len(p.Options))
	for i, o := range p.Options {
		style := theme.SegmentInactive
		if i == p.Selected {
			style = theme.SegmentActive
			if !p.Focused {
				style = style.Background(theme.Border)
			}
		}
		segments = append(segments, style.Render(strconv.Itoa(o)))
	}
	return strings.Join(segments, " ")
}

package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestStepper_ClampsAtBounds(t *testing.T) {
	s := NewStepper("", 11, 2, 12)
	s.Focused = true

	for i := 0; i < 5; i++ {
		s, _ = s.Update(specialKey(tea.KeyRight))
	}
	if s.Value != 12 {
		t.Errorf("Value = %d after stepping up, want 12", s.Value)
	}

	for i := 0; i < 20; i++ {
		s, _ = s.Update(specialKey(tea.KeyLeft))
	}
	if s.Value != 2 {
		t.Errorf("Value = %d after stepping down, want 2", s.Value)
	}
}

func TestStepper_InitialValueClamped(t *testing.T) {
	if s := NewStepper("", 40, 2, 12); s.Value != 12 {
		t.Errorf("Value = %d, want 12", s.Value)
	}
	if s := NewStepper("", -1, 2, 12); s.Value != 2 {
		t.Errorf("Value = %d, want 2", s.Value)
	}
}

func TestStepper_IgnoresKeysWhenUnfocused(t *testing.T) {
	s := NewStepper("", 5, 2, 12)
	s, _ = s.Update(specialKey(tea.KeyRight))
	if s.Value != 5 {
		t.Errorf("Value = %d, want 5", s.Value)
	}
}

func TestPicker_OnlyListedOptions(t *testing.T) {
	p := NewPicker([]int{1, 5, 10, 20}, 10)
	p.Focused = true
	if p.Value() != 10 {
		t.Fatalf("Value = %d, want 10", p.Value())
	}

	for i := 0; i < 10; i++ {
		p, _ = p.Update(specialKey(tea.KeyRight))
	}
	if p.Value() != 20 {
		t.Errorf("Value = %d, want 20", p.Value())
	}

	for i := 0; i < 10; i++ {
		p, _ = p.Update(specialKey(tea.KeyLeft))
	}
	if p.Value() != 1 {
		t.Errorf("Value = %d, want 1", p.Value())
	}
}

func TestPicker_UnknownValueSelectsFirst(t *testing.T) {
	p := NewPicker([]int{1, 5, 10, 20}, 7)
	if p.Value() != 1 {
		t.Errorf("Value = %d, want 1", p.Value())
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("?", true, 4)
	for _, r := range "4a2-é٣" {
		ti, _ = ti.Update(keyPress(r))
	}
	if ti.Value() != "42" {
		t.Errorf("Value = %q, want %q", ti.Value(), "42")
	}
	n, err := ti.NumericValue()
	if err != nil || n != 42 {
		t.Errorf("NumericValue = %d, %v; want 42, nil", n, err)
	}
}

func TestTextInput_PasteDigitsOnly(t *testing.T) {
	ti := NewTextInput("?", true, 4)
	ti, _ = ti.Update(tea.PasteMsg{Content: "ab"})
	if ti.Value() != "" {
		t.Errorf("Value = %q after pasting letters, want empty", ti.Value())
	}

	ti, _ = ti.Update(tea.PasteMsg{Content: "56"})
	if ti.Value() != "56" {
		t.Errorf("Value = %q, want %q", ti.Value(), "56")
	}

	ti.SetFeedback(FeedbackCorrect)
	ti, _ = ti.Update(tea.PasteMsg{Content: "7"})
	if ti.Value() != "56" {
		t.Errorf("Value = %q after paste while locked, want %q", ti.Value(), "56")
	}
}

func TestTextInput_EmptyIsZero(t *testing.T) {
	ti := NewTextInput("?", true, 4)
	n, err := ti.NumericValue()
	if err != nil || n != 0 {
		t.Errorf("NumericValue = %d, %v; want 0, nil", n, err)
	}
}

func TestTextInput_LockedWhileShowingFeedback(t *testing.T) {
	ti := NewTextInput("?", true, 4)
	ti, _ = ti.Update(keyPress('7'))
	ti.SetFeedback(FeedbackWrong)
	ti, _ = ti.Update(keyPress('8'))

	if ti.Value() != "7" {
		t.Errorf("Value = %q, want %q", ti.Value(), "7")
	}
	if ti.Feedback() != FeedbackWrong {
		t.Errorf("Feedback = %v, want FeedbackWrong", ti.Feedback())
	}
}

func TestButton_Press(t *testing.T) {
	type pressedMsg struct{}
	b := NewButton("Start Game", true, func() tea.Cmd {
		return func() tea.Msg { return pressedMsg{} }
	})

	_, cmd := b.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	if _, ok := cmd().(pressedMsg); !ok {
		t.Error("expected pressedMsg")
	}

	b.Active = false
	if _, cmd := b.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("inactive button should not fire")
	}
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar(3, 5, 30)
	if got := p.Percent(); got < 0.59 || got > 0.61 {
		t.Errorf("Percent = %v, want 0.6", got)
	}
	if !strings.Contains(p.View(), "3/5") {
		t.Error("expected counter in view")
	}
	if NewProgressBar(9, 5, 30).Percent() != 1 {
		t.Error("Percent should cap at 1")
	}
	if NewProgressBar(1, 0, 30).Percent() != 0 {
		t.Error("Percent with zero total should be 0")
	}
}

func TestSection_ContainsTitle(t *testing.T) {
	out := Section("Select Question Amount", "body", ContentWidth(80))
	if !strings.Contains(out, "Select Question Amount") || !strings.Contains(out, "body") {
		t.Error("section missing title or body")
	}
}

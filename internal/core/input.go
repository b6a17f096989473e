package core

import "strings"

// Buttons is the joypad state for one frame, one bit per button.
type Buttons uint8

// Joypad buttons.
const (
	ButtonRight Buttons = 1 << iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonUp, "Up"},
	{ButtonDown, "Down"},
	{ButtonLeft, "Left"},
	{ButtonRight, "Right"},
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonSelect, "Select"},
	{ButtonStart, "Start"},
}

// Has returns true if every button in b is pressed.
func (m Buttons) Has(b Buttons) bool {
	return b != 0 && m&b == b
}

// Press marks b as pressed.
func (m *Buttons) Press(b Buttons) {
	*m |= b
}

// Clear releases all buttons for the next frame.
func (m *Buttons) Clear() {
	*m = 0
}

// String returns the pressed buttons joined with '+', or "None".
func (m Buttons) String() string {
	if m == 0 {
		return "None"
	}
	var names []string
	for _, bn := range buttonNames {
		if m.Has(bn.b) {
			names = append(names, bn.name)
		}
	}
	return strings.Join(names, "+")
}

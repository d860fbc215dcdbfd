package studio

import (
	"fmt"
	"strings"
)

// Mode selects which of the studio's four surfaces is active.
type Mode int

const (
	Shape    Mode = iota // superformula curve editing
	Tree                 // fractal tree growth
	Generate             // AI prompted vector art
	Edit                 // AI image editing
)

var modeNames = [...]string{"shape", "tree", "generate", "edit"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode resolves a mode name, as spelled on the command line.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (have %s)", s, strings.Join(modeNames[:], ", "))
}

// Modes lists every mode in display order.
func Modes() []Mode {
	return []Mode{Shape, Tree, Generate, Edit}
}

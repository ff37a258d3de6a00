package keys

import (
	"strings"
)

var names = map[string]Code{
	"BACKSPACE": Backspace,
	"TAB":       Tab,
	"ENTER":     Enter,
	"ESC":       Esc,
	"SPACE":     Space,
	"DEL":       Del,
	"UP":        Up,
	"DOWN":      Down,
	"LEFT":      Left,
	"RIGHT":     Right,
	"CTRL_L":    CtrlL,
	"CTRL_R":    CtrlR,
	"ALT_L":     AltL,
	"ALT_R":     AltR,
	"SHIFT_L":   ShiftL,
	"SHIFT_R":   ShiftR,
	"CAPS":      Caps,
	"NUM_LOCK":  NumLock,
	"HOME":      Home,
	"END":       End,
	"F1":        F1,
	"F2":        F2,
	"F3":        F3,
	"F4":        F4,
	"F5":        F5,
	"F6":        F6,
	"F7":        F7,
	"F8":        F8,
	"F9":        F9,
	"F10":       F10,
	"F11":       F11,
	"F12":       F12,
	"INSERT":    Insert,
	"PAGEUP":    PageUp,
	"PAGEDOWN":  PageDown,
	"COMMAND":   Command,
}

// Value parses a key name as written in the rc file: either one of the
// special names (UP, CTRL_R, F1, ...) or a single printable character.
// Unknown names return None.
func Value(name string) Code {
	name = strings.TrimSpace(name)
	if len(name) == 1 {
		return Code(name[0])
	}
	if c, ok := names[strings.ToUpper(name)]; ok {
		return c
	}
	return None
}

// Name returns the rc-file spelling of c, or "" if it has none.
func Name(c Code) string {
	if c > Space && c < Del {
		return string(rune(c))
	}
	for n, v := range names {
		if v == c {
			return n
		}
	}
	return ""
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if n := Name(c); n != "" {
		return n
	}
	return "NONE"
}

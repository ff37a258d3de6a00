package event

import "github.com/HunterZ/abuse-wii/internal/keys"

// specialKeys maps native keycodes with a dedicated engine code. The
// keypad digits double as arrows and insert.
var specialKeys = map[keys.Sym]keys.Code{
	keys.SymDown:      keys.Down,
	keys.SymUp:        keys.Up,
	keys.SymLeft:      keys.Left,
	keys.SymRight:     keys.Right,
	keys.SymLCtrl:     keys.CtrlL,
	keys.SymRCtrl:     keys.CtrlR,
	keys.SymLAlt:      keys.AltL,
	keys.SymRAlt:      keys.AltR,
	keys.SymLShift:    keys.ShiftL,
	keys.SymRShift:    keys.ShiftR,
	keys.SymNumLock:   keys.NumLock,
	keys.SymHome:      keys.Home,
	keys.SymEnd:       keys.End,
	keys.SymBackspace: keys.Backspace,
	keys.SymTab:       keys.Tab,
	keys.SymReturn:    keys.Enter,
	keys.SymSpace:     keys.Space,
	keys.SymCapsLock:  keys.Caps,
	keys.SymEscape:    keys.Esc,
	keys.SymF1:        keys.F1,
	keys.SymF2:        keys.F2,
	keys.SymF3:        keys.F3,
	keys.SymF4:        keys.F4,
	keys.SymF5:        keys.F5,
	keys.SymF6:        keys.F6,
	keys.SymF7:        keys.F7,
	keys.SymF8:        keys.F8,
	keys.SymF9:        keys.F9,
	keys.SymF10:       keys.F10,
	keys.SymInsert:    keys.Insert,
	keys.SymKP0:       keys.Insert,
	keys.SymPageUp:    keys.PageUp,
	keys.SymPageDown:  keys.PageDown,
	keys.SymKP8:       keys.Up,
	keys.SymKP2:       keys.Down,
	keys.SymKP4:       keys.Left,
	keys.SymKP6:       keys.Right,
}

// shiftedKeys holds the shifted form of the digits 6-0 and punctuation
// on a US layout. Letters and 1-5 are computed.
var shiftedKeys = map[keys.Sym]keys.Code{
	keys.Sym6:         keys.Code(keys.SymCaret),
	keys.Sym7:         '&',
	keys.Sym8:         keys.Code(keys.SymAsterisk),
	keys.Sym9:         '(',
	keys.Sym0:         keys.Code(keys.SymRightParen),
	keys.SymMinus:     keys.Code(keys.SymUnderscore),
	keys.SymEquals:    keys.Code(keys.SymPlus),
	keys.SymComma:     keys.Code(keys.SymLess),
	keys.SymPeriod:    keys.Code(keys.SymGreater),
	keys.SymSlash:     keys.Code(keys.SymQuestion),
	keys.SymSemicolon: keys.Code(keys.SymColon),
	keys.SymQuote:     keys.Code(keys.SymQuoteDbl),
}

// TranslateKey maps a native keycode and modifier state to an engine
// key code. Keys without a table entry pass through unchanged when they
// are 8-bit. Wider keycodes, such as non-US layout letters, would
// collide with the engine's special keys and map to keys.None.
func TranslateKey(sym keys.Sym, mod keys.Mod) keys.Code {
	if c, ok := specialKeys[sym]; ok {
		return c
	}
	if sym < 0 || sym >= keys.FirstSpecial {
		return keys.None
	}

	code := keys.Code(sym)
	if mod&keys.ModShift == 0 {
		return code
	}

	switch {
	case sym >= keys.SymA && sym <= keys.SymZ:
		return code - 32
	case sym >= keys.Sym1 && sym <= keys.Sym5:
		return code - 16
	}
	if c, ok := shiftedKeys[sym]; ok {
		return c
	}
	return code
}

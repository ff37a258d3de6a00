// Package keys defines the engine key codes and the SDL keycodes they are
// translated from.
package keys

// Code is an engine key code. Printable keys use their ASCII value,
// special keys live above 255.
type Code int

// Engine key codes.
const (
	None      Code = 0
	Backspace Code = 8
	Tab       Code = 9
	Enter     Code = 13
	Esc       Code = 27
	Space     Code = 32
	Del       Code = 127
)

// Special keys.
const (
	Up Code = iota + 256
	Down
	Left
	Right
	CtrlL
	CtrlR
	AltL
	AltR
	ShiftL
	ShiftR
	Caps
	NumLock
	Home
	End
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	Insert
	PageUp
	PageDown
	Command
)

// Sym is a native keycode. Values match SDL2's SDL_Keycode so an
// sdl.Keycode converts directly.
type Sym int32

const scancodeMask = 1 << 30

// FirstSpecial is the first keycode that overlaps the special key codes.
const FirstSpecial Sym = Sym(Up)

// Native keycodes used by the translation tables.
const (
	SymBackspace Sym = '\b'
	SymTab       Sym = '\t'
	SymReturn    Sym = '\r'
	SymEscape    Sym = '\033'
	SymSpace     Sym = ' '
	SymQuote     Sym = '\''
	SymComma     Sym = ','
	SymMinus     Sym = '-'
	SymPeriod    Sym = '.'
	SymSlash     Sym = '/'
	Sym0         Sym = '0'
	Sym1         Sym = '1'
	Sym5         Sym = '5'
	Sym6         Sym = '6'
	Sym7         Sym = '7'
	Sym8         Sym = '8'
	Sym9         Sym = '9'
	SymSemicolon Sym = ';'
	SymEquals    Sym = '='
	SymA         Sym = 'a'
	SymP         Sym = 'p'
	SymZ         Sym = 'z'
	SymDelete    Sym = '\177'

	SymQuoteDbl   Sym = '"'
	SymRightParen Sym = ')'
	SymAsterisk   Sym = '*'
	SymPlus       Sym = '+'
	SymColon      Sym = ':'
	SymLess       Sym = '<'
	SymGreater    Sym = '>'
	SymQuestion   Sym = '?'
	SymCaret      Sym = '^'
	SymUnderscore Sym = '_'

	SymCapsLock    Sym = 0x39 | scancodeMask
	SymF1          Sym = 0x3A | scancodeMask
	SymF2          Sym = 0x3B | scancodeMask
	SymF3          Sym = 0x3C | scancodeMask
	SymF4          Sym = 0x3D | scancodeMask
	SymF5          Sym = 0x3E | scancodeMask
	SymF6          Sym = 0x3F | scancodeMask
	SymF7          Sym = 0x40 | scancodeMask
	SymF8          Sym = 0x41 | scancodeMask
	SymF9          Sym = 0x42 | scancodeMask
	SymF10         Sym = 0x43 | scancodeMask
	SymF11         Sym = 0x44 | scancodeMask
	SymF12         Sym = 0x45 | scancodeMask
	SymPrintScreen Sym = 0x46 | scancodeMask
	SymInsert      Sym = 0x49 | scancodeMask
	SymHome        Sym = 0x4A | scancodeMask
	SymPageUp      Sym = 0x4B | scancodeMask
	SymEnd         Sym = 0x4D | scancodeMask
	SymPageDown    Sym = 0x4E | scancodeMask
	SymRight       Sym = 0x4F | scancodeMask
	SymLeft        Sym = 0x50 | scancodeMask
	SymDown        Sym = 0x51 | scancodeMask
	SymUp          Sym = 0x52 | scancodeMask
	SymNumLock     Sym = 0x53 | scancodeMask
	SymKP2         Sym = 0x5A | scancodeMask
	SymKP4         Sym = 0x5C | scancodeMask
	SymKP6         Sym = 0x5E | scancodeMask
	SymKP8         Sym = 0x60 | scancodeMask
	SymKP0         Sym = 0x62 | scancodeMask
	SymLCtrl       Sym = 0xE0 | scancodeMask
	SymLShift      Sym = 0xE1 | scancodeMask
	SymLAlt        Sym = 0xE2 | scancodeMask
	SymRCtrl       Sym = 0xE4 | scancodeMask
	SymRShift      Sym = 0xE5 | scancodeMask
	SymRAlt        Sym = 0xE6 | scancodeMask
)

// Mod is a native modifier mask, matching SDL2's SDL_Keymod.
type Mod uint16

const (
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0040
	ModRCtrl  Mod = 0x0080
	ModLAlt   Mod = 0x0100
	ModRAlt   Mod = 0x0200

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
)

package keybinding

import (
	"fmt"
	"strings"
)

// X11 keysym values for the named keys accepted in accelerators
const (
	KeysymSpace     uint32 = 0x0020
	KeysymBackSpace uint32 = 0xff08
	KeysymTab       uint32 = 0xff09
	KeysymReturn    uint32 = 0xff0d
	KeysymEscape    uint32 = 0xff1b
	KeysymHome      uint32 = 0xff50
	KeysymLeft      uint32 = 0xff51
	KeysymUp        uint32 = 0xff52
	KeysymRight     uint32 = 0xff53
	KeysymDown      uint32 = 0xff54
	KeysymPageUp    uint32 = 0xff55
	KeysymPageDown  uint32 = 0xff56
	KeysymEnd       uint32 = 0xff57
	KeysymInsert    uint32 = 0xff63
	KeysymMenu      uint32 = 0xff67
	KeysymF1        uint32 = 0xffbe
	KeysymDelete    uint32 = 0xffff

	maxFunctionKey = 35
)

var namedKeys = map[string]uint32{
	"space":     KeysymSpace,
	"BackSpace": KeysymBackSpace,
	"Tab":       KeysymTab,
	"Return":    KeysymReturn,
	"Escape":    KeysymEscape,
	"Home":      KeysymHome,
	"Left":      KeysymLeft,
	"Up":        KeysymUp,
	"Right":     KeysymRight,
	"Down":      KeysymDown,
	"Page_Up":   KeysymPageUp,
	"Page_Down": KeysymPageDown,
	"End":       KeysymEnd,
	"Insert":    KeysymInsert,
	"Menu":      KeysymMenu,
	"Delete":    KeysymDelete,
}

// punctuationNames are the X keysym names of printable ASCII punctuation
var punctuationNames = map[byte]string{
	'!':  "exclam",
	'"':  "quotedbl",
	'#':  "numbersign",
	'$':  "dollar",
	'%':  "percent",
	'&':  "ampersand",
	'\'': "apostrophe",
	'(':  "parenleft",
	')':  "parenright",
	'*':  "asterisk",
	'+':  "plus",
	',':  "comma",
	'-':  "minus",
	'.':  "period",
	'/':  "slash",
	':':  "colon",
	';':  "semicolon",
	'<':  "less",
	'=':  "equal",
	'>':  "greater",
	'?':  "question",
	'@':  "at",
	'[':  "bracketleft",
	'\\': "backslash",
	']':  "bracketright",
	'^':  "asciicircum",
	'_':  "underscore",
	'`':  "grave",
	'{':  "braceleft",
	'|':  "bar",
	'}':  "braceright",
	'~':  "asciitilde",
}

// lowerNames maps lowercased names to their canonical spelling
var lowerNames map[string]string

func init() {
	for c, name := range punctuationNames {
		namedKeys[name] = uint32(c)
	}
	lowerNames = make(map[string]string, len(namedKeys)+maxFunctionKey+2)
	for name := range namedKeys {
		lowerNames[strings.ToLower(name)] = name
	}
	for n := 1; n <= maxFunctionKey; n++ {
		name := fmt.Sprintf("F%d", n)
		namedKeys[name] = KeysymF1 + uint32(n-1)
		lowerNames[strings.ToLower(name)] = name
	}
	lowerNames["enter"] = "Return"
	lowerNames["esc"] = "Escape"
}

// lookupKey resolves a key name or single character to its canonical name and
// keysym. Canonical names are X keysym names.
func lookupKey(s string) (string, uint32, bool) {
	if len(s) == 1 {
		c := s[0]
		if c < 0x20 || c > 0x7e {
			return "", 0, false
		}
		if c == ' ' {
			return "space", KeysymSpace, true
		}
		if name, ok := punctuationNames[c]; ok {
			return name, uint32(c), true
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		return string(c), uint32(c), true
	}

	name, ok := lowerNames[strings.ToLower(s)]
	if !ok {
		return "", 0, false
	}
	return name, namedKeys[name], true
}

// FunctionKey returns the F-key number for a keysym, or 0.
func FunctionKey(sym uint32) int {
	if sym >= KeysymF1 && sym < KeysymF1+maxFunctionKey {
		return int(sym-KeysymF1) + 1
	}
	return 0
}

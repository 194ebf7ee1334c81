package keybinding

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmpty           = errors.New("keybinding: empty accelerator")
	ErrMalformed       = errors.New("keybinding: malformed accelerator")
	ErrMissingKey      = errors.New("keybinding: accelerator has no key")
	ErrUnknownModifier = errors.New("keybinding: unknown modifier")
	ErrUnknownKey      = errors.New("keybinding: unknown key")
)

// Modifier is a bit set of accelerator modifiers
type Modifier uint8

const (
	Shift Modifier = 1 << iota
	Control
	Alt
	Super
	Hyper
	Meta
)

// modifierOrder is the order modifiers are rendered in by String
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{Shift, "Shift"},
	{Control, "Control"},
	{Alt, "Alt"},
	{Super, "Super"},
	{Hyper, "Hyper"},
	{Meta, "Meta"},
}

var modifierAliases = map[string]Modifier{
	"shift":   Shift,
	"control": Control,
	"ctrl":    Control,
	"ctl":     Control,
	"primary": Control,
	"alt":     Alt,
	"mod1":    Alt,
	"super":   Super,
	"mod4":    Super,
	"hyper":   Hyper,
	"meta":    Meta,
}

// Has reports whether all bits of m are set
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// Binding is a parsed accelerator such as <Super>a
type Binding struct {
	Mods   Modifier
	Keysym uint32
	Key    string // canonical key name
}

// String renders the binding in accelerator syntax
func (b Binding) String() string {
	var sb strings.Builder
	for _, m := range modifierOrder {
		if b.Mods.Has(m.mod) {
			sb.WriteString("<")
			sb.WriteString(m.name)
			sb.WriteString(">")
		}
	}
	sb.WriteString(b.Key)
	return sb.String()
}

// Parse parses a GTK style accelerator string, e.g. "<Control><Shift>F12".
func Parse(accel string) (Binding, error) {
	s := strings.TrimSpace(accel)
	if s == "" {
		return Binding{}, ErrEmpty
	}

	var b Binding
	for strings.HasPrefix(s, "<") {
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return Binding{}, fmt.Errorf("%w: unterminated modifier in %q", ErrMalformed, accel)
		}
		name := s[1:end]
		mod, ok := modifierAliases[strings.ToLower(name)]
		if !ok {
			return Binding{}, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
		}
		b.Mods |= mod
		s = s[end+1:]
	}

	if s == "" {
		return Binding{}, fmt.Errorf("%w: %q", ErrMissingKey, accel)
	}
	if strings.ContainsAny(s, "<> \t") && len(s) > 1 {
		return Binding{}, fmt.Errorf("%w: %q", ErrMalformed, accel)
	}

	name, sym, ok := lookupKey(s)
	if !ok {
		return Binding{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	b.Key = name
	b.Keysym = sym
	return b, nil
}

package hotkey

import (
	"golang.design/x/hotkey"

	"github.com/yzhelezko/thermwin/internal/keybinding"
)

func canConnect() bool {
	return true
}

// Super and Meta both map to the Command key.
func modifiersFor(m keybinding.Modifier) ([]hotkey.Modifier, error) {
	if m.Has(keybinding.Hyper) {
		return nil, ErrUnsupportedModifier
	}
	var mods []hotkey.Modifier
	if m.Has(keybinding.Shift) {
		mods = append(mods, hotkey.ModShift)
	}
	if m.Has(keybinding.Control) {
		mods = append(mods, hotkey.ModCtrl)
	}
	if m.Has(keybinding.Alt) {
		mods = append(mods, hotkey.ModOption)
	}
	if m.Has(keybinding.Super) || m.Has(keybinding.Meta) {
		mods = append(mods, hotkey.ModCmd)
	}
	return mods, nil
}

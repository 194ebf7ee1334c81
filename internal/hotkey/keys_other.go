//go:build !linux

package hotkey

import (
	"golang.design/x/hotkey"

	"github.com/yzhelezko/thermwin/internal/keybinding"
)

// keys maps X keysyms to the keys the hotkey library can grab on every platform
var keys = map[uint32]hotkey.Key{
	'a':                     hotkey.KeyA,
	'b':                     hotkey.KeyB,
	'c':                     hotkey.KeyC,
	'd':                     hotkey.KeyD,
	'e':                     hotkey.KeyE,
	'f':                     hotkey.KeyF,
	'g':                     hotkey.KeyG,
	'h':                     hotkey.KeyH,
	'i':                     hotkey.KeyI,
	'j':                     hotkey.KeyJ,
	'k':                     hotkey.KeyK,
	'l':                     hotkey.KeyL,
	'm':                     hotkey.KeyM,
	'n':                     hotkey.KeyN,
	'o':                     hotkey.KeyO,
	'p':                     hotkey.KeyP,
	'q':                     hotkey.KeyQ,
	'r':                     hotkey.KeyR,
	's':                     hotkey.KeyS,
	't':                     hotkey.KeyT,
	'u':                     hotkey.KeyU,
	'v':                     hotkey.KeyV,
	'w':                     hotkey.KeyW,
	'x':                     hotkey.KeyX,
	'y':                     hotkey.KeyY,
	'z':                     hotkey.KeyZ,
	'0':                     hotkey.Key0,
	'1':                     hotkey.Key1,
	'2':                     hotkey.Key2,
	'3':                     hotkey.Key3,
	'4':                     hotkey.Key4,
	'5':                     hotkey.Key5,
	'6':                     hotkey.Key6,
	'7':                     hotkey.Key7,
	'8':                     hotkey.Key8,
	'9':                     hotkey.Key9,
	keybinding.KeysymSpace:  hotkey.KeySpace,
	keybinding.KeysymReturn: hotkey.KeyReturn,
	keybinding.KeysymEscape: hotkey.KeyEscape,
	keybinding.KeysymTab:    hotkey.KeyTab,
	keybinding.KeysymDelete: hotkey.KeyDelete,
	keybinding.KeysymLeft:   hotkey.KeyLeft,
	keybinding.KeysymRight:  hotkey.KeyRight,
	keybinding.KeysymUp:     hotkey.KeyUp,
	keybinding.KeysymDown:   hotkey.KeyDown,
}

var functionKeys = []hotkey.Key{
	hotkey.KeyF1,
	hotkey.KeyF2,
	hotkey.KeyF3,
	hotkey.KeyF4,
	hotkey.KeyF5,
	hotkey.KeyF6,
	hotkey.KeyF7,
	hotkey.KeyF8,
	hotkey.KeyF9,
	hotkey.KeyF10,
	hotkey.KeyF11,
	hotkey.KeyF12,
	hotkey.KeyF13,
	hotkey.KeyF14,
	hotkey.KeyF15,
	hotkey.KeyF16,
	hotkey.KeyF17,
	hotkey.KeyF18,
	hotkey.KeyF19,
	hotkey.KeyF20,
}

func keyFor(sym uint32) (hotkey.Key, bool) {
	if n := keybinding.FunctionKey(sym); n > 0 {
		if n > len(functionKeys) {
			return 0, false
		}
		return functionKeys[n-1], true
	}
	k, ok := keys[sym]
	return k, ok
}

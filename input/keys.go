package input

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by ParseKey for names outside the key table.
var ErrUnknownKey = errors.New("unknown key")

// Key identifies a physical keyboard key by its web KeyboardEvent.code.
type Key int

const (
	KeyNone Key = iota
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyComma
	KeyPeriod
	KeySemicolon
	KeyQuote
	KeyBracketLeft
	KeyBracketRight
	KeyBackquote
	KeyBackslash
	KeyMinus
	KeyEqual
	KeyAltLeft
	KeyAltRight
	KeyCapsLock
	KeyControlLeft
	KeyControlRight
	KeyMetaLeft
	KeyMetaRight
	KeyShiftLeft
	KeyShiftRight
	KeyContextMenu
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyHome
	KeyInsert
	KeyPageDown
	KeyPageUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEscape
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyNumpadEnter
	KeyNumpadEqual
	KeyNumpadMultiply
	KeyNumpadSubtract
	KeyCount // Must be last - used for array sizing
)

var keyNames = [KeyCount]string{
	KeyNone:           "None",
	KeyDigit0:         "Digit0",
	KeyDigit1:         "Digit1",
	KeyDigit2:         "Digit2",
	KeyDigit3:         "Digit3",
	KeyDigit4:         "Digit4",
	KeyDigit5:         "Digit5",
	KeyDigit6:         "Digit6",
	KeyDigit7:         "Digit7",
	KeyDigit8:         "Digit8",
	KeyDigit9:         "Digit9",
	KeyA:              "KeyA",
	KeyB:              "KeyB",
	KeyC:              "KeyC",
	KeyD:              "KeyD",
	KeyE:              "KeyE",
	KeyF:              "KeyF",
	KeyG:              "KeyG",
	KeyH:              "KeyH",
	KeyI:              "KeyI",
	KeyJ:              "KeyJ",
	KeyK:              "KeyK",
	KeyL:              "KeyL",
	KeyM:              "KeyM",
	KeyN:              "KeyN",
	KeyO:              "KeyO",
	KeyP:              "KeyP",
	KeyQ:              "KeyQ",
	KeyR:              "KeyR",
	KeyS:              "KeyS",
	KeyT:              "KeyT",
	KeyU:              "KeyU",
	KeyV:              "KeyV",
	KeyW:              "KeyW",
	KeyX:              "KeyX",
	KeyY:              "KeyY",
	KeyZ:              "KeyZ",
	KeyComma:          "Comma",
	KeyPeriod:         "Period",
	KeySemicolon:      "Semicolon",
	KeyQuote:          "Quote",
	KeyBracketLeft:    "BracketLeft",
	KeyBracketRight:   "BracketRight",
	KeyBackquote:      "Backquote",
	KeyBackslash:      "Backslash",
	KeyMinus:          "Minus",
	KeyEqual:          "Equal",
	KeyAltLeft:        "AltLeft",
	KeyAltRight:       "AltRight",
	KeyCapsLock:       "CapsLock",
	KeyControlLeft:    "ControlLeft",
	KeyControlRight:   "ControlRight",
	KeyMetaLeft:       "MetaLeft",
	KeyMetaRight:      "MetaRight",
	KeyShiftLeft:      "ShiftLeft",
	KeyShiftRight:     "ShiftRight",
	KeyContextMenu:    "ContextMenu",
	KeyEnter:          "Enter",
	KeySpace:          "Space",
	KeyTab:            "Tab",
	KeyBackspace:      "Backspace",
	KeyDelete:         "Delete",
	KeyEnd:            "End",
	KeyHome:           "Home",
	KeyInsert:         "Insert",
	KeyPageDown:       "PageDown",
	KeyPageUp:         "PageUp",
	KeyArrowDown:      "ArrowDown",
	KeyArrowLeft:      "ArrowLeft",
	KeyArrowRight:     "ArrowRight",
	KeyArrowUp:        "ArrowUp",
	KeyEscape:         "Escape",
	KeyPrintScreen:    "PrintScreen",
	KeyScrollLock:     "ScrollLock",
	KeyPause:          "Pause",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyNumLock:        "NumLock",
	KeyNumpad0:        "Numpad0",
	KeyNumpad1:        "Numpad1",
	KeyNumpad2:        "Numpad2",
	KeyNumpad3:        "Numpad3",
	KeyNumpad4:        "Numpad4",
	KeyNumpad5:        "Numpad5",
	KeyNumpad6:        "Numpad6",
	KeyNumpad7:        "Numpad7",
	KeyNumpad8:        "Numpad8",
	KeyNumpad9:        "Numpad9",
	KeyNumpadAdd:      "NumpadAdd",
	KeyNumpadDecimal:  "NumpadDecimal",
	KeyNumpadDivide:   "NumpadDivide",
	KeyNumpadEnter:    "NumpadEnter",
	KeyNumpadEqual:    "NumpadEqual",
	KeyNumpadMultiply: "NumpadMultiply",
	KeyNumpadSubtract: "NumpadSubtract",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey looks up a key by its KeyboardEvent.code name.
func ParseKey(name string) (Key, error) {
	for k := KeyNone + 1; k < KeyCount; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

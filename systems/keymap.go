package systems

import (
	"github.com/automoto/rocketview/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyMap translates Ebitengine keys to input keys. Keys missing here are ignored.
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyDigit0:          input.KeyDigit0,
	ebiten.KeyDigit1:          input.KeyDigit1,
	ebiten.KeyDigit2:          input.KeyDigit2,
	ebiten.KeyDigit3:          input.KeyDigit3,
	ebiten.KeyDigit4:          input.KeyDigit4,
	ebiten.KeyDigit5:          input.KeyDigit5,
	ebiten.KeyDigit6:          input.KeyDigit6,
	ebiten.KeyDigit7:          input.KeyDigit7,
	ebiten.KeyDigit8:          input.KeyDigit8,
	ebiten.KeyDigit9:          input.KeyDigit9,
	ebiten.KeyA:               input.KeyA,
	ebiten.KeyB:               input.KeyB,
	ebiten.KeyC:               input.KeyC,
	ebiten.KeyD:               input.KeyD,
	ebiten.KeyE:               input.KeyE,
	ebiten.KeyF:               input.KeyF,
	ebiten.KeyG:               input.KeyG,
	ebiten.KeyH:               input.KeyH,
	ebiten.KeyI:               input.KeyI,
	ebiten.KeyJ:               input.KeyJ,
	ebiten.KeyK:               input.KeyK,
	ebiten.KeyL:               input.KeyL,
	ebiten.KeyM:               input.KeyM,
	ebiten.KeyN:               input.KeyN,
	ebiten.KeyO:               input.KeyO,
	ebiten.KeyP:               input.KeyP,
	ebiten.KeyQ:               input.KeyQ,
	ebiten.KeyR:               input.KeyR,
	ebiten.KeyS:               input.KeyS,
	ebiten.KeyT:               input.KeyT,
	ebiten.KeyU:               input.KeyU,
	ebiten.KeyV:               input.KeyV,
	ebiten.KeyW:               input.KeyW,
	ebiten.KeyX:               input.KeyX,
	ebiten.KeyY:               input.KeyY,
	ebiten.KeyZ:               input.KeyZ,
	ebiten.KeyComma:           input.KeyComma,
	ebiten.KeyPeriod:          input.KeyPeriod,
	ebiten.KeySemicolon:       input.KeySemicolon,
	ebiten.KeyQuote:           input.KeyQuote,
	ebiten.KeyBracketLeft:     input.KeyBracketLeft,
	ebiten.KeyBracketRight:    input.KeyBracketRight,
	ebiten.KeyBackquote:       input.KeyBackquote,
	ebiten.KeyBackslash:       input.KeyBackslash,
	ebiten.KeyMinus:           input.KeyMinus,
	ebiten.KeyEqual:           input.KeyEqual,
	ebiten.KeyAltLeft:         input.KeyAltLeft,
	ebiten.KeyAltRight:        input.KeyAltRight,
	ebiten.KeyCapsLock:        input.KeyCapsLock,
	ebiten.KeyControlLeft:     input.KeyControlLeft,
	ebiten.KeyControlRight:    input.KeyControlRight,
	ebiten.KeyMetaLeft:        input.KeyMetaLeft,
	ebiten.KeyMetaRight:       input.KeyMetaRight,
	ebiten.KeyShiftLeft:       input.KeyShiftLeft,
	ebiten.KeyShiftRight:      input.KeyShiftRight,
	ebiten.KeyContextMenu:     input.KeyContextMenu,
	ebiten.KeyEnter:           input.KeyEnter,
	ebiten.KeySpace:           input.KeySpace,
	ebiten.KeyTab:             input.KeyTab,
	ebiten.KeyBackspace:       input.KeyBackspace,
	ebiten.KeyDelete:          input.KeyDelete,
	ebiten.KeyEnd:             input.KeyEnd,
	ebiten.KeyHome:            input.KeyHome,
	ebiten.KeyInsert:          input.KeyInsert,
	ebiten.KeyPageDown:        input.KeyPageDown,
	ebiten.KeyPageUp:          input.KeyPageUp,
	ebiten.KeyArrowDown:       input.KeyArrowDown,
	ebiten.KeyArrowLeft:       input.KeyArrowLeft,
	ebiten.KeyArrowRight:      input.KeyArrowRight,
	ebiten.KeyArrowUp:         input.KeyArrowUp,
	ebiten.KeyEscape:          input.KeyEscape,
	ebiten.KeyPrintScreen:     input.KeyPrintScreen,
	ebiten.KeyScrollLock:      input.KeyScrollLock,
	ebiten.KeyPause:           input.KeyPause,
	ebiten.KeyF1:              input.KeyF1,
	ebiten.KeyF2:              input.KeyF2,
	ebiten.KeyF3:              input.KeyF3,
	ebiten.KeyF4:              input.KeyF4,
	ebiten.KeyF5:              input.KeyF5,
	ebiten.KeyF6:              input.KeyF6,
	ebiten.KeyF7:              input.KeyF7,
	ebiten.KeyF8:              input.KeyF8,
	ebiten.KeyF9:              input.KeyF9,
	ebiten.KeyF10:             input.KeyF10,
	ebiten.KeyF11:             input.KeyF11,
	ebiten.KeyF12:             input.KeyF12,
	ebiten.KeyNumLock:         input.KeyNumLock,
	ebiten.KeyNumpad0:         input.KeyNumpad0,
	ebiten.KeyNumpad1:         input.KeyNumpad1,
	ebiten.KeyNumpad2:         input.KeyNumpad2,
	ebiten.KeyNumpad3:         input.KeyNumpad3,
	ebiten.KeyNumpad4:         input.KeyNumpad4,
	ebiten.KeyNumpad5:         input.KeyNumpad5,
	ebiten.KeyNumpad6:         input.KeyNumpad6,
	ebiten.KeyNumpad7:         input.KeyNumpad7,
	ebiten.KeyNumpad8:         input.KeyNumpad8,
	ebiten.KeyNumpad9:         input.KeyNumpad9,
	ebiten.KeyNumpadAdd:       input.KeyNumpadAdd,
	ebiten.KeyNumpadDecimal:   input.KeyNumpadDecimal,
	ebiten.KeyNumpadDivide:    input.KeyNumpadDivide,
	ebiten.KeyNumpadEnter:     input.KeyNumpadEnter,
	ebiten.KeyNumpadEqual:     input.KeyNumpadEqual,
	ebiten.KeyNumpadMultiply:  input.KeyNumpadMultiply,
	ebiten.KeyNumpadSubtract:  input.KeyNumpadSubtract,
}

package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	if err := LoadFontWithSize(HUD, goregular.TTF, 14); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !Loaded(HUD) {
		t.Fatalf("HUD not registered")
	}
	if HUD.Get() == nil {
		t.Fatalf("nil face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont(HUDSmall, []byte("not a font")); err == nil {
		t.Fatalf("expected a parse error")
	}
	if Loaded(HUDSmall) {
		t.Fatalf("failed load registered a face")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	FontName("missing").Get()
}

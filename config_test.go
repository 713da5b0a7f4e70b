package mapshade

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultAppearanceApply(t *testing.T) {
	var s FrameState
	DefaultAppearance().Apply(&s)

	if s.PlayfieldColor.A != 1 {
		t.Error("playfield color not applied")
	}
	if s.SliderBorderPx <= 0 {
		t.Error("slider border thickness not applied")
	}
	if s.Selections[SideLeft].Colors[RoleComboColor] == (RGBA{}) {
		t.Error("left selection palette not applied")
	}
	if s.Selections[SideLeft].Colors[RoleComboColor] == s.Selections[SideRight].Colors[RoleComboColor] {
		t.Error("selection sides share a combo color")
	}
}

func TestAppearanceRoundTrip(t *testing.T) {
	want := DefaultAppearance()
	data, err := toml.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "appearance.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadAppearance(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.General != want.General {
		t.Errorf("general section round trip: %+v != %+v", got.General, want.General)
	}
	if got.Colors.Playfield != want.Colors.Playfield {
		t.Errorf("playfield color round trip: %v", got.Colors.Playfield)
	}
	if got.Colors.LeftSelection != want.Colors.LeftSelection {
		t.Errorf("left selection palette round trip")
	}
}

func TestLoadAppearanceMissingFile(t *testing.T) {
	if _, err := LoadAppearance(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSelectionPaletteRoles(t *testing.T) {
	p := SelectionPalette{
		Border: [4]float32{2, -1, 0.5, 1}, // out-of-range channels clamp
	}
	roles := p.Roles()
	colorNear(t, roles[RoleBorder], RGBA{R: 1, G: 0, B: 0.5, A: 1}, 1e-6)
}

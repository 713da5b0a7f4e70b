package mapshade

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Appearance is the editor's rendering configuration, decoded from TOML.
// Colors are straight RGBA in [0,1]; thicknesses are beatmap units unless
// noted. The host copies these values into FrameState each frame, so the
// renderers never read the config directly.
type Appearance struct {
	General AppearanceGeneral `toml:"general"`
	Layout  AppearanceLayout  `toml:"layout"`
	Colors  AppearanceColors  `toml:"colors"`
}

type AppearanceGeneral struct {
	BreakTimeLightness        float32 `toml:"break_time_lightness"`
	SelectedFadeInOpacityCap  float32 `toml:"selected_fade_in_opacity_cap"`
	SelectedFadeOutOpacityCap float32 `toml:"selected_fade_out_opacity_cap"`
	SelectionColorMixStrength float32 `toml:"selection_color_mix_strength"`
	TimelinePastGrayscale     float32 `toml:"timeline_past_grayscale_strength"`
}

type AppearanceLayout struct {
	SliderBorderThickness float32 `toml:"slider_border_thickness"`
	SliderOuterThickness  float32 `toml:"slider_outer_thickness"`
	SnapMarkerRadiusPx    float32 `toml:"snap_marker_radius_px"`
	DragMarkerRadiusPx    float32 `toml:"drag_state_marker_radius_px"`
}

type AppearanceColors struct {
	Playfield       [4]float32 `toml:"playfield_rgba"`
	PlayfieldBorder [4]float32 `toml:"playfield_border_rgba"`
	Gameplay        [4]float32 `toml:"gameplay_rgba"`
	GameplayBorder  [4]float32 `toml:"gameplay_border_rgba"`
	Outer           [4]float32 `toml:"outer_rgba"`
	SliderRidge     [4]float32 `toml:"slider_ridge_rgba"`
	SliderBody      [4]float32 `toml:"slider_body_rgba"`

	OffscreenPlayfieldTint [4]float32 `toml:"offscreen_playfield_tint_rgba"`
	OffscreenOsuTint       [4]float32 `toml:"offscreen_osu_tint_rgba"`

	SnapMarker      [4]float32 `toml:"snap_marker_rgba"`
	DragStateMarker [4]float32 `toml:"drag_state_marker_rgba"`

	TimelinePastTint       [4]float32 `toml:"timeline_past_tint_rgba"`
	TimelinePastObjectTint [4]float32 `toml:"timeline_past_object_tint_rgba"`
	TimelineOutline        [4]float32 `toml:"timeline_slider_outline_rgba"`

	LeftSelection  SelectionPalette `toml:"left_selection_colors"`
	RightSelection SelectionPalette `toml:"right_selection_colors"`
}

// SelectionPalette is the 12-role color set of one selection side.
type SelectionPalette struct {
	DragRectangle  [4]float32 `toml:"drag_rectangle"`
	Border         [4]float32 `toml:"selection_border"`
	BorderHovered  [4]float32 `toml:"selection_border_hovered"`
	BorderDragging [4]float32 `toml:"selection_border_dragging"`
	Tint           [4]float32 `toml:"selection_tint"`
	TintHovered    [4]float32 `toml:"selection_tint_hovered"`
	TintDragging   [4]float32 `toml:"selection_tint_dragging"`
	Origin         [4]float32 `toml:"selection_origin"`
	OriginHovered  [4]float32 `toml:"selection_origin_hovered"`
	OriginClicked  [4]float32 `toml:"selection_origin_clicked"`
	OriginLocked   [4]float32 `toml:"selection_origin_locked"`
	ComboColor     [4]float32 `toml:"selection_combo_color"`
}

// Roles converts the palette into the indexed role array SelectionState
// carries.
func (p *SelectionPalette) Roles() [NumSelectionRoles]RGBA {
	conv := func(v [4]float32) RGBA {
		return RGBA{
			R: clamp(v[0], 0, 1),
			G: clamp(v[1], 0, 1),
			B: clamp(v[2], 0, 1),
			A: clamp(v[3], 0, 1),
		}
	}
	return [NumSelectionRoles]RGBA{
		RoleDragRectangle:  conv(p.DragRectangle),
		RoleBorder:         conv(p.Border),
		RoleBorderHovered:  conv(p.BorderHovered),
		RoleBorderDragging: conv(p.BorderDragging),
		RoleTint:           conv(p.Tint),
		RoleTintHovered:    conv(p.TintHovered),
		RoleTintDragging:   conv(p.TintDragging),
		RoleOrigin:         conv(p.Origin),
		RoleOriginHovered:  conv(p.OriginHovered),
		RoleOriginClicked:  conv(p.OriginClicked),
		RoleOriginLocked:   conv(p.OriginLocked),
		RoleComboColor:     conv(p.ComboColor),
	}
}

// LoadAppearance reads and decodes an appearance TOML file. Every field is
// required; missing keys keep their zero value, which the caller should
// treat as a config authoring error for colors that matter.
func LoadAppearance(path string) (*Appearance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read appearance config: %w", err)
	}
	var a Appearance
	if err := toml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode appearance config: %w", err)
	}
	Logger().Info("appearance config loaded", "path", path)
	return &a, nil
}

// DefaultAppearance returns the stock editor appearance.
func DefaultAppearance() *Appearance {
	sel := func(r, g, b float32) SelectionPalette {
		return SelectionPalette{
			DragRectangle:  [4]float32{r, g, b, 0.15},
			Border:         [4]float32{r, g, b, 0.9},
			BorderHovered:  [4]float32{r, g, b, 1},
			BorderDragging: [4]float32{1, 1, 1, 1},
			Tint:           [4]float32{r, g, b, 0.1},
			TintHovered:    [4]float32{r, g, b, 0.18},
			TintDragging:   [4]float32{r, g, b, 0.25},
			Origin:         [4]float32{r, g, b, 0.8},
			OriginHovered:  [4]float32{r, g, b, 1},
			OriginClicked:  [4]float32{1, 1, 1, 1},
			OriginLocked:   [4]float32{0.6, 0.6, 0.6, 0.9},
			ComboColor:     [4]float32{r, g, b, 1},
		}
	}
	return &Appearance{
		General: AppearanceGeneral{
			BreakTimeLightness:        0.25,
			SelectedFadeInOpacityCap:  0.45,
			SelectedFadeOutOpacityCap: 0.3,
			SelectionColorMixStrength: 0.5,
			TimelinePastGrayscale:     0.6,
		},
		Layout: AppearanceLayout{
			SliderBorderThickness: 4,
			SliderOuterThickness:  1.5,
			SnapMarkerRadiusPx:    3,
			DragMarkerRadiusPx:    5,
		},
		Colors: AppearanceColors{
			Playfield:       [4]float32{0.07, 0.07, 0.09, 1},
			PlayfieldBorder: [4]float32{0.45, 0.45, 0.5, 1},
			Gameplay:        [4]float32{0.05, 0.05, 0.06, 1},
			GameplayBorder:  [4]float32{0.3, 0.3, 0.34, 1},
			Outer:           [4]float32{0.02, 0.02, 0.03, 1},
			SliderRidge:     [4]float32{0.12, 0.12, 0.14, 1},
			SliderBody:      [4]float32{0.06, 0.06, 0.08, 1},

			OffscreenPlayfieldTint: [4]float32{1, 0.45, 0.35, 0.35},
			OffscreenOsuTint:       [4]float32{1, 0.2, 0.2, 0.55},

			SnapMarker:      [4]float32{1, 1, 1, 0.35},
			DragStateMarker: [4]float32{1, 0.85, 0.3, 0.8},

			TimelinePastTint:       [4]float32{0.1, 0.1, 0.12, 0.5},
			TimelinePastObjectTint: [4]float32{0.6, 0.6, 0.62, 1},
			TimelineOutline:        [4]float32{0.9, 0.9, 0.95, 1},

			LeftSelection:  sel(0.35, 0.65, 1),
			RightSelection: sel(1, 0.45, 0.35),
		},
	}
}

// Apply copies the appearance values onto a FrameState. The host calls
// this once per frame after rebuilding the layout-dependent fields.
func (a *Appearance) Apply(s *FrameState) {
	conv := func(v [4]float32) RGBA {
		return RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
	}
	s.PlayfieldColor = conv(a.Colors.Playfield)
	s.PlayfieldBorderColor = conv(a.Colors.PlayfieldBorder)
	s.GameplayColor = conv(a.Colors.Gameplay)
	s.GameplayBorderColor = conv(a.Colors.GameplayBorder)
	s.OuterColor = conv(a.Colors.Outer)
	s.SliderRidgeColor = conv(a.Colors.SliderRidge)
	s.SliderBodyColor = conv(a.Colors.SliderBody)
	s.OffscreenPlayfieldTint = conv(a.Colors.OffscreenPlayfieldTint)
	s.OffscreenOsuTint = conv(a.Colors.OffscreenOsuTint)
	s.SnapMarkerColor = conv(a.Colors.SnapMarker)
	s.DragMarkerColor = conv(a.Colors.DragStateMarker)
	s.TimelinePastTint = conv(a.Colors.TimelinePastTint)
	s.TimelinePastObjectTint = conv(a.Colors.TimelinePastObjectTint)
	s.TimelineOutlineColor = conv(a.Colors.TimelineOutline)

	s.BreakLightness = a.General.BreakTimeLightness
	s.SelectedFadeInCap = a.General.SelectedFadeInOpacityCap
	s.SelectedFadeOutCap = a.General.SelectedFadeOutOpacityCap
	s.SelectionMixStrength = a.General.SelectionColorMixStrength
	s.TimelinePastGrayscale = a.General.TimelinePastGrayscale

	s.SliderBorderPx = a.Layout.SliderBorderThickness
	s.SliderOuterPx = a.Layout.SliderOuterThickness
	s.SnapMarkerRadiusPx = a.Layout.SnapMarkerRadiusPx
	s.DragMarkerRadiusPx = a.Layout.DragMarkerRadiusPx

	s.Selections[SideLeft].Colors = a.Colors.LeftSelection.Roles()
	s.Selections[SideRight].Colors = a.Colors.RightSelection.Roles()
}

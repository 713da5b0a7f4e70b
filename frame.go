package mapshade

// Capacity limits for producer-supplied record arrays. The per-pixel scan
// over slider segments is additionally capped by MaxSegmentsPerScan so a
// pathological box range cannot blow up a pixel's cost.
const (
	MaxHitObjects     = 8192
	MaxTimelinePoints = 8192
	MaxTimelineMarks  = 2048

	// MaxSegmentsPerBox bounds how many path segments one slider box may
	// reference; a slider with more segments is split into
	// ceil(segments/MaxSegmentsPerBox) boxes by the producer.
	MaxSegmentsPerBox = 64

	// MaxSegmentsPerScan caps the per-pixel segment loop.
	MaxSegmentsPerScan = 1024
)

// SelectionRole names one of the 12 color roles a selection side carries.
type SelectionRole int

const (
	RoleDragRectangle SelectionRole = iota
	RoleBorder
	RoleBorderHovered
	RoleBorderDragging
	RoleTint
	RoleTintHovered
	RoleTintDragging
	RoleOrigin
	RoleOriginHovered
	RoleOriginClicked
	RoleOriginLocked
	RoleComboColor

	NumSelectionRoles
)

// SelectionSide identifies one of the two independent selections.
type SelectionSide int

const (
	SideLeft SelectionSide = iota
	SideRight
)

// SelectionState is the per-side selection record. The editor supports two
// independently manipulable selections; all selection rendering is written
// once against this record and applied to both sides.
type SelectionState struct {
	Exists   bool
	Hovered  bool
	Dragging bool
	Locked   bool

	// Quad corners in screen pixels, in order. The quad may be rotated.
	Quad [4]Point

	// Origin is the draggable origin handle position (screen pixels);
	// Dragged is the current drag position while a drag is in progress.
	Origin  Point
	Dragged Point

	// Playfield-space origin/moved points, for readout panels.
	OriginPlayfield Point
	MovedPlayfield  Point

	RotationDegrees float32
	Scale           float32

	// OverlayRect is the side's selection-detail panel rect.
	OverlayRect Rect

	Colors [NumSelectionRoles]RGBA
}

// BorderColor resolves the border role for the current interaction state.
func (s *SelectionState) BorderColor() RGBA {
	switch {
	case s.Dragging:
		return s.Colors[RoleBorderDragging]
	case s.Hovered:
		return s.Colors[RoleBorderHovered]
	default:
		return s.Colors[RoleBorder]
	}
}

// OriginColor resolves the origin-handle role for the current state.
func (s *SelectionState) OriginColor() RGBA {
	switch {
	case s.Locked:
		return s.Colors[RoleOriginLocked]
	case s.Dragging:
		return s.Colors[RoleOriginClicked]
	case s.Hovered:
		return s.Colors[RoleOriginHovered]
	default:
		return s.Colors[RoleOrigin]
	}
}

// UndoRowKind places a history row relative to the current state.
type UndoRowKind uint32

const (
	UndoRowUndo UndoRowKind = iota
	UndoRowCurrent
	UndoRowRedo
)

// UndoStackRow is one button of the undo/redo stack: a named history
// state with its age and interaction flags. The producer lays out the
// rects and orders rows oldest-first.
type UndoStackRow struct {
	Rect    Rect
	Kind    UndoRowKind
	Hovered bool
	Clicked bool
	Name    string
	AgeMS   float32
}

// ActiveSlider is the playback state of the slider currently under the
// play cursor, used to draw the slider ball and follow circle.
type ActiveSlider struct {
	Active      bool
	Progress    float32 // 0..1 along the path
	Position    Point   // beatmap space
	Direction   Point   // unit tangent at Position
	Radius      float32 // beatmap units
	Color       RGBA
	FollowScale float32
}

// SpinnerState describes the spinner indicator overlay.
type SpinnerState uint32

const (
	SpinnerNone SpinnerState = iota
	SpinnerSpinning
	SpinnerCleared
)

// FrameState is the per-frame global state. The host rebuilds it every
// frame; it is read-only to this package for the duration of a render
// pass and discarded afterwards. It is always passed explicitly, never
// stored.
type FrameState struct {
	ScreenW, ScreenH float32
	TimeMS           float32

	// PlayfieldRect maps 512x384 beatmap space to screen pixels;
	// OsuRect maps 640x480 osu space. Uniform (aspect-locked) scale.
	PlayfieldRect Rect
	OsuRect       Rect

	HUDOpacity float32
	Playing    bool
	Loading    bool

	IsKiai    bool
	IsBreak   bool
	BreakTime [2]float32 // current break interval (start, end)

	SpinnerTime  [2]float32
	SpinnerState SpinnerState

	SongTotalMS   float32
	PlaybackRate  float32
	TimeElapsedMS float32

	FPSx10     uint32
	FPSLowx10  uint32
	CPUPassx10 uint32
	GPUPassx10 uint32

	AudioVolume    float32
	HitsoundVolume float32
	UndoCount      uint32
	UndoStack      []UndoStackRow

	CursorPos Point

	// Field colors.
	PlayfieldColor       RGBA
	PlayfieldBorderColor RGBA
	GameplayColor        RGBA
	GameplayBorderColor  RGBA
	OuterColor           RGBA
	BreakLightness       float32

	// Slider stroke style.
	SliderRidgeColor RGBA
	SliderBodyColor  RGBA
	SliderBorderPx   float32 // inner border thickness, beatmap units
	SliderOuterPx    float32 // outer border thickness, beatmap units

	OffscreenPlayfieldTint RGBA
	OffscreenOsuTint       RGBA

	// Selection behavior.
	SelectedFadeInCap    float32
	SelectedFadeOutCap   float32
	SelectionMixStrength float32
	Selections           [2]SelectionState

	// HUD layout, screen pixels.
	TimelineRect       Rect
	TimelineHitboxRect Rect
	TopTimelineRect    Rect
	TopTimelineHitbox  Rect
	PlayPauseRect      Rect
	StatsBoxRect       Rect

	// Top-timeline window and style.
	TimelineWindowMS       [2]float32
	TimelineCurrentX       float32
	TimelineZoom           float32
	TimelinePastGrayscale  float32
	TimelinePastTint       RGBA
	TimelinePastObjectTint RGBA
	TimelineOutlineColor   RGBA

	// Overlay style.
	SnapMarkerColor    RGBA
	SnapMarkerRadiusPx float32
	DragMarkerColor    RGBA
	DragMarkerRadiusPx float32

	Slider ActiveSlider
}

// HitObjectRecord is one visible hit object, rebuilt by the producer each
// frame from editor state and immutable during a render pass. Slider
// fields are meaningful only when IsSlider is set.
type HitObjectRecord struct {
	Center  Point // beatmap space
	Radius  float32
	TimeMS  float32
	Preempt float32

	Combo      uint32
	ComboColor RGBA
	IsSlider   bool

	ApproachStartScale float32 // 4.0 in the stock skin
	ApproachEndScale   float32 // 1.0

	Selected     bool
	SelectedSide SelectionSide

	// Slider-only fields.
	EndCenter        Point
	Slides           uint32 // direction reversals plus one
	StartBorderColor RGBA
	EndBorderColor   RGBA
	SlideDurationMS  float32
	EndTimeMS        float32
	HeadRotation     Point // unit tangent at head, (cos a, sin a)
	EndRotation      Point // unit tangent at tail
	BoxStart         uint32
	BoxCount         uint32
}

// EndTime returns when the object stops being "current": the hit time for
// circles, the slider end time for sliders.
func (h *HitObjectRecord) EndTime() float32 {
	if h.IsSlider {
		return h.EndTimeMS
	}
	return h.TimeMS
}

// SliderSegmentRecord is one ridge segment of a slider's path
// approximation. Progress runs 0..1 along the whole slider path.
type SliderSegmentRecord struct {
	A, B      Point // beatmap space
	AProgress float32
	BProgress float32
}

// SliderBoxRecord partitions a slider's segments spatially so each screen
// quad only scans the segments relevant to it. Bounds are in beatmap space
// and cover all referenced segments plus the stroke radius margin.
type SliderBoxRecord struct {
	Min, Max Point
	SegStart uint32
	SegCount uint32
	Object   uint32 // owning hit object index
}

// TimelinePointFlags is the role bitmask of a timeline point.
type TimelinePointFlags uint32

const (
	TimelineSlideStart TimelinePointFlags = 1 << iota
	TimelineSlideRepeat
	TimelineSlideEnd
	TimelineSelected
	TimelineSelectedByLeft
	TimelineSliderOrSpinner
)

// TimelinePointRecord is one marker on the top timeline, ordered by time.
// Consecutive points of one object form a slide-start -> repeat* ->
// slide-end chain that the group renderer strokes as a single capsule.
type TimelinePointRecord struct {
	X          float32 // screen pixels, producer-mapped from time
	CenterY    float32
	RadiusMult float32
	Flags      TimelinePointFlags
	Color      RGBA
}

// TimelineMarkKind distinguishes interval shading from point ticks.
type TimelineMarkKind uint32

const (
	MarkKiai TimelineMarkKind = iota
	MarkBreak
	MarkBookmark
	MarkRedline
)

// TimelineMarkRecord is a (start, end) millisecond interval on the song
// timeline. Bookmarks and redlines are point marks with Start == End.
type TimelineMarkRecord struct {
	Kind  TimelineMarkKind
	Start float32
	End   float32
}

// SkinMeta carries per-sprite scale factors relative to the nominal 128 px
// sprite size (256 px for @2x), e.g. a 192 px 1x hitcircle gives 1.5.
type SkinMeta struct {
	HitCircle          float32
	HitCircleOverlay   float32
	SliderStart        float32
	SliderStartOverlay float32
	SliderEnd          float32
	SliderEndOverlay   float32
	ReverseArrow       float32
	SliderBall         float32
	FollowCircle       float32
}

// MaxScale returns the largest sprite scale relevant to a hit-circle quad.
func (m *SkinMeta) MaxScale() float32 {
	s := float32(1)
	for _, v := range [...]float32{m.HitCircle, m.HitCircleOverlay} {
		if v > s {
			s = v
		}
	}
	return s
}

// DigitUV maps digit-atlas UVs: uv' = uv*Scale + Offset.
type DigitUV struct {
	Scale  Point
	Offset Point
}

// DigitsMeta describes the layout of the combo-number digit atlas.
type DigitsMeta struct {
	UV [10]DigitUV
	// MaxSize is the largest digit layer size in pixels; per-digit aspect
	// is recovered from the UV scale against it.
	MaxSize Point
}

// Aspect returns the width/height aspect ratio of digit d.
func (m *DigitsMeta) Aspect(d int) float32 {
	if d < 0 || d > 9 {
		return 1
	}
	w := m.UV[d].Scale.X * m.MaxSize.X
	h := m.UV[d].Scale.Y * m.MaxSize.Y
	return w / max32(h, epsilon)
}

// Frame is the complete immutable input of one render pass.
type Frame struct {
	State FrameState

	Objects  []HitObjectRecord
	Segments []SliderSegmentRecord
	Boxes    []SliderBoxRecord

	// SliderDraw lists the Objects indices whose caps are drawn this
	// frame. Empty means every slider draws its caps.
	SliderDraw []uint32

	TimelinePoints []TimelinePointRecord
	TimelineMarks  []TimelineMarkRecord

	Skin    SkinMeta
	Digits  DigitsMeta
	Sprites *SpriteSet
}

package mapshade

// Animation curves governing appearance, fade and growth of hit objects.
// All times are in milliseconds.
const (
	// fadeOutMS is the window over which a hit object fades and grows
	// after its end time.
	fadeOutMS = 250

	// fadeInFraction of the preempt window is spent fading in.
	fadeInFraction = 2.0 / 3.0

	// growthTargetCircle is the scale a hit circle grows to over the
	// fade-out window; slider caps grow slightly further.
	growthTargetCircle = 1.2
	growthTargetCap    = 1.25

	// growthBoost is applied to the growth delta of unselected objects.
	growthBoost = 1.2
)

// FadeIn returns the fade-in alpha at time now for an object with the
// given hit time and preempt: 0 at appearance (time-preempt), reaching 1
// after two thirds of the preempt window.
func FadeIn(now, time, preempt float32) float32 {
	appear := time - preempt
	return clamp((now-appear)/max32(preempt*fadeInFraction, epsilon), 0, 1)
}

// FadeOutCircle returns the fade-out alpha for a hit circle at time now.
// The falloff is eased ((1-t)^2) so circles vanish with a soft tail.
func FadeOutCircle(now, endTime float32) float32 {
	t := clamp((now-endTime)/fadeOutMS, 0, 1)
	return (1 - t) * (1 - t)
}

// FadeOutSlider returns the fade-out alpha for a slider body at time now.
// Slider bodies fade linearly over the same window; the asymmetry with
// FadeOutCircle is carried over from the reference renderer and is kept as
// two distinct curves on purpose.
func FadeOutSlider(now, endTime float32) float32 {
	return 1 - clamp((now-endTime)/fadeOutMS, 0, 1)
}

// ObjectAlpha combines fade-in and the circle fade-out, then applies the
// selected-opacity floor: selected objects never drop below the configured
// cap, with separate caps before and after the object's end time so a
// selected object stays visible while being edited.
func ObjectAlpha(now, time, preempt, endTime float32, selected bool, fadeInCap, fadeOutCap float32) float32 {
	a := FadeIn(now, time, preempt) * FadeOutCircle(now, endTime)
	if selected {
		floor := fadeInCap
		if now > endTime {
			floor = fadeOutCap
		}
		a = max32(a, clamp(floor, 0, 1))
	}
	return a
}

// SliderAlpha is ObjectAlpha with the linear slider fade-out.
func SliderAlpha(now, time, preempt, endTime float32, selected bool, fadeInCap, fadeOutCap float32) float32 {
	a := FadeIn(now, time, preempt) * FadeOutSlider(now, endTime)
	if selected {
		floor := fadeInCap
		if now > endTime {
			floor = fadeOutCap
		}
		a = max32(a, clamp(floor, 0, 1))
	}
	return a
}

// Growth returns the post-hit growth scale at time now for an object that
// ends at endTime. The scale eases from 1.0 toward target over the
// fade-out window with ease(t)=1-(1-t)^2. Unselected objects additionally
// multiply the delta from 1.0 by the growth boost; selected objects never
// grow so their screen footprint stays stable while editing.
//
// Both the enclosing draw quad and the per-pixel UV remap must use the
// value of one Growth call per object per frame; deriving the two
// independently produces visible popping.
func Growth(now, endTime, target float32, selected bool) float32 {
	if selected {
		return 1
	}
	t := clamp((now-endTime)/fadeOutMS, 0, 1)
	ease := 1 - (1-t)*(1-t)
	raw := lerp(1, target, ease)
	return 1 + (raw-1)*growthBoost
}

// ApproachScale returns the approach-circle scale at time now: linearly
// interpolated from startScale to endScale across the preempt window and
// frozen at endScale once the hit time has passed.
func ApproachScale(now, time, preempt, startScale, endScale float32) float32 {
	t := clamp((now-(time-preempt))/max32(preempt, epsilon), 0, 1)
	return lerp(startScale, endScale, t)
}

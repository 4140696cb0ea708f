// Package cadence is a time-driven effects engine for 2D cutscenes: tweens
// with pluggable easing, a one-shot event timeline, camera shake and
// rotation, parallax smoothing, and two-track audio crossfades, all advanced
// from a single playback clock.
//
// # Quick start
//
// A [Director] owns the clock and every manager. Script the timeline with
// [Director.At] and drive it once per frame:
//
//	d := cadence.NewDirector(cadence.DefaultConfig(), nil)
//	logo := cadence.NewSprite("logo", 256, 128)
//	d.Track(logo)
//
//	d.At(3, func() {
//		d.Animator().AnimateScale(logo, 3, 3, 5, cadence.InOutQuart)
//		d.Effects().Shake(0.5, 4, 0.05)
//	})
//
//	for !done {
//		d.Update(1.0 / 60)
//		d.Apply()
//		// draw d.Sprites() through d.Camera().ViewMatrix()
//		d.Reset()
//	}
//
// The ebitenhost sub-package runs a Director inside an Ebitengine game loop,
// and beepaudio provides audio streams for [Crossfade].
//
// # Frame order
//
// [Director.Update] advances input, the clock, the [Scheduler], the
// [Animator], the [Camera], [CameraEffects], [Parallax], scrollers,
// crossfades, impulses, and sprite frames, in that order. An event due this
// frame therefore starts tweens that take their first step in the same
// frame.
//
// # Easing
//
// [Curve] names a pure easing function; [Evaluate] maps progress in [0, 1]
// through it. Most Penner curves come from [gween]. Oscillating curves
// return to 0 at both ends.
//
// # Errors
//
// Contract violations (nil targets, nil callbacks, negative durations,
// releasing a pooled slot twice, unbalanced [CameraEffects.Apply] and
// [CameraEffects.Reset]) panic. Configuration and script parsing return
// errors.
//
// [gween]: https://github.com/tanema/gween
package cadence

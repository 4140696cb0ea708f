package ebitenhost

import (
	"math"
	"testing"
	"time"

	"github.com/phanxgames/cadence"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestGeoMMatchesAffine(t *testing.T) {
	cam := cadence.NewCamera(cadence.Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 120, -40
	cam.Zoom = 1.5
	cam.Rotation = 0.3
	cam.MarkDirty()

	g := geoM(cam.ViewMatrix())
	for _, p := range [][2]float64{{0, 0}, {100, 50}, {-30, 200}} {
		wantX, wantY := cam.WorldToScreen(p[0], p[1])
		gotX, gotY := g.Apply(p[0], p[1])
		if !approxEqual(gotX, wantX, 1e-9) || !approxEqual(gotY, wantY, 1e-9) {
			t.Errorf("Apply(%v) = (%v, %v), want (%v, %v)", p, gotX, gotY, wantX, wantY)
		}
	}
}

func TestGeoMSpriteTransform(t *testing.T) {
	s := cadence.NewSprite("s", 20, 10)
	s.SetPosition(100, 100)
	s.SetScale(2, 2)

	g := geoM(s.Transform())
	// Scaling pivots on the center, so the center stays put.
	x, y := g.Apply(10, 5)
	if !approxEqual(x, 110, 1e-9) || !approxEqual(y, 105, 1e-9) {
		t.Errorf("center = (%v, %v), want (110, 105)", x, y)
	}
	x, y = g.Apply(0, 0)
	if !approxEqual(x, 90, 1e-9) || !approxEqual(y, 95, 1e-9) {
		t.Errorf("top-left = (%v, %v), want (90, 95)", x, y)
	}
}

func TestKeyMapCoversDirections(t *testing.T) {
	for _, k := range []cadence.Key{cadence.KeyLeft, cadence.KeyRight, cadence.KeyUp, cadence.KeyDown} {
		if _, ok := keyMap[k]; !ok {
			t.Errorf("no ebiten key for %v", k)
		}
	}
}

func TestRunConfigFrom(t *testing.T) {
	cfg := cadence.DefaultConfig()
	cfg.Title = "intro"
	cfg.Debug = true
	rc := RunConfigFrom(cfg)
	if rc.Title != "intro" || rc.Width != cfg.Width || rc.Height != cfg.Height || rc.TPS != cfg.TPS {
		t.Errorf("RunConfigFrom = %+v", rc)
	}
	if !rc.ShowFPS {
		t.Error("debug config should show FPS")
	}
}

func TestTileStart(t *testing.T) {
	tests := []struct {
		off, size, want float64
	}{
		{0, 64, 0},
		{10, 64, 10},
		{64, 64, 0},
		{130, 64, 2},
		{-10, 64, 54},
	}
	for _, tt := range tests {
		if got := tileStart(tt.off, tt.size); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("tileStart(%v, %v) = %v, want %v", tt.off, tt.size, got, tt.want)
		}
	}
}

func TestClampPosition(t *testing.T) {
	length := 10 * time.Second
	tests := []struct {
		name    string
		seconds float64
		loop    bool
		want    time.Duration
	}{
		{"inside", 3, false, 3 * time.Second},
		{"negative", -1, false, 0},
		{"past end", 13, false, length},
		{"past end looping", 13, true, 3 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampPosition(tt.seconds, length, tt.loop); got != tt.want {
				t.Errorf("clampPosition = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"":                "unlabeled",
		"   ":             "unlabeled",
		"after-punch":     "after-punch",
		"t=8.0 logo/glow": "t_8.0_logo_glow",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		100, 50, 0, 200,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	img := unpremultiply(pix, 3, 1)
	want := []byte{
		127, 63, 0, 200,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

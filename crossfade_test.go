package cadence

import "testing"

type fakeStream struct {
	playing bool
	looping bool
	volume  float64
	pos     float64
	stops   int
	calls   []string
}

func (s *fakeStream) Play()                { s.playing = true; s.calls = append(s.calls, "play") }
func (s *fakeStream) Stop()                { s.playing = false; s.stops++; s.calls = append(s.calls, "stop") }
func (s *fakeStream) SetVolume(v float64)  { s.volume = v }
func (s *fakeStream) SetLooping(loop bool) { s.looping = loop }
func (s *fakeStream) Seek(seconds float64) { s.pos = seconds; s.calls = append(s.calls, "seek") }

func TestCrossfadeStart(t *testing.T) {
	m, c := &fakeStream{}, &fakeStream{}
	x := NewCrossfade(m, c)
	x.StartTransition(5, 0.05, 1, 13)

	if !m.playing || !c.playing || !m.looping || !c.looping {
		t.Fatalf("streams not playing and looping: %+v %+v", m, c)
	}
	if m.volume != 0.05 || c.volume != 0 {
		t.Errorf("volumes = (%v, %v), want (0.05, 0)", m.volume, c.volume)
	}
	if m.pos != 13 || c.pos != 13 {
		t.Errorf("positions = (%v, %v), want 13", m.pos, c.pos)
	}
	if !x.Active() || x.Transitions() != 1 {
		t.Errorf("Active=%v Transitions=%d", x.Active(), x.Transitions())
	}
}

func TestCrossfadeEndToEnd(t *testing.T) {
	m, c := &fakeStream{}, &fakeStream{}
	x := NewCrossfade(m, c)
	x.StartTransition(5, 0.05, 1, 13)

	for i := 0; i < 3; i++ {
		x.Update(1.25)
	}
	if !x.Active() {
		t.Fatal("finished early")
	}
	x.Update(1.25)

	if x.Active() {
		t.Fatal("still active after 5s")
	}
	if m.playing || m.stops != 1 {
		t.Errorf("muffled playing=%v stops=%d, want stopped once", m.playing, m.stops)
	}
	if !c.playing || c.volume != 1 {
		t.Errorf("clear playing=%v volume=%v, want playing at 1", c.playing, c.volume)
	}
	if mv, cv := x.Volumes(); mv != 0 || cv != 1 {
		t.Errorf("Volumes = (%v, %v), want (0, 1)", mv, cv)
	}

	x.Update(1)
	if c.volume != 1 || m.stops != 1 {
		t.Error("Update after completion touched the streams")
	}
}

func TestCrossfadeMidpoint(t *testing.T) {
	m, c := &fakeStream{}, &fakeStream{}
	x := NewCrossfade(m, c)
	x.SetCurve(Linear)
	x.StartTransition(2, 0, 1, 0)
	x.Update(1)
	// overall 0.5, split evenly.
	if !approxEqual(m.volume, 0.25, 1e-12) || !approxEqual(c.volume, 0.25, 1e-12) {
		t.Errorf("volumes = (%v, %v), want (0.25, 0.25)", m.volume, c.volume)
	}
}

func TestCrossfadeDefaultCurveInQuad(t *testing.T) {
	m, c := &fakeStream{}, &fakeStream{}
	x := NewCrossfade(m, c)
	if x.Curve() != InQuad {
		t.Fatalf("default curve = %v, want InQuad", x.Curve())
	}
	x.StartTransition(2, 1, 1, 0)
	x.Update(1)
	// eased 0.25 with constant overall volume.
	if !approxEqual(c.volume, 0.25, 1e-12) || !approxEqual(m.volume, 0.75, 1e-12) {
		t.Errorf("volumes = (%v, %v), want (0.75, 0.25)", m.volume, c.volume)
	}
}

func TestCrossfadeVolumesSumToOverall(t *testing.T) {
	m, c := &fakeStream{}, &fakeStream{}
	x := NewCrossfade(m, c)
	x.SetCurve(OutCubic)
	x.StartTransition(4, 0.2, 0.8, 0)
	for i := 0; i < 7; i++ {
		x.Update(0.5)
		e := Evaluate(OutCubic, float64(i+1)*0.5/4)
		overall := 0.2 + 0.6*e
		if !approxEqual(m.volume+c.volume, overall, 1e-9) {
			t.Fatalf("step %d: sum %v, want %v", i, m.volume+c.volume, overall)
		}
	}
}

func TestCrossfadeRestart(t *testing.T) {
	m, c := &fakeStream{}, &fakeStream{}
	x := NewCrossfade(m, c)
	x.StartTransition(1, 1, 1, 0)
	x.Update(1)
	x.StartTransition(1, 0.5, 1, 3)
	if !m.playing || m.volume != 0.5 || c.volume != 0 || c.pos != 3 {
		t.Errorf("restart state: muffled %+v clear %+v", m, c)
	}
	if x.Transitions() != 2 {
		t.Errorf("Transitions = %d, want 2", x.Transitions())
	}
}

func TestNewCrossfadeNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil stream")
		}
	}()
	NewCrossfade(&fakeStream{}, nil)
}

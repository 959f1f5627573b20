package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func decodeF32(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

func TestFireSoundLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	buf := RenderF32(FireSound(rate))
	frames := rate.N(100 * time.Millisecond)
	if len(buf) != frames*8 {
		t.Fatalf("bytes: got=%d want=%d", len(buf), frames*8)
	}
	for i, v := range decodeF32(buf) {
		if v < -0.081 || v > 0.081 {
			t.Fatalf("sample %d exceeds fire gain: %f", i, v)
		}
	}
}

func TestImpactSoundDecays(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	samples := decodeF32(RenderF32(ImpactSound(rate)))
	quarter := len(samples) / 4
	peak := func(s []float32) float64 {
		m := 0.0
		for _, v := range s {
			m = math.Max(m, math.Abs(float64(v)))
		}
		return m
	}
	head, tail := peak(samples[:quarter]), peak(samples[len(samples)-quarter:])
	if tail >= head {
		t.Fatalf("envelope must decay: head=%f tail=%f", head, tail)
	}
}

func TestSweepStopsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewSweep(WaveSine, 100, 100, 1, 1, 10*time.Millisecond, rate)
	buf := make([][2]float64, 64)
	n, ok := s.Stream(buf)
	if !ok || n != 10 {
		t.Fatalf("first read: n=%d ok=%v want n=10 ok=true", n, ok)
	}
	n, ok = s.Stream(buf)
	if ok || n != 0 {
		t.Fatalf("drained read: n=%d ok=%v", n, ok)
	}
}

func TestWithVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	for i, v := range decodeF32(RenderF32(withVolume(FireSound(rate), 0))) {
		if v != 0 {
			t.Fatalf("sample %d not silent: %f", i, v)
		}
	}
}

func TestExpRamp(t *testing.T) {
	if got := expRamp(1200, 400, 0); got != 1200 {
		t.Fatalf("start: %f", got)
	}
	if got := expRamp(1200, 400, 1); math.Abs(got-400) > 1e-9 {
		t.Fatalf("end: %f", got)
	}
}

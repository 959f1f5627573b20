package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSaw WaveType = iota
	WaveTriangle
	WaveSine
)

// sweep — осциллятор с экспоненциальным скольжением частоты и затуханием громкости.
type sweep struct {
	wave               WaveType
	freqStart, freqEnd float64
	gainStart, gainEnd float64
	total, position    int
	phase              float64
	rate               beep.SampleRate
}

// NewSweep создаёт стример длительностью d, частота идёт от f0 к f1,
// громкость от g0 к g1 (обе кривые экспоненциальные).
func NewSweep(wave WaveType, f0, f1, g0, g1 float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		wave:      wave,
		freqStart: f0,
		freqEnd:   f1,
		gainStart: g0,
		gainEnd:   g1,
		total:     rate.N(d),
		rate:      rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := expRamp(s.freqStart, s.freqEnd, t)
		gain := expRamp(s.gainStart, s.gainEnd, t)

		var val float64
		switch s.wave {
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		case WaveTriangle:
			val = 4.0*math.Abs(s.phase-0.5) - 1.0
		default:
			val = math.Sin(2 * math.Pi * s.phase)
		}
		val *= gain
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func expRamp(from, to, t float64) float64 {
	if from <= 0 || to <= 0 {
		return from + (to-from)*t
	}
	return from * math.Pow(to/from, t)
}

// FireSound "пиу": пила 1200→400 Гц за 100 мс.
func FireSound(rate beep.SampleRate) beep.Streamer {
	return NewSweep(WaveSaw, 1200, 400, 0.08, 0.001, 100*time.Millisecond, rate)
}

// ImpactSound глухой взрыв: треугольник 100 Гц с падением почти до нуля за 300 мс.
func ImpactSound(rate beep.SampleRate) beep.Streamer {
	return NewSweep(WaveTriangle, 100, 0.01, 0.2, 0.001, 300*time.Millisecond, rate)
}

// RenderF32 вычитывает стример целиком в стерео float32 little-endian.
func RenderF32(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(frame[0])))
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(frame[1])))
		}
		if !ok || n < len(buf) {
			return out
		}
	}
}

package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

type fakeSpeaker struct {
	pcm   []byte
	err   error
	text  string
	voice string
}

func (f *fakeSpeaker) Speak(_ context.Context, text, voice string) ([]byte, error) {
	f.text, f.voice = text, voice
	return f.pcm, f.err
}

// constantPCM — n сэмплов PCM16 с одинаковым значением.
func constantPCM(n int, v int16) []byte {
	out := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		out = binary.LittleEndian.AppendUint16(out, uint16(v))
	}
	return out
}

func TestVoiceClipIsResampledAndSpedUp(t *testing.T) {
	// 100 мс при 24 кГц
	clip := decodeF32(VoiceClip(constantPCM(2400, 16384), 1))

	frames := len(clip) / 2
	want := 0.1 / VoiceSpeed * SampleRate
	if math.Abs(float64(frames)-want) > want*0.05 {
		t.Fatalf("frames: got=%d want≈%.0f", frames, want)
	}
	mid := clip[frames] // середина клипа
	if math.Abs(float64(mid)-0.5) > 0.05 {
		t.Fatalf("amplitude: got=%f want≈0.5", mid)
	}
}

func TestPlayFireUsesVoiceOnceLoaded(t *testing.T) {
	c := &Cues{fire: []byte{1, 2, 3, 4}, volume: 1}
	if got := c.fireClip(); len(got) != 4 {
		t.Fatalf("before load: expected synth clip")
	}

	sp := &fakeSpeaker{pcm: constantPCM(2400, 1000)}
	if err := c.LoadVoice(context.Background(), sp); err != nil {
		t.Fatalf("load voice: %v", err)
	}
	if sp.voice != PewVoice || sp.text != PewPrompt {
		t.Fatalf("speaker request: voice=%q text=%q", sp.voice, sp.text)
	}
	if got := c.fireClip(); len(got) <= 4 {
		t.Fatalf("after load: expected voice clip, got %d bytes", len(got))
	}
}

func TestPlayFireFallsBackToSynthOnVoiceError(t *testing.T) {
	c := &Cues{fire: []byte{1, 2, 3, 4}, volume: 1}

	if err := c.LoadVoice(context.Background(), &fakeSpeaker{err: errors.New("quota")}); err == nil {
		t.Fatalf("expected error from speaker")
	}
	if err := c.LoadVoice(context.Background(), &fakeSpeaker{}); err == nil {
		t.Fatalf("expected error for empty clip")
	}
	if got := c.fireClip(); len(got) != 4 {
		t.Fatalf("fallback: expected synth clip, got %d bytes", len(got))
	}
}

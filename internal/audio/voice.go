package audio

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/gopxl/beep"
)

const (
	// Модель речи отдаёт PCM16 little-endian, моно, 24 кГц.
	VoiceSampleRate = 24000
	// VoiceSpeed ускоряет голос, чтобы "пиу" звучал бодрее.
	VoiceSpeed = 1.4

	PewVoice  = "Puck"
	PewPrompt = "In an energetic and youthful child voice, say: pew! pew! pew!"

	resampleQuality = 4
)

// Speaker озвучивает текст выбранным голосом.
type Speaker interface {
	Speak(ctx context.Context, text, voice string) ([]byte, error)
}

// pcm16 читает моно PCM16 как стерео-стример beep.
type pcm16 struct {
	data []byte
	pos  int
}

func (p *pcm16) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && p.pos+1 < len(p.data) {
		v := float64(int16(binary.LittleEndian.Uint16(p.data[p.pos:]))) / 32768
		samples[n] = [2]float64{v, v}
		p.pos += 2
		n++
	}
	return n, n > 0
}

func (p *pcm16) Err() error { return nil }

// VoiceClip переводит ответ модели речи в формат плеера: float32 стерео
// SampleRate, ускоренный в VoiceSpeed раз.
func VoiceClip(pcm []byte, volume float64) []byte {
	ratio := VoiceSampleRate * VoiceSpeed / SampleRate
	s := beep.ResampleRatio(resampleQuality, ratio, &pcm16{data: pcm})
	return RenderF32(withVolume(s, volume))
}

// LoadVoice запрашивает голосовой "пиу" и, если он получен, PlayFire
// начинает играть его вместо синтезированного.
func (c *Cues) LoadVoice(ctx context.Context, sp Speaker) error {
	pcm, err := sp.Speak(ctx, PewPrompt, PewVoice)
	if err != nil {
		return fmt.Errorf("failed to load voice: %w", err)
	}
	if len(pcm) < 2 {
		return fmt.Errorf("failed to load voice: empty clip")
	}
	clip := VoiceClip(pcm, c.volume)
	c.voice.Store(&clip)
	return nil
}

// fireClip возвращает голосовой клип, а пока его нет, синтезированный.
func (c *Cues) fireClip() []byte {
	if v := c.voice.Load(); v != nil {
		return *v
	}
	return c.fire
}

// Package audio синтезирует короткие звуковые сигналы и проигрывает их через ebiten/audio.
package audio

import (
	"log"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// maxVoices ограничивает число одновременно звучащих сигналов.
const maxVoices = 8

// Cues проигрывает заранее отрендеренные сигналы. Ошибки и паники
// воспроизведения не выходят наружу.
type Cues struct {
	ctx    *ebitenaudio.Context
	fire   []byte
	impact []byte
	volume float64
	// голосовой клип, догружается в фоне
	voice atomic.Pointer[[]byte]

	mu      sync.Mutex
	players []*ebitenaudio.Player
}

// NewCues рендерит сигналы с учётом громкости и создаёт аудиоконтекст ebiten (один на процесс).
func NewCues(volume float64) *Cues {
	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(SampleRate)
	}
	rate := beep.SampleRate(SampleRate)
	return &Cues{
		ctx:    ctx,
		fire:   RenderF32(withVolume(FireSound(rate), volume)),
		impact: RenderF32(withVolume(ImpactSound(rate), volume)),
		volume: volume,
	}
}

func (c *Cues) PlayFire() {
	c.play(c.fireClip())
}

func (c *Cues) PlayImpact() {
	c.play(c.impact)
}

func (c *Cues) play(buf []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio: playback panicked: %v", r)
		}
	}()
	if c.volume <= 0 || len(buf) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.reap()
	if len(c.players) >= maxVoices {
		return
	}
	p := c.ctx.NewPlayerF32FromBytes(buf)
	p.Play()
	c.players = append(c.players, p)
}

// reap закрывает доигравшие плееры.
func (c *Cues) reap() {
	alive := c.players[:0]
	for _, p := range c.players {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("audio: close player: %v", err)
		}
	}
	c.players = alive
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Nop: беззвучная реализация для тестов и режима -mute.
type Nop struct{}

func (Nop) PlayFire()   {}
func (Nop) PlayImpact() {}

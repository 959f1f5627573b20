// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"station-cat/internal/app"
	"station-cat/internal/assets"
	"station-cat/internal/audio"
	"station-cat/internal/briefing"
	"station-cat/internal/config"
	"station-cat/internal/interfaces"
	"station-cat/internal/leaderboard"
	"station-cat/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "station-cat.yaml", "path to YAML settings")
	mute := flag.Bool("mute", false, "disable sound")
	seed := flag.Int64("seed", 0, "PRNG seed (0 = time based)")
	skipMenu := flag.Bool("skip-menu", false, "start the mission immediately")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *mute {
		settings.Audio.Mute = true
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *skipMenu {
		settings.StartInMenu = false
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	var gen briefing.Generator
	var gemini *briefing.GeminiGenerator
	if key := settings.APIKey(); key != "" {
		gemini, err = briefing.NewGeminiGenerator(context.Background(), key, settings.Briefing.Model)
		if err != nil {
			log.Printf("WARNING: briefing offline: %v", err)
		} else {
			gemini.SpeechModel = settings.Briefing.SpeechModel
			gen = gemini
		}
	} else {
		log.Printf("%s is not set, briefing runs offline", settings.Briefing.APIKeyEnv)
	}
	briefings := briefing.NewService(gen, settings.Briefing.Timeout)

	var cues interfaces.AudioCue = audio.Nop{}
	if !settings.Audio.Mute {
		synth := audio.NewCues(settings.Audio.Volume)
		cues = synth
		if gen != nil {
			// голосовой "пиу" догружается в фоне, до этого звучит синтез
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), settings.Briefing.Timeout)
				defer cancel()
				if err := synth.LoadVoice(ctx, gemini); err != nil {
					log.Printf("WARNING: %v, using synth pew", err)
				}
			}()
		}
	}

	fonts := assets.NewFontManager()
	game := app.NewGame(app.Options{
		Width:      float64(settings.Window.Width),
		Height:     float64(settings.Window.Height),
		Seed:       settings.Seed,
		PlayerName: settings.PlayerName,
		Mission:    briefings,
		Commentary: briefings,
		Scores:     leaderboard.NewStore(settings.ScoresPath, settings.Seed),
		Cues:       cues,
		LabelFace:  fonts.Face(assets.SizeBody, true),
	})
	defer game.Close()
	game.LoadBriefing()

	deps := &state.Deps{Game: game, Fonts: fonts}
	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, deps))
	} else {
		game.Start()
		sm.SetState(state.NewGameState(sm, deps))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.Window.Width,
		height:         settings.Window.Height,
	}
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

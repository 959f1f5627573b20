// internal/app/game.go
package app

import (
	"context"
	"log"
	"sync"

	"station-cat/internal/component"
	"station-cat/internal/config"
	"station-cat/internal/entity"
	"station-cat/internal/event"
	"station-cat/internal/interfaces"
	"station-cat/internal/leaderboard"
	"station-cat/internal/system"
	"station-cat/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const (
	MissionLoadingText = "Loading briefing..."
	inboxSize          = 8
)

// Options: зависимости и параметры игровой сессии.
type Options struct {
	Width, Height float64
	Seed          int64
	PlayerName    string
	Mission       interfaces.MissionFetcher
	Commentary    interfaces.CommentaryFetcher
	Scores        interfaces.ScoreStore
	Cues          interfaces.AudioCue
	LabelFace     font.Face
}

type resultKind int

const (
	missionResult resultKind = iota
	commentaryResult
)

// fetchResult: ответ фонового запроса к внешнему сервису.
type fetchResult struct {
	kind       resultKind
	generation uint64
	text       string
}

// Game holds the main game state and logic.
type Game struct {
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Scheduler          *Scheduler
	CombatSystem       *system.CombatSystem
	BossSystem         *system.BossSystem
	ProjectileSystem   *system.ProjectileSystem
	LaserSystem        *system.LaserSystem
	SpawnSystem        *system.SpawnSystem
	EnemySystem        *system.EnemySystem
	VisualEffectSystem *system.VisualEffectSystem
	FireSystem         *system.FireSystem
	AudioSystem        *system.AudioSystem
	RenderSystem       *system.RenderSystem

	PlayerName  string
	MissionText string
	Commentary  string
	Leaderboard []leaderboard.Entry

	// Сводка текущей сессии для экрана поражения
	BossEncounters int
	LowestHealth   int

	mission    interfaces.MissionFetcher
	commentary interfaces.CommentaryFetcher
	scores     interfaces.ScoreStore

	// Game state
	gameTime  float64
	fireQueue int
	inbox     chan fetchResult
	ctx       context.Context
	cancel    context.CancelFunc
	pending   sync.WaitGroup
}

// NewGame initializes a new game instance. Сессия остаётся в NotStarted до Start.
func NewGame(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.ScreenWidth, config.ScreenHeight
	}
	if opts.Cues == nil {
		opts.Cues = nopCues{}
	}

	rng := utils.NewPRNGService(opts.Seed)
	world := entity.NewWorld(opts.Width, opts.Height, rng)
	eventDispatcher := event.NewDispatcher()
	ctx, cancel := context.WithCancel(context.Background())

	g := &Game{
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Scheduler:       NewScheduler(),
		PlayerName:      opts.PlayerName,
		MissionText:     MissionLoadingText,
		mission:         opts.Mission,
		commentary:      opts.Commentary,
		scores:          opts.Scores,
		inbox:           make(chan fetchResult, inboxSize),
		ctx:             ctx,
		cancel:          cancel,
	}
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher)
	g.BossSystem = system.NewBossSystem(world, eventDispatcher, g.CombatSystem)
	g.ProjectileSystem = system.NewProjectileSystem(world, g.CombatSystem)
	g.LaserSystem = system.NewLaserSystem(world)
	g.SpawnSystem = system.NewSpawnSystem(world, rng)
	g.EnemySystem = system.NewEnemySystem(world, eventDispatcher, g.CombatSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, rng, g)
	g.FireSystem = system.NewFireSystem(world, eventDispatcher, rng, g)
	g.AudioSystem = system.NewAudioSystem(opts.Cues, eventDispatcher)
	// у рендера свой генератор: тряска не должна сдвигать последовательность симуляции
	g.RenderSystem = system.NewRenderSystem(world, utils.NewPRNGService(int64(rng.Intn(1<<30))+1), opts.LabelFace)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameOver, listener)
	eventDispatcher.Subscribe(event.BossSpawned, event.ListenerFunc(func(event.Event) {
		g.BossEncounters++
		log.Printf("Session %d: boss encounter %d at score %d", g.World.Session.Generation, g.BossEncounters, g.World.Session.Score)
	}))
	eventDispatcher.Subscribe(event.PlayerDamaged, event.ListenerFunc(func(e event.Event) {
		if health, ok := e.Data.(int); ok {
			g.LowestHealth = min(g.LowestHealth, health)
		}
	}))

	return g
}

// LoadBriefing загружает таблицу рекордов и запускает фоновый запрос брифинга.
func (g *Game) LoadBriefing() {
	if g.scores != nil {
		g.Leaderboard = g.scores.LoadScores()
	}
	if g.mission == nil {
		return
	}
	g.fetch(missionResult, 0, func(ctx context.Context) string {
		return g.mission.FetchMission(ctx)
	})
}

// Start сбрасывает мир и начинает новую сессию. Отложенные вызовы
// прошлой сессии становятся устаревшими и будут отброшены.
func (g *Game) Start() {
	g.World.Reset()
	g.VisualEffectSystem.Reset(g.gameTime)
	g.Commentary = ""
	g.fireQueue = 0
	g.BossEncounters = 0
	g.LowestHealth = g.World.Session.Health
	log.Printf("Session %d started", g.World.Session.Generation)
}

// Update продвигает игровые часы на deltaTime секунд и выполняет один тик.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += utils.Clamp(deltaTime, 0, config.MaxDeltaTime)

	g.drainInbox()
	for ; g.fireQueue > 0; g.fireQueue-- {
		g.FireSystem.Fire()
	}
	g.Scheduler.Run(g.gameTime, g.taskValid)

	if !g.World.Session.Playing() {
		return
	}
	g.step()
}

// step выполняет этапы симуляции по порядку. После перехода в GameOver
// оставшиеся этапы тика не выполняются.
func (g *Game) step() {
	now := g.gameTime
	stages := [...]func(){
		g.VisualEffectSystem.Decay,
		func() {
			g.BossSystem.CheckSpawn(now)
			g.BossSystem.Update(now)
		},
		g.ProjectileSystem.Update,
		func() { g.VisualEffectSystem.UpdateTimers(now) },
		g.LaserSystem.Update,
		g.SpawnSystem.Update,
		g.EnemySystem.Update,
	}
	for _, stage := range stages {
		stage()
		if !g.World.Session.Playing() {
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// Defer откладывает fn на delay секунд игрового времени в рамках текущей сессии.
func (g *Game) Defer(delay float64, fn func(now float64)) {
	g.Scheduler.After(g.gameTime+delay, g.World.Session.Generation, fn)
}

func (g *Game) taskValid(generation uint64) bool {
	s := g.World.Session
	return generation == s.Generation && s.Playing()
}

// SetAim задаёт точку прицела в координатах экрана.
func (g *Game) SetAim(x, y float64) {
	g.World.Aim = component.Point{X: x, Y: y}
}

// QueueFire ставит команду выстрела в очередь; она будет обработана в начале тика.
func (g *Game) QueueFire() {
	g.fireQueue++
}

func (g *Game) Phase() component.Phase {
	return g.World.Session.Phase
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Close отменяет фоновые запросы.
func (g *Game) Close() {
	g.cancel()
}

func (g *Game) fetch(kind resultKind, generation uint64, call func(ctx context.Context) string) {
	g.pending.Add(1)
	go func() {
		defer g.pending.Done()
		text := call(g.ctx)
		select {
		case g.inbox <- fetchResult{kind: kind, generation: generation, text: text}:
		case <-g.ctx.Done():
		}
	}()
}

// drainInbox применяет готовые ответы. Комментарий к чужой сессии отбрасывается.
func (g *Game) drainInbox() {
	for {
		select {
		case r := <-g.inbox:
			switch r.kind {
			case missionResult:
				g.MissionText = r.text
			case commentaryResult:
				if r.generation == g.World.Session.Generation {
					g.Commentary = r.text
				}
			}
		default:
			return
		}
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type != event.GameOver {
		return
	}
	g := l.game
	score, _ := e.Data.(int)
	g.World.Cosmetics.Charging = false
	g.World.Cosmetics.Firing = false
	log.Printf("Session %d over, score %d", g.World.Session.Generation, score)

	if g.scores != nil {
		g.Leaderboard = g.scores.SaveScore(g.PlayerName, score)
	}
	if g.commentary != nil {
		g.fetch(commentaryResult, g.World.Session.Generation, func(ctx context.Context) string {
			return g.commentary.FetchCommentary(ctx, score)
		})
	}
}

type nopCues struct{}

func (nopCues) PlayFire()   {}
func (nopCues) PlayImpact() {}

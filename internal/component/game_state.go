package component

import "station-cat/internal/config"

// Phase — фаза игровой сессии
type Phase int

const (
	NotStarted Phase = iota
	Playing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Session — игровое состояние, влияющее на исход партии.
type Session struct {
	Score         int
	Health        int
	Phase         Phase
	BossPhase     bool // true, пока на экране активный босс
	NextBossScore int
	Generation    uint64 // растёт при каждом старте, отсекает устаревшие отложенные задачи
}

// NewSession создаёт сессию в состоянии NotStarted.
func NewSession() *Session {
	return &Session{
		Health:        config.MaxHealth,
		NextBossScore: config.BossFirstThreshold,
	}
}

// Start сбрасывает счёт и здоровье и переводит сессию в Playing.
func (s *Session) Start() {
	*s = Session{
		Health:        config.MaxHealth,
		Phase:         Playing,
		NextBossScore: config.BossFirstThreshold,
		Generation:    s.Generation + 1,
	}
}

func (s *Session) Playing() bool {
	return s.Phase == Playing
}

// internal/interfaces/collaborators.go
package interfaces

import (
	"context"

	"station-cat/internal/leaderboard"
)

// MissionFetcher возвращает текст брифинга. При ошибке отдаёт запасную строку, никогда не ошибку.
type MissionFetcher interface {
	FetchMission(ctx context.Context) string
}

// CommentaryFetcher возвращает комментарий к итоговому счёту.
type CommentaryFetcher interface {
	FetchCommentary(ctx context.Context, score int) string
}

// ScoreStore хранит таблицу рекордов (не больше 10 записей, по убыванию счёта).
type ScoreStore interface {
	LoadScores() []leaderboard.Entry
	SaveScore(name string, score int) []leaderboard.Entry
}

// AudioCue — звуковые сигналы "выстрелил и забыл".
type AudioCue interface {
	PlayFire()
	PlayImpact()
}

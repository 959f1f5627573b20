package event

const (
	BurstStarted   EventType = "BurstStarted"   // заряд завершён, начинается серия залпов
	EnemyDestroyed EventType = "EnemyDestroyed" // враг сбит лазером
	PlayerDamaged  EventType = "PlayerDamaged"  // кот получил урон, но жив
	BossSpawned    EventType = "BossSpawned"
	BossDefeated   EventType = "BossDefeated"
	GameOver       EventType = "GameOver" // Data: итоговый счёт (int)
)

// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06
	TPS          = 60
	StarCount    = 150

	// Позиция кота (турели) фиксирована
	CatX = 120.0
	CatY = 120.0

	MaxHealth = 100

	LaserSpeed        = 25.0 // пикселей за тик
	LaserMuzzleOffset = 15.0 // смещение "глаз" от центра кота
	LaserMuzzleLift   = 10.0
	LaserJitter       = 0.05 // полный разброс угла, радианы
	LaserTrailLength  = 30.0
	LaserWidth        = 3.0

	ChargeDelay    = 0.150 // секунды
	VolleyInterval = 0.120
	VolleyCount    = 3

	EnemySpawnChance   = 0.03
	EnemySpawnMargin   = 50.0
	EnemyMinRadius     = 15.0
	EnemyRadiusSpread  = 25.0
	EnemyMinSpeed      = 0.8
	EnemySpeedSpread   = 1.5
	EnemyContactReach  = 50.0
	EnemyContactDamage = 5
	EnemyKillScore     = 10
	EnemyGlyphScale    = 1.5

	BossFirstThreshold = 1000
	BossThresholdStep  = 2000
	BossSize           = 180.0
	BossMaxHealth      = 1500
	BossSpawnOffset    = 200.0
	BossStandOff       = 250.0
	BossEntrySpeed     = 2.0
	BossHoverSpeed     = 2.0
	BossHoverMargin    = 150.0
	BossFireCooldown   = 1.5 // секунды
	BossLaserDamage    = 15
	BossKillScore      = 2000
	BossBarWidth       = 200.0
	BossBarHeight      = 10.0
	BossBarOffsetY     = 120.0
	BossLabel          = "VOID HOUND MK-I"

	BossProjectileSpeed      = 7.0
	BossProjectileRadius     = 20.0
	BossProjectileMuzzle     = 50.0
	BossProjectileReach      = 40.0
	BossProjectileDamage     = 15
	BossProjectileCullMargin = 100.0

	ShakeDecay   = 0.9
	ShakeFloor   = 0.01
	ShakeVisible = 0.5
	FlashDecay   = 0.04
	FlashVisible = 0.01
	DamageShake  = 15.0
	DamageFlash  = 0.6

	BlinkMinDelay  = 3.0
	BlinkSpread    = 4.0
	BlinkHold      = 0.150
	TwitchMinDelay = 2.0
	TwitchSpread   = 3.0
	TwitchHold     = 0.200
	TwitchAngle    = 0.15

	DefaultPlayerName  = "PILOT-CAT"
	AnonymousName      = "ANON-CAT"
	MaxPlayerNameRunes = 15
	LeaderboardSize    = 10
	GameOverTopRows    = 5
)

var (
	BackgroundColor     = color.RGBA{5, 5, 8, 255}
	BossBackgroundColor = color.RGBA{10, 0, 0, 255}
	StarColor           = color.RGBA{255, 255, 255, 255}
	LaserColor          = color.RGBA{255, 0, 0, 255}
	LaserGlowColor      = color.RGBA{255, 0, 0, 70}
	FlashColor          = color.RGBA{255, 0, 0, 255}

	CatBodyColor    = color.RGBA{74, 74, 74, 255}
	CatHeadColor    = color.RGBA{102, 102, 102, 255}
	CatEarColor     = color.RGBA{85, 85, 85, 255}
	CatEarInner     = color.RGBA{51, 51, 51, 255}
	CatEyeColor     = color.RGBA{34, 34, 34, 255}
	CatPupilColor   = color.RGBA{255, 0, 0, 255}
	CatHotEyeColor  = color.RGBA{255, 51, 51, 255}
	CatMuzzleColor  = color.RGBA{85, 85, 85, 255}
	CatWhiskerColor = color.RGBA{153, 153, 153, 255}
	CatShadowColor  = color.RGBA{0, 0, 0, 90}
	ChargeGlowColor = color.RGBA{255, 255, 0, 90}
	FireGlowColor   = color.RGBA{255, 0, 0, 90}

	BossGlowColor     = color.RGBA{255, 0, 0, 60}
	BossBarBackground = color.RGBA{34, 34, 34, 255}
	BossBarFill       = color.RGBA{255, 0, 0, 255}
	BossBarStroke     = color.RGBA{255, 255, 255, 255}
	BoneColor         = color.RGBA{240, 230, 210, 255}
	BoneGlowColor     = color.RGBA{255, 0, 0, 70}

	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextMutedColor  = color.RGBA{110, 110, 120, 255}
	AccentRedColor  = color.RGBA{220, 38, 38, 255}
	AccentGoldColor = color.RGBA{250, 204, 21, 255}
	PanelColor      = color.RGBA{0, 0, 0, 160}
	PanelDarkColor  = color.RGBA{3, 7, 18, 240}
	PanelBorder     = color.RGBA{31, 41, 55, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 230}
	DefeatOverlay   = color.RGBA{69, 10, 10, 110}
	StrokeWidth     = 2.0
)

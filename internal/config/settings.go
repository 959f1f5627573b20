package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings — настройки запуска, которые можно переопределить YAML-файлом.
type Settings struct {
	Window      WindowSettings   `yaml:"window"`
	Seed        int64            `yaml:"seed"`
	ScoresPath  string           `yaml:"scores_path"`
	PlayerName  string           `yaml:"player_name"`
	StartInMenu bool             `yaml:"start_in_menu"`
	Briefing    BriefingSettings `yaml:"briefing"`
	Audio       AudioSettings    `yaml:"audio"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type BriefingSettings struct {
	Model       string        `yaml:"model"`
	SpeechModel string        `yaml:"speech_model"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	Timeout     time.Duration `yaml:"timeout"`
}

type AudioSettings struct {
	Mute   bool    `yaml:"mute"`
	Volume float64 `yaml:"volume"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "STATION-CAT",
		},
		ScoresPath:  "station_cat_scores.json",
		PlayerName:  DefaultPlayerName,
		StartInMenu: true,
		Briefing: BriefingSettings{
			Model:       "gemini-2.5-flash",
			SpeechModel: "gemini-2.5-flash-preview-tts",
			APIKeyEnv:   "GEMINI_API_KEY",
			Timeout:     8 * time.Second,
		},
		Audio: AudioSettings{Volume: 1.0},
	}
}

// LoadSettings читает YAML поверх значений по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	def := DefaultSettings()
	if s.Window.Width <= 0 {
		s.Window.Width = def.Window.Width
	}
	if s.Window.Height <= 0 {
		s.Window.Height = def.Window.Height
	}
	if s.Briefing.SpeechModel == "" {
		s.Briefing.SpeechModel = def.Briefing.SpeechModel
	}
	if s.Briefing.Timeout <= 0 {
		s.Briefing.Timeout = def.Briefing.Timeout
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	if s.Audio.Volume > 1 {
		s.Audio.Volume = 1
	}
	if s.ScoresPath == "" {
		s.ScoresPath = def.ScoresPath
	}
}

// APIKey читает ключ Gemini из переменной окружения, указанной в настройках.
func (s Settings) APIKey() string {
	if s.Briefing.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.Briefing.APIKeyEnv)
}

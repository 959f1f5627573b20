// Package leaderboard хранит локальную таблицу рекордов в JSON-файле.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"station-cat/internal/config"
	"station-cat/internal/utils"
)

const dateLayout = "2006-01-02"

var mockNames = []string{
	"Nebula-Nip", "Star-Whisker", "Cosmic-Paws", "Lunar-Tail", "Galaxy-Gaze",
	"Astro-Mew", "Void-Viper", "Supernova-Slinker", "Quasar-Claw", "Meteor-Meow",
}

// Entry — одна строка таблицы рекордов.
type Entry struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Date     string `json:"date"`
	IsPlayer bool   `json:"isPlayer,omitempty"`
}

// Store читает и пишет таблицу рекордов. Ошибки ввода-вывода логируются и
// никогда не возвращаются в игру.
type Store struct {
	path string
	rng  *utils.PRNGService
	now  func() time.Time
}

// NewStore создаёт хранилище по пути path. Сид управляет очками заглушек.
func NewStore(path string, seed int64) *Store {
	return &Store{
		path: path,
		rng:  utils.NewPRNGService(seed),
		now:  time.Now,
	}
}

// LoadScores возвращает таблицу по убыванию счёта. Пустой, отсутствующий
// или повреждённый файл заменяется десятью записями-заглушками.
func (s *Store) LoadScores() []Entry {
	entries, err := s.read()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("leaderboard: %v, reseeding", err)
		}
		entries = nil
	}
	if len(entries) == 0 {
		entries = s.seed()
		s.persist(entries)
		return entries
	}
	return rank(entries)
}

// SaveScore добавляет результат игрока, сортирует, обрезает до 10 и сохраняет.
func (s *Store) SaveScore(name string, score int) []Entry {
	if name == "" {
		name = config.AnonymousName
	}
	entries := append(s.LoadScores(), Entry{
		Name:     name,
		Score:    score,
		Date:     s.now().Format(dateLayout),
		IsPlayer: true,
	})
	entries = rank(entries)
	s.persist(entries)
	return entries
}

func (s *Store) read() ([]Entry, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	return entries, nil
}

func (s *Store) seed() []Entry {
	date := s.now().Format(dateLayout)
	entries := make([]Entry, 0, len(mockNames))
	for i, name := range mockNames {
		entries = append(entries, Entry{
			Name:  name,
			Score: (len(mockNames)-i)*500 + s.rng.Intn(200),
			Date:  date,
		})
	}
	return rank(entries)
}

func (s *Store) persist(entries []Entry) {
	if err := s.write(entries); err != nil {
		log.Printf("leaderboard: %v", err)
	}
}

func (s *Store) write(entries []Entry) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create scores dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("failed to write scores: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace scores file: %w", err)
	}
	return nil
}

// rank сортирует по убыванию счёта (стабильно) и оставляет первые 10.
func rank(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > config.LeaderboardSize {
		entries = entries[:config.LeaderboardSize]
	}
	return entries
}

// Package briefing получает короткие тексты (брифинг, комментарий к счёту)
// от генеративной модели. Любая ошибка заменяется запасной строкой.
package briefing

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	MissionFallback      = "Protect the galaxy, Laser Cat! Beware of the golden retrievers!"
	MissionErrorFallback = "The yarn-ocalypse is upon us. Fire the lasers!"

	CommentaryFallback      = "Not bad for a hairball."
	CommentaryErrorFallback = "The laser array is cooling down."

	missionPrompt = "Generate a short, funny 1-sentence mission briefing for a 'Laser Cat' defending space from dogs and yarn balls."
	missionSystem = "You are a galactic cat commander. Keep it punchy and feline-themed."

	commentaryPrompt = "The player just scored %d points in Laser Cat. Generate a very short, funny \"paws-itive\" or \"cat-astrophic\" comment based on this score."
	commentarySystem = "You are a cynical but impressed feline commander."
)

// Generator — минимальный контракт текстовой модели.
type Generator interface {
	Generate(ctx context.Context, prompt, system string, temperature float32) (string, error)
}

// Service реализует MissionFetcher и CommentaryFetcher.
type Service struct {
	gen     Generator
	timeout time.Duration
}

// NewService создаёт сервис. gen может быть nil: тогда всегда отдаются запасные строки.
func NewService(gen Generator, timeout time.Duration) *Service {
	return &Service{gen: gen, timeout: timeout}
}

func (s *Service) FetchMission(ctx context.Context) string {
	text, err := s.generate(ctx, missionPrompt, missionSystem, 0.8)
	if err != nil {
		log.Printf("briefing: mission: %v", err)
		return MissionErrorFallback
	}
	if text == "" {
		return MissionFallback
	}
	return text
}

func (s *Service) FetchCommentary(ctx context.Context, score int) string {
	text, err := s.generate(ctx, fmt.Sprintf(commentaryPrompt, score), commentarySystem, 0.9)
	if err != nil {
		log.Printf("briefing: commentary: %v", err)
		return CommentaryErrorFallback
	}
	if text == "" {
		return CommentaryFallback
	}
	return text
}

func (s *Service) generate(ctx context.Context, prompt, system string, temperature float32) (string, error) {
	if s.gen == nil {
		return "", fmt.Errorf("no text generator configured")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	text, err := s.gen.Generate(ctx, prompt, system, temperature)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// DefaultSpeechModel — модель синтеза речи Gemini.
const DefaultSpeechModel = "gemini-2.5-flash-preview-tts"

// GeminiGenerator ходит в Gemini через официальный SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	// SpeechModel используется в Speak
	SpeechModel string
}

// NewGeminiGenerator создаёт клиента Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model, SpeechModel: DefaultSpeechModel}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt, system string, temperature float32) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// Speak озвучивает text голосом voice. Возвращает сырой PCM16 mono 24 кГц,
// как его отдаёт модель.
func (g *GeminiGenerator) Speak(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.SpeechModel, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate speech: %w", err)
	}
	return speechData(resp)
}

// speechData достаёт аудио из первой части первого кандидата.
func speechData(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("speech response has no candidates")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil, fmt.Errorf("speech response has no parts")
	}
	blob := content.Parts[0].InlineData
	if blob == nil || len(blob.Data) == 0 {
		return nil, fmt.Errorf("speech response has no audio")
	}
	return blob.Data, nil
}

package assets

import (
	"fmt"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// Стандартные размеры шрифтов интерфейса.
const (
	SizeSmall  = 10.0
	SizeBody   = 14.0
	SizeLarge  = 22.0
	SizeHuge   = 48.0
	SizeBanner = 64.0
)

// FontManager разбирает встроенные шрифты Go Mono один раз и кэширует
// начертания по размеру.
type FontManager struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[string]font.Face
}

// NewFontManager разбирает встроенные шрифты. При ошибке разбора менеджер
// всё равно работает и отдаёт basicfont.
func NewFontManager() *FontManager {
	m := &FontManager{faces: make(map[string]font.Face)}
	var err error
	if m.regular, err = opentype.Parse(gomono.TTF); err != nil {
		log.Printf("WARNING: failed to parse Go Mono: %v", err)
	}
	if m.bold, err = opentype.Parse(gomonobold.TTF); err != nil {
		log.Printf("WARNING: failed to parse Go Mono Bold: %v", err)
	}
	return m
}

// Face возвращает начертание заданного размера.
func (m *FontManager) Face(size float64, bold bool) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := fmt.Sprintf("%.1f/%t", size, bold)
	if f, ok := m.faces[key]; ok {
		return f
	}

	src := m.regular
	if bold {
		src = m.bold
	}
	face, err := newFace(src, size)
	if err != nil {
		log.Printf("WARNING: falling back to basicfont for size %.1f: %v", size, err)
		face = basicfont.Face7x13
	}
	m.faces[key] = face
	return face
}

func newFace(src *opentype.Font, size float64) (font.Face, error) {
	if src == nil {
		return nil, fmt.Errorf("font not loaded")
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return face, nil
}

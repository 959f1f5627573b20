// internal/input/controller.go
package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Target принимает команды игрока: прицел и выстрел.
type Target interface {
	SetAim(x, y float64)
	QueueFire()
}

// Pointer: снимок указателя за один тик.
type Pointer struct {
	X, Y    float64
	Moved   bool
	Pressed bool
}

// Controller опрашивает мышь и сенсорный экран и передаёт команды цели.
type Controller struct {
	target  Target
	lastX   int
	lastY   int
	pressed []ebiten.TouchID
	active  []ebiten.TouchID
}

func NewController(target Target) *Controller {
	return &Controller{
		target: target,
		lastX:  -1,
		lastY:  -1,
	}
}

// Update читает ввод текущего кадра.
func (c *Controller) Update() {
	for _, p := range c.poll() {
		Apply(c.target, p)
	}
}

func (c *Controller) poll() []Pointer {
	var out []Pointer

	x, y := ebiten.CursorPosition()
	mouse := Pointer{X: float64(x), Y: float64(y)}
	if x != c.lastX || y != c.lastY {
		mouse.Moved = true
		c.lastX, c.lastY = x, y
	}
	mouse.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if mouse.Moved || mouse.Pressed {
		out = append(out, mouse)
	}

	// Набор касаний строится заново каждый кадр: отпущенный во время паузы
	// палец просто пропадает из списка.
	c.pressed = inpututil.AppendJustPressedTouchIDs(c.pressed[:0])
	c.active = ebiten.AppendTouchIDs(c.active[:0])
	return append(out, TouchPointers(c.pressed, c.active, ebiten.TouchPosition)...)
}

// TouchPointers переводит касания кадра в снимки указателя: новое касание
// стреляет в свою точку, удерживаемое ведёт прицел.
func TouchPointers(pressed, active []ebiten.TouchID, position func(ebiten.TouchID) (int, int)) []Pointer {
	var out []Pointer
	for _, id := range pressed {
		x, y := position(id)
		out = append(out, Pointer{X: float64(x), Y: float64(y), Moved: true, Pressed: true})
	}
	for _, id := range active {
		if slices.Contains(pressed, id) {
			continue
		}
		x, y := position(id)
		out = append(out, Pointer{X: float64(x), Y: float64(y), Moved: true})
	}
	return out
}

// Apply переводит снимок указателя в команды. Прицел обновляется до выстрела,
// чтобы залп ушёл в точку касания.
func Apply(t Target, p Pointer) {
	if p.Moved {
		t.SetAim(p.X, p.Y)
	}
	if p.Pressed {
		t.QueueFire()
	}
}

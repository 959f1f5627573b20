package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recorder struct {
	calls []string
	x, y  float64
}

func (r *recorder) SetAim(x, y float64) {
	r.calls = append(r.calls, "aim")
	r.x, r.y = x, y
}

func (r *recorder) QueueFire() {
	r.calls = append(r.calls, "fire")
}

func TestApplyAimsBeforeFiring(t *testing.T) {
	r := &recorder{}
	Apply(r, Pointer{X: 300, Y: 400, Moved: true, Pressed: true})

	if len(r.calls) != 2 || r.calls[0] != "aim" || r.calls[1] != "fire" {
		t.Fatalf("calls: got=%v want=[aim fire]", r.calls)
	}
	if r.x != 300 || r.y != 400 {
		t.Fatalf("aim: got=(%f,%f) want=(300,400)", r.x, r.y)
	}
}

func TestApplyClickWithoutMoveKeepsAim(t *testing.T) {
	r := &recorder{}
	Apply(r, Pointer{X: 10, Y: 10, Pressed: true})

	if len(r.calls) != 1 || r.calls[0] != "fire" {
		t.Fatalf("calls: got=%v want=[fire]", r.calls)
	}
}

func TestApplyIdlePointerDoesNothing(t *testing.T) {
	r := &recorder{}
	Apply(r, Pointer{X: 10, Y: 10})

	if len(r.calls) != 0 {
		t.Fatalf("calls: got=%v want=[]", r.calls)
	}
}

func TestTouchPointersNewTouchFires(t *testing.T) {
	pos := map[ebiten.TouchID][2]int{1: {300, 200}, 2: {50, 60}}
	lookup := func(id ebiten.TouchID) (int, int) { return pos[id][0], pos[id][1] }

	got := TouchPointers([]ebiten.TouchID{1}, []ebiten.TouchID{1, 2}, lookup)
	if len(got) != 2 {
		t.Fatalf("pointers: got=%d want=2", len(got))
	}
	if !got[0].Pressed || got[0].X != 300 || got[0].Y != 200 {
		t.Fatalf("new touch: %+v", got[0])
	}
	if got[1].Pressed || !got[1].Moved || got[1].X != 50 {
		t.Fatalf("held touch: %+v", got[1])
	}
}

func TestTouchPointersIgnoreReleasedTouches(t *testing.T) {
	calls := 0
	lookup := func(ebiten.TouchID) (int, int) {
		calls++
		return 0, 0
	}

	// палец отпущен, пока контроллер не опрашивался: его нет среди активных
	got := TouchPointers(nil, nil, lookup)
	if len(got) != 0 || calls != 0 {
		t.Fatalf("released touch still steers aim: %+v", got)
	}
}

package assets

import "testing"

func TestFaceIsCached(t *testing.T) {
	m := NewFontManager()
	a := m.Face(SizeBody, false)
	b := m.Face(SizeBody, false)
	if a == nil || a != b {
		t.Fatalf("expected cached face, got %v and %v", a, b)
	}
	if m.Face(SizeBody, true) == a {
		t.Fatalf("bold face must differ from regular")
	}
}

func TestFaceMetricsGrowWithSize(t *testing.T) {
	m := NewFontManager()
	small := m.Face(SizeSmall, false).Metrics().Height
	large := m.Face(SizeHuge, false).Metrics().Height
	if large <= small {
		t.Fatalf("height: small=%v large=%v", small, large)
	}
}

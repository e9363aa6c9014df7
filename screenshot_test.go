package pegdrop

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "frame"},
		{"   ", "frame"},
		{"demo-end", "demo-end"},
		{"after drop/1", "after_drop_1"},
		{"v1.2", "v1.2"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 10, 20, 30, 255}, 2, 1)
	got := img.NRGBAAt(0, 0)
	if got.A != 128 || got.R != 127 || got.G != 63 {
		t.Errorf("pixel 0 = %+v, want straight alpha", got)
	}
	if px := img.NRGBAAt(1, 0); px.R != 10 || px.A != 255 {
		t.Errorf("opaque pixel changed: %+v", px)
	}
}

func TestWritePNG(t *testing.T) {
	img := unpremultiply(make([]byte, 4*3*2), 3, 2)
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("size = %dx%d, want 3x2", b.Dx(), b.Dy())
	}
}

func TestScreenshotQueues(t *testing.T) {
	s := newTestScene(t)
	s.Screenshot("one")
	s.Screenshot("two")
	if len(s.screenshotQueue) != 2 {
		t.Errorf("queue = %v", s.screenshotQueue)
	}
}

package render

import (
	"image/png"
	"os"
	"testing"

	"uncurl/internal/curve"
	"uncurl/internal/grid"
)

func TestExpandRGBA(t *testing.T) {
	pix := []byte{
		1, 2, 3,
		250, 251, 252,
	}
	buf := make([]byte, 8)
	expandRGBA(buf, pix)

	want := []byte{1, 2, 3, 0xff, 250, 251, 252, 0xff}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestWriteSnapshot(t *testing.T) {
	records := make([]byte, 10*grid.RecordSize)
	for i := range records {
		records[i] = byte(37 * i)
	}
	g, err := grid.Build(records, curve.Hilbert)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path, err := WriteSnapshot(dir, g, 3)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != g.Width*3 || b.Dy() != g.Width*3 {
		t.Fatalf("snapshot is %dx%d, want %dx%d", b.Dx(), b.Dy(), g.Width*3, g.Width*3)
	}

	// The first record lands at the curve origin (0,0); with factor 3 its
	// color fills the top-left 3x3 block.
	r, gc, bc, _ := img.At(1, 1).RGBA()
	if uint8(r>>8) != records[0] || uint8(gc>>8) != records[1] || uint8(bc>>8) != records[2] {
		t.Fatalf("origin pixel = (%d,%d,%d), want (%d,%d,%d)",
			r>>8, gc>>8, bc>>8, records[0], records[1], records[2])
	}
}

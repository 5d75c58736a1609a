package chip8

import "testing"

func TestDisplayClear(t *testing.T) {
	d := &Display{}
	d.DrawSprite(0, 0, []byte{0xFF, 0xFF})
	d.Clear()
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if d.PixelAt(x, y) {
				t.Fatalf("pixel (%d,%d) still set after Clear", x, y)
			}
		}
	}
}

func TestDisplayDrawAndErase(t *testing.T) {
	d := &Display{}
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	if d.DrawSprite(0, 0, sprite) {
		t.Error("first draw on empty screen reported a collision")
	}
	if !d.PixelAt(0, 0) || d.PixelAt(4, 0) {
		t.Error("first draw produced wrong pixels")
	}

	// Drawing the identical sprite again erases every pixel it touched.
	if !d.DrawSprite(0, 0, sprite) {
		t.Error("second identical draw did not report a collision")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			if d.PixelAt(x, y) {
				t.Errorf("pixel (%d,%d) survived the erasing draw", x, y)
			}
		}
	}
}

func TestDisplayCollisionSticky(t *testing.T) {
	d := &Display{}
	// Only the first row overlaps; the collision from row 0 must survive
	// the non-colliding rows after it.
	d.DrawSprite(0, 0, []byte{0x80})
	if !d.DrawSprite(0, 0, []byte{0x80, 0x80, 0x80}) {
		t.Error("collision flag was lost after later non-colliding rows")
	}
}

func TestDisplayWraparound(t *testing.T) {
	d := &Display{}
	d.DrawSprite(60, 30, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	// Columns past 63 wrap to 0, rows past 31 wrap to 0.
	cases := []struct {
		x, y int
		want bool
	}{
		{60, 30, true},
		{63, 30, true},
		{0, 30, true},  // column 64 wrapped
		{3, 30, true},  // column 67 wrapped
		{60, 0, true},  // row 32 wrapped
		{3, 2, true},   // both wrapped
		{4, 30, false}, // past the 8-pixel width
		{60, 3, false}, // past the 5-row height
	}
	for _, tc := range cases {
		if got := d.PixelAt(tc.x, tc.y); got != tc.want {
			t.Errorf("PixelAt(%d,%d): expected %v, got %v", tc.x, tc.y, tc.want, got)
		}
	}
}

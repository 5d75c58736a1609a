package chip8

const (
	// DisplayWidth and DisplayHeight are the framebuffer dimensions.
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the 64x32 monochrome framebuffer. Pixels are addressed
// row-major; sprite draws XOR into it with coordinate wraparound.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// Clear sets every pixel to off.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// PixelAt reports whether the pixel at (x, y) is set. Coordinates wrap.
func (d *Display) PixelAt(x, y int) bool {
	x %= DisplayWidth
	y %= DisplayHeight
	return d.pixels[y*DisplayWidth+x]
}

// DrawSprite XORs a sprite at (x, y) and reports whether any previously
// set pixel was erased. Each sprite byte is one row, bit 7 leftmost.
// Coordinates are taken modulo the screen dimensions, so sprites wrap
// around the edges instead of clipping.
func (d *Display) DrawSprite(x, y uint8, sprite []byte) bool {
	collided := false
	for row, b := range sprite {
		py := (int(y) + row) % DisplayHeight
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % DisplayWidth
			idx := py*DisplayWidth + px
			if d.pixels[idx] {
				collided = true
			}
			d.pixels[idx] = !d.pixels[idx]
		}
	}
	return collided
}

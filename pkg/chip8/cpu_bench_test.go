package chip8

import "testing"

// BenchmarkStep measures the raw cycle rate on a tight counting loop:
// ADD V0, 1 / JP back.
func BenchmarkStep(b *testing.B) {
	c := New()
	if err := c.LoadProgram([]byte{0x70, 0x01, 0x12, 0x00}); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Step(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDrawSprite measures the XOR blit path with a full-height sprite.
func BenchmarkDrawSprite(b *testing.B) {
	d := &Display{}
	sprite := make([]byte, SpriteMaxLen)
	for i := range sprite {
		sprite[i] = 0xA5
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.DrawSprite(uint8(i%DisplayWidth), uint8(i%DisplayHeight), sprite)
	}
}

package ines

//go:generate go tool stringer -type=Mirroring

// Mirroring describes how the 4 logical nametables are mapped onto the 2KB of
// PPU VRAM.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
	SingleScreenA
	SingleScreenB
)

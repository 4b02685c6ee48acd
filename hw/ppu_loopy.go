package hw

// loopy is the layout of the PPU internal v and t registers.
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

func (l loopy) coarsex() uint8   { return uint8(l & 0x1F) }
func (l loopy) coarsey() uint8   { return uint8(l>>5) & 0x1F }
func (l loopy) nametable() uint8 { return uint8(l>>10) & 0x03 }
func (l loopy) finey() uint16    { return uint16(l>>12) & 0x07 }
func (l loopy) low() uint8       { return uint8(l) }
func (l loopy) high() uint8      { return uint8(l>>8) & 0x7F }
func (l loopy) val() uint16      { return uint16(l) & 0x7FFF }

func (l *loopy) setCoarsex(v uint8)   { *l = *l&^0x001F | loopy(v&0x1F) }
func (l *loopy) setCoarsey(v uint8)   { *l = *l&^0x03E0 | loopy(v&0x1F)<<5 }
func (l *loopy) setNametable(v uint8) { *l = *l&^0x0C00 | loopy(v&0x03)<<10 }
func (l *loopy) setFiney(v uint8)     { *l = *l&^0x7000 | loopy(v&0x07)<<12 }
func (l *loopy) setLow(v uint8)       { *l = *l&^0x00FF | loopy(v) }

// setHigh sets bits 8-13 and clears bit 14.
func (l *loopy) setHigh(v uint8) { *l = *l&^0x7F00 | loopy(v&0x3F)<<8 }

// incCoarsex increments coarse X, switching horizontal nametable on wrap.
func (l *loopy) incCoarsex() {
	if l.coarsex() == 31 {
		l.setCoarsex(0)
		*l ^= 0x0400
	} else {
		*l++
	}
}

// incY increments fine Y, overflowing into coarse Y. Coarse Y wraps at 29,
// switching vertical nametable, and at 31 without switching.
func (l *loopy) incY() {
	if l.finey() < 7 {
		*l += 0x1000
		return
	}

	*l &^= 0x7000
	y := l.coarsey()
	switch y {
	case 29:
		y = 0
		*l ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	l.setCoarsey(y)
}

// copyX copies the horizontal position bits from src.
func (l *loopy) copyX(src loopy) {
	const mask = 0x041F
	*l = *l&^mask | src&mask
}

package hw

// renderScanline renders the current scanline and sends it to the screen.
func (p *PPU) renderScanline() {
	clear(p.linebuf[:])
	clear(p.bgOpaque[:])

	if p.PPUMASK.GetBit(showBg) {
		p.renderBackground()
	}
	if p.PPUMASK.GetBit(showSprites) {
		p.renderSprites()
	}

	if p.screen == nil {
		return
	}

	y := p.Scanline
	for x, idx := range p.linebuf {
		// Transparent pixels show the backdrop color.
		if idx&0x03 == 0 {
			idx = 0
		}
		color := p.Palette[paletteIndex(uint16(idx))] & 0x3F
		if p.PPUMASK.GetBit(greyscale) {
			color &= 0x30
		}
		p.screen.SetPixel(x, y, nesPalette[color])
	}
}

// renderBackground fetches 33 tiles so that the fine X scroll can shift the
// line by up to 7 pixels.
func (p *PPU) renderBackground() {
	v := p.vramAddr
	finey := v.finey()

	table := uint16(0x0000)
	if p.PPUCTRL.GetBit(backgroundAddr) {
		table = 0x1000
	}
	showLeft := p.PPUMASK.GetBit(leftmostBg)

	x := -int(p.finex)
	for range 33 {
		cx, cy := uint16(v.coarsex()), uint16(v.coarsey())

		tile := p.Read8(0x2000 | v.val()&0x0FFF)
		attr := p.Read8(0x23C0 | v.val()&0x0C00 | (cy>>2)<<3 | cx>>2)
		shift := (cy%4)/2*4 + (cx%4)/2*2
		palette := (attr >> shift) & 0x03

		addr := table + uint16(tile)*16 + finey
		lo := p.Read8(addr)
		hi := p.Read8(addr + 8)

		for i := range 8 {
			px := x + i
			if px < 0 || px >= ScreenWidth {
				continue
			}
			if px < 8 && !showLeft {
				continue
			}
			bit := 7 - i
			c := (lo>>bit)&1 | ((hi>>bit)&1)<<1
			if c == 0 {
				continue
			}
			p.bgOpaque[px] = true
			p.linebuf[px] = palette<<2 | c
		}

		x += 8
		v.incCoarsex()
	}
}

// renderSprites renders the 64 sprites on the current scanline. The first
// opaque sprite pixel wins, whatever its priority.
func (p *PPU) renderSprites() {
	height := 8
	if p.PPUCTRL.GetBit(spriteSize) {
		height = 16
	}
	showLeft := p.PPUMASK.GetBit(leftmostSprites)
	bgEnabled := p.PPUMASK.GetBit(showBg)

	var drawn [ScreenWidth]bool
	for n := range 64 {
		sprite := p.OAM[n*4 : n*4+4]

		// Sprite data is delayed by one scanline.
		row := p.Scanline - (int(sprite[0]) + 1)
		if row < 0 || row >= height {
			continue
		}

		tile := sprite[1]
		attr := sprite[2]
		sx := int(sprite[3])

		if attr&0x80 != 0 { // vertical flip
			row = height - 1 - row
		}

		var addr uint16
		if height == 16 {
			table := uint16(tile&1) * 0x1000
			tile &^= 1
			if row >= 8 {
				tile++
				row -= 8
			}
			addr = table + uint16(tile)*16 + uint16(row)
		} else {
			table := uint16(0x0000)
			if p.PPUCTRL.GetBit(spriteAddr) {
				table = 0x1000
			}
			addr = table + uint16(tile)*16 + uint16(row)
		}

		lo := p.Read8(addr)
		hi := p.Read8(addr + 8)
		palette := attr & 0x03
		behind := attr&0x20 != 0

		for i := range 8 {
			px := sx + i
			if px >= ScreenWidth {
				break
			}
			if px < 8 && !showLeft {
				continue
			}

			bit := 7 - i
			if attr&0x40 != 0 { // horizontal flip
				bit = i
			}
			c := (lo>>bit)&1 | ((hi>>bit)&1)<<1
			if c == 0 || drawn[px] {
				continue
			}
			drawn[px] = true

			if n == 0 && px != 255 {
				if (bgEnabled && p.bgOpaque[px]) || p.Sprite0HitBypass {
					p.PPUSTATUS.SetBit(sprite0Hit)
				}
			}

			if behind && p.bgOpaque[px] {
				continue
			}
			p.linebuf[px] = 0x10 | palette<<2 | c
		}
	}
}

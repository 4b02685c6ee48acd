package mappers

// base provides the memory accesses shared by all mappers. Bank offsets are
// always computed modulo the number of banks, negative bank numbers count
// from the last bank.
type base struct {
	cart *Cartridge
	name string
}

// newbase must be called once cart.desc is set, Load does it before creating
// the mapper.
func newbase(cart *Cartridge) base {
	return base{cart: cart, name: cart.desc.Name}
}

func (b *base) String() string { return b.name }

func bankOffset(memsize, banksize, bank int) int {
	count := memsize / banksize
	if count == 0 {
		return 0
	}
	bank %= count
	if bank < 0 {
		bank += count
	}
	return bank * banksize
}

func (b *base) prgOffset(banksize, bank int) int {
	return bankOffset(len(b.cart.PRGROM), banksize, bank)
}

func (b *base) chrOffset(banksize, bank int) int {
	return bankOffset(len(b.cart.CHR()), banksize, bank)
}

func (b *base) readPRGRAM(addr uint16) uint8 {
	return b.cart.PRGRAM[addr&(PRGRAMSize-1)]
}

func (b *base) writePRGRAM(addr uint16, val uint8) {
	b.cart.PRGRAM[addr&(PRGRAMSize-1)] = val
}

// readCHR reads the pattern tables at the given offset in CHR memory.
func (b *base) readCHR(off int) uint8 {
	chr := b.cart.CHR()
	return chr[off%len(chr)]
}

// writeCHR writes to the pattern tables. Writes to CHR ROM are ignored.
func (b *base) writeCHR(off int, val uint8) {
	if !b.cart.HasCHRRAM() {
		modMapper.DebugZ("write to CHR ROM").String("mapper", b.name).Int("off", off).End()
		return
	}
	b.cart.CHRRAM[off%CHRRAMSize] = val
}

// fixed 8KB CHR: most simple mappers.
func (b *base) PPURead(addr uint16) uint8       { return b.readCHR(int(addr & 0x1FFF)) }
func (b *base) PPUWrite(addr uint16, val uint8) { b.writeCHR(int(addr&0x1FFF), val) }

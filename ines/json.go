package ines

import "github.com/go-faster/jx"

// EncodeJSON writes the rom infos as a JSON object.
func (rom *Rom) EncodeJSON(e *jx.Encoder) {
	e.ObjStart()
	if rom.path != "" {
		e.FieldStart("path")
		e.Str(rom.path)
	}
	e.FieldStart("mapper")
	e.Int(int(rom.Mapper()))
	e.FieldStart("prg_banks")
	e.Int(rom.PRGBanks())
	e.FieldStart("chr_banks")
	e.Int(rom.CHRBanks())
	e.FieldStart("mirroring")
	e.Str(rom.Mirroring().String())
	e.FieldStart("battery")
	e.Bool(rom.HasPersistent())
	e.FieldStart("trainer")
	e.Bool(rom.HasTrainer())
	e.FieldStart("four_screen")
	e.Bool(rom.FourScreen())
	e.FieldStart("nes20")
	e.Bool(rom.IsNES20())
	e.ObjEnd()
}

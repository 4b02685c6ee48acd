package mappers

import (
	"nescore/emu/log"
)

var modMapper = log.NewModule("mapper")

type MapperDesc struct {
	Name string
	New  func(*Cartridge) Mapper
}

// All lists the supported mappers, by iNES mapper number.
var All = map[uint16]MapperDesc{
	0:  NROM,
	1:  MMC1,
	2:  UxROM,
	3:  CNROM,
	4:  MMC3,
	7:  AxROM,
	66: GxROM,
}

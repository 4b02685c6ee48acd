package mappers

import "strconv"

// UnsupportedMapperError is returned when loading a cartridge using a mapper
// that is not implemented.
type UnsupportedMapperError struct {
	ID uint16
}

func (e *UnsupportedMapperError) Error() string {
	return "unsupported mapper " + strconv.Itoa(int(e.ID))
}

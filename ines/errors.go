package ines

import "github.com/go-faster/errors"

var (
	ErrBadMagic  = errors.New("invalid magic number")
	ErrTruncated = errors.New("truncated rom")
	ErrNoPRG     = errors.New("no PRG ROM")
)

// RomLoadError is returned when a rom file can't be read or decoded.
type RomLoadError struct {
	Path string
	Err  error
}

func (e *RomLoadError) Error() string {
	if e.Path == "" {
		return "rom load error: " + e.Err.Error()
	}
	return "rom load error: " + e.Path + ": " + e.Err.Error()
}

func (e *RomLoadError) Unwrap() error { return e.Err }

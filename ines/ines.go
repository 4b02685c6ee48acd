// Package ines implements a reader for roms in the iNES file format, used for
// the distribution of NES binary programs.
package ines

import (
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
)

const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGBankSize = 0x4000 // 16KB
	CHRBankSize = 0x2000 // 8KB
)

type Rom struct {
	header
	Trainer []byte // Trainer, 512 bytes if present, or empty.
	PRGROM  []byte // PRGROM is PRG ROM data (length is multiples of 16k)
	CHRROM  []byte // CHRROM is CHR ROM data (length is multiples of 8k)

	path string
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RomLoadError{Path: path, Err: err}
	}
	defer f.Close()

	rom := &Rom{path: path}
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, &RomLoadError{Path: path, Err: err}
	}
	return rom, nil
}

// Decode decodes a rom held in memory.
func Decode(buf []byte) (*Rom, error) {
	rom := new(Rom)
	if err := rom.decode(buf); err != nil {
		return nil, &RomLoadError{Err: err}
	}
	return rom, nil
}

// ReadFrom implements io.ReaderFrom interface.
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if err := rom.decode(buf); err != nil {
		return 0, err
	}
	return int64(len(buf)), nil
}

func (rom *Rom) decode(buf []byte) error {
	var off int
	if err := rom.header.decode(buf); err != nil {
		return errors.Wrap(err, "failed to decode header")
	}
	off += HeaderSize

	if rom.HasTrainer() {
		if len(buf) < off+TrainerSize {
			return errors.Wrap(ErrTruncated, "TRAINER section")
		}
		rom.Trainer = buf[off : off+TrainerSize]
		off += TrainerSize
	}

	if len(buf) < off+rom.prgsz {
		return errors.Wrap(ErrTruncated, "PRG section")
	}
	rom.PRGROM = buf[off : off+rom.prgsz]
	off += rom.prgsz

	if len(buf) < off+rom.chrsz {
		return errors.Wrap(ErrTruncated, "CHR section")
	}
	rom.CHRROM = buf[off : off+rom.chrsz]
	return nil
}

// Path returns the path the rom was loaded from, if any.
func (rom *Rom) Path() string { return rom.path }

const Magic = "NES\x1a"

type header struct {
	raw   [HeaderSize]byte
	prgsz int
	chrsz int
}

func (hdr *header) decode(p []byte) error {
	if len(p) < HeaderSize {
		return errors.Wrapf(ErrTruncated, "header needs %d bytes, got %d", HeaderSize, len(p))
	}
	if string(p[:4]) != Magic {
		return ErrBadMagic
	}
	if p[4] == 0 {
		return ErrNoPRG
	}
	copy(hdr.raw[:], p[:HeaderSize])

	hdr.prgsz = int(hdr.raw[4]) * PRGBankSize
	hdr.chrsz = int(hdr.raw[5]) * CHRBankSize
	return nil
}

// PRGBanks returns the number of 16KB PRG ROM banks.
func (hdr *header) PRGBanks() int { return int(hdr.raw[4]) }

// CHRBanks returns the number of 8KB CHR ROM banks. Zero means the cartridge
// uses CHR RAM.
func (hdr *header) CHRBanks() int { return int(hdr.raw[5]) }

// HasTrainer indicates the presence of a trainer section in the rom.
func (hdr *header) HasTrainer() bool {
	return hdr.raw[6]&0x04 != 0
}

// HasPersistent indicates the presence of battery-backed memory.
func (hdr *header) HasPersistent() bool {
	return hdr.raw[6]&0x02 != 0
}

// FourScreen reports whether the cartridge provides its own VRAM for four
// independent nametables.
func (hdr *header) FourScreen() bool {
	return hdr.raw[6]&0x08 != 0
}

// Mirroring returns the nametable mirroring wired on the cartridge board.
func (hdr *header) Mirroring() Mirroring {
	if hdr.raw[6]&0x01 != 0 {
		return Vertical
	}
	return Horizontal
}

// Mapper returns the iNES mapper number.
func (hdr *header) Mapper() uint16 {
	return uint16(hdr.raw[6]>>4) | uint16(hdr.raw[7]>>4)<<4
}

// IsNES20 reports whether the header uses the NES 2.0 extensions.
func (hdr *header) IsNES20() bool {
	return hdr.raw[7]&0x0C == 0x08
}

// PrintInfos writes a human readable summary of the rom to w.
func (rom *Rom) PrintInfos(w io.Writer) {
	if rom.path != "" {
		fmt.Fprintf(w, "%s:\n", rom.path)
	}
	fmt.Fprintf(w, "  mapper:     %d\n", rom.Mapper())
	fmt.Fprintf(w, "  PRG ROM:    %d x 16KB\n", rom.PRGBanks())
	if rom.CHRBanks() == 0 {
		fmt.Fprintf(w, "  CHR ROM:    none (8KB CHR RAM)\n")
	} else {
		fmt.Fprintf(w, "  CHR ROM:    %d x 8KB\n", rom.CHRBanks())
	}
	fmt.Fprintf(w, "  mirroring:  %s\n", rom.Mirroring())
	fmt.Fprintf(w, "  battery:    %t\n", rom.HasPersistent())
	fmt.Fprintf(w, "  trainer:    %t\n", rom.HasTrainer())
	fmt.Fprintf(w, "  fourscreen: %t\n", rom.FourScreen())
	fmt.Fprintf(w, "  NES 2.0:    %t\n", rom.IsNES20())
}

package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
)

// an InputDevice is a generic interface for NES input devices.
type InputDevice interface {
	// LoadState captures the current state of the device.
	LoadState() uint8
}

// InputPorts handles I/O with an InputDevice (such as standard NES controller
// for example), through the serial protocol exposed at $4016.
type InputPorts struct {
	In hwio.Reg8

	dev   InputDevice
	state uint8 // shift register
}

func (ip *InputPorts) initBus() {
	ip.In = hwio.Reg8{
		Name:    "IN",
		ReadCb:  ip.ReadIN,
		WriteCb: ip.WriteIN,
	}
}

// Plug connects dev to the input port. A nil device unplugs it.
func (ip *InputPorts) Plug(dev InputDevice) {
	ip.dev = dev
}

// capture state of the connected input device.
func (ip *InputPorts) loadstate() {
	if ip.dev == nil {
		// No controller is connected.
		ip.state = 0
		return
	}
	ip.state = ip.dev.LoadState()
	log.ModInput.DebugZ("latched input state").Hex8("state", ip.state).End()
}

// In: $4016
func (ip *InputPorts) WriteIN(old, val uint8) {
	if val&1 == 1 {
		ip.loadstate()
	}
}

func (ip *InputPorts) ReadIN(_ uint8) uint8 {
	ret := ip.state & 1
	ip.state >>= 1

	// After 8 bits are read, all subsequent bits will report 1 on a standard
	// NES controller, but third party and other controllers may report other
	// values here
	ip.state |= 0x80
	return ret
}

// PeekIN returns the next bit to be read, without shifting.
func (ip *InputPorts) PeekIN() uint8 {
	return ip.state & 1
}

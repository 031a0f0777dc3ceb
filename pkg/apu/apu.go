package apu

import "github.com/famigo-emu/famigo/pkg/logger"

// APU is a register-bank stub: it accepts the channel register writes a game
// performs during init and playback, and answers $4015 reads with the stored
// enable byte. No samples are produced and the frame IRQ is not emulated.
type APU struct {
	// Channel registers $4000-$4013, indexed by addr-$4000
	registers [0x14]uint8

	// $4015 channel-enable byte
	status uint8

	// $4017 frame counter mode byte
	frameCounter uint8
}

// New creates a new APU instance
func New() *APU {
	return &APU{}
}

// Reset returns the APU to its power-up register state
func (a *APU) Reset() {
	a.registers = [0x14]uint8{}
	a.status = 0
	a.frameCounter = 0
}

// WriteRegister handles a CPU write to $4000-$4013, $4015 or $4017
func (a *APU) WriteRegister(addr uint16, value uint8) {
	switch {
	case addr >= 0x4000 && addr <= 0x4013:
		a.registers[addr-0x4000] = value
	case addr == 0x4015:
		a.status = value
		logger.LogAPU("channel enable: $%02X", value)
	case addr == 0x4017:
		a.frameCounter = value
	}
}

// ReadRegister handles a CPU read. Only $4015 is readable; it returns the
// stored enable byte.
func (a *APU) ReadRegister(addr uint16) uint8 {
	if addr == 0x4015 {
		return a.status
	}
	return 0
}

// Register returns the stored value of a channel register (for debugging)
func (a *APU) Register(addr uint16) uint8 {
	if addr >= 0x4000 && addr <= 0x4013 {
		return a.registers[addr-0x4000]
	}
	return 0
}

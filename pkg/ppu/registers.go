package ppu

import "github.com/famigo-emu/famigo/pkg/logger"

// CPU-visible register addresses ($2000-$2007, mirrored through $3FFF)
const (
	RegCtrl    = 0x2000
	RegMask    = 0x2001
	RegStatus  = 0x2002
	RegOAMAddr = 0x2003
	RegOAMData = 0x2004
	RegScroll  = 0x2005
	RegAddr    = 0x2006
	RegData    = 0x2007
)

// ReadRegister handles a CPU read of a PPU register. Reading the status
// register clears the vblank flag and resets the $2005/$2006 write latch;
// that side effect is part of the read itself.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch 0x2000 + addr&0x0007 {
	case RegStatus:
		value := p.Status | p.openBus&0x1F
		p.Status &^= StatusVBlank
		p.w = 0
		p.openBus = value
		return value

	case RegOAMData:
		value := p.OAM[p.OAMAddr]
		p.openBus = value
		return value

	case RegData:
		var value uint8
		if p.v&0x3FFF >= 0x3F00 {
			// Palette reads are immediate; the buffer still picks up the
			// nametable byte underneath the palette address.
			value = p.readVRAM(p.v)
			p.readBuffer = p.readVRAM(p.v - 0x1000)
		} else {
			value = p.readBuffer
			p.readBuffer = p.readVRAM(p.v)
		}
		p.incrementV()
		p.openBus = value
		return value
	}

	// Write-only registers read back the bus
	return p.openBus
}

// WriteRegister handles a CPU write to a PPU register
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	p.openBus = value

	switch 0x2000 + addr&0x0007 {
	case RegCtrl:
		p.Ctrl = value
		p.t = p.t&0xF3FF | uint16(value&0x03)<<10

	case RegMask:
		p.Mask = value

	case RegOAMAddr:
		p.OAMAddr = value

	case RegOAMData:
		p.OAM[p.OAMAddr] = value
		p.OAMAddr++

	case RegScroll:
		if p.w == 0 {
			// First write: fine X and coarse X
			p.t = p.t&0xFFE0 | uint16(value)>>3
			p.x = value & 0x07
			p.w = 1
		} else {
			// Second write: fine Y and coarse Y
			p.t = p.t&0x8FFF | uint16(value&0x07)<<12
			p.t = p.t&0xFC1F | uint16(value&0xF8)<<2
			p.w = 0
		}

	case RegAddr:
		if p.w == 0 {
			// First write: high six bits, bit 14 cleared
			p.t = p.t&0x00FF | uint16(value&0x3F)<<8
			p.w = 1
		} else {
			p.t = p.t&0xFF00 | uint16(value)
			p.v = p.t
			p.w = 0
			logger.LogPPU("addr latch: v=$%04X", p.v)
		}

	case RegData:
		p.writeVRAM(p.v, value)
		p.incrementV()
	}
}

// WriteDMA stores one byte at the current OAM pointer; used by the bus
// during an OAM DMA transfer.
func (p *PPU) WriteDMA(value uint8) {
	p.OAM[p.OAMAddr] = value
	p.OAMAddr++
}

// incrementV bumps the VRAM address by 1 or 32 depending on Ctrl bit 2
func (p *PPU) incrementV() {
	if p.Ctrl&CtrlIncrement != 0 {
		p.v += 32
	} else {
		p.v++
	}
}

package ppu

import "github.com/famigo-emu/famigo/pkg/cartridge"

// nametableLayout maps the four logical nametables onto physical 1KB banks
// for each mirroring arrangement. Horizontal and vertical use only the two
// banks the console actually has; four-screen boards supply the other two.
var nametableLayout = map[cartridge.MirroringMode][4]uint16{
	cartridge.MirroringHorizontal:     {0, 0, 1, 1},
	cartridge.MirroringVertical:       {0, 1, 0, 1},
	cartridge.MirroringSingleScreenLo: {0, 0, 0, 0},
	cartridge.MirroringSingleScreenHi: {1, 1, 1, 1},
	cartridge.MirroringFourScreen:     {0, 1, 2, 3},
}

// nametableOffset resolves a $2000-$3EFF address to an offset into the
// physical nametable storage
func (p *PPU) nametableOffset(addr uint16) uint16 {
	addr &= 0x0FFF // $3000-$3EFF mirrors $2000-$2EFF
	table := addr / 0x0400
	banks := nametableLayout[p.cart.Mirroring()]
	return banks[table]*0x0400 + addr%0x0400
}

// readVRAM reads the 14-bit PPU bus: pattern tables through the cartridge,
// then nametables, then palette RAM
func (p *PPU) readVRAM(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.cart.ReadCHR(addr)
	case addr < 0x3F00:
		return p.nametables[p.nametableOffset(addr)]
	default:
		return p.readPalette(addr)
	}
}

// writeVRAM writes the 14-bit PPU bus
func (p *PPU) writeVRAM(addr uint16, value uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.cart.WriteCHR(addr, value)
	case addr < 0x3F00:
		p.nametables[p.nametableOffset(addr)] = value
	default:
		p.writePalette(addr, value)
	}
}

// paletteIndex folds a palette address to its 32-byte slot, collapsing the
// $3F10/$3F14/$3F18/$3F1C mirrors onto the background entries
func paletteIndex(addr uint16) uint16 {
	index := addr & 0x1F
	if index >= 0x10 && index%4 == 0 {
		index -= 0x10
	}
	return index
}

func (p *PPU) readPalette(addr uint16) uint8 {
	return p.palette[paletteIndex(addr)]
}

func (p *PPU) writePalette(addr uint16, value uint8) {
	p.palette[paletteIndex(addr)] = value & 0x3F
}

package mapper

import "github.com/famigo-emu/famigo/pkg/logger"

// Mapper2 (UxROM) - switchable 16KB PRG bank at $8000-$BFFF, last bank fixed
// at $C000-$FFFF, 8KB CHR RAM.
type Mapper2 struct {
	cartridge *CartridgeData

	prgBank      uint8 // current bank for the $8000 window
	prgBankCount uint8 // number of 16KB PRG banks
}

// NewMapper2 creates a new Mapper2 instance
func NewMapper2(data *CartridgeData) *Mapper2 {
	return &Mapper2{
		cartridge:    data,
		prgBankCount: uint8(len(data.PRGROM) / 16384),
	}
}

// ReadPRG reads from PRG space
func (m *Mapper2) ReadPRG(addr uint16) uint8 {
	switch {
	case addr >= 0xC000:
		// Fixed last bank
		offset := int(m.prgBankCount-1)*16384 + int(addr-0xC000)
		if offset < len(m.cartridge.PRGROM) {
			return m.cartridge.PRGROM[offset]
		}
	case addr >= 0x8000:
		bank := m.prgBank % m.prgBankCount
		offset := int(bank)*16384 + int(addr-0x8000)
		if offset < len(m.cartridge.PRGROM) {
			return m.cartridge.PRGROM[offset]
		}
	case addr >= 0x6000 && len(m.cartridge.PRGRAM) > 0:
		offset := int(addr-0x6000) % len(m.cartridge.PRGRAM)
		return m.cartridge.PRGRAM[offset]
	}
	return 0
}

// WritePRG writes to PRG space. Any write into $8000-$FFFF latches the low
// three bits of the value into the bank register.
func (m *Mapper2) WritePRG(addr uint16, value uint8) {
	if addr >= 0x8000 {
		m.prgBank = value & 0x07
		logger.LogMapper("UxROM bank select: $%02X -> bank %d", value, m.prgBank)
	} else if addr >= 0x6000 && addr < 0x8000 && len(m.cartridge.PRGRAM) > 0 {
		offset := int(addr-0x6000) % len(m.cartridge.PRGRAM)
		m.cartridge.PRGRAM[offset] = value
	}
}

// ReadCHR reads from CHR RAM
func (m *Mapper2) ReadCHR(addr uint16) uint8 {
	if len(m.cartridge.CHRRAM) > 0 && int(addr) < len(m.cartridge.CHRRAM) {
		return m.cartridge.CHRRAM[addr]
	}
	if len(m.cartridge.CHRROM) > 0 && int(addr) < len(m.cartridge.CHRROM) {
		return m.cartridge.CHRROM[addr]
	}
	return 0
}

// WriteCHR writes to CHR RAM
func (m *Mapper2) WriteCHR(addr uint16, value uint8) {
	if len(m.cartridge.CHRRAM) > 0 && int(addr) < len(m.cartridge.CHRRAM) {
		m.cartridge.CHRRAM[addr] = value
	}
}

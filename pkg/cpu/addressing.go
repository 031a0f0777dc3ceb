package cpu

// AddressingMode represents different addressing modes for 6502 instructions
type AddressingMode int

const (
	AddrImplied AddressingMode = iota
	AddrAccumulator
	AddrImmediate
	AddrZeroPage
	AddrZeroPageX
	AddrZeroPageY
	AddrRelative
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrIndirect
	AddrIndexedIndirect
	AddrIndirectIndexed
)

// operandAddress resolves the effective address for an addressing mode,
// performing the same bus accesses the hardware does. Indexed modes issue
// the dummy read at the un-carried address when the index crosses a page;
// writes (and read-modify-writes) always issue it, which is where the fixed
// extra cycle of indexed stores comes from.
func (c *CPU) operandAddress(mode AddressingMode, write bool) uint16 {
	switch mode {
	case AddrImmediate:
		addr := c.PC
		c.PC++
		return addr

	case AddrZeroPage:
		return uint16(c.fetch())

	case AddrZeroPageX:
		base := c.fetch()
		c.read(uint16(base))
		return uint16(base+c.X) & 0x00FF

	case AddrZeroPageY:
		base := c.fetch()
		c.read(uint16(base))
		return uint16(base+c.Y) & 0x00FF

	case AddrAbsolute:
		return c.fetch16()

	case AddrAbsoluteX:
		base := c.fetch16()
		addr := base + uint16(c.X)
		if write || base&0xFF00 != addr&0xFF00 {
			c.read(base&0xFF00 | addr&0x00FF)
		}
		return addr

	case AddrAbsoluteY:
		base := c.fetch16()
		addr := base + uint16(c.Y)
		if write || base&0xFF00 != addr&0xFF00 {
			c.read(base&0xFF00 | addr&0x00FF)
		}
		return addr

	case AddrIndirect:
		// JMP only. The 6502 never carries into the pointer's high byte, so
		// ($xxFF) fetches its high byte from $xx00.
		ptr := c.fetch16()
		lo := uint16(c.read(ptr))
		var hi uint16
		if ptr&0x00FF == 0x00FF {
			hi = uint16(c.read(ptr & 0xFF00))
		} else {
			hi = uint16(c.read(ptr + 1))
		}
		return hi<<8 | lo

	case AddrIndexedIndirect: // (zp,X)
		base := c.fetch()
		c.read(uint16(base))
		ptr := base + c.X
		lo := uint16(c.read(uint16(ptr)))
		hi := uint16(c.read(uint16(ptr+1) & 0x00FF))
		return hi<<8 | lo

	case AddrIndirectIndexed: // (zp),Y
		zp := c.fetch()
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp+1) & 0x00FF))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		if write || base&0xFF00 != addr&0xFF00 {
			c.read(base&0xFF00 | addr&0x00FF)
		}
		return addr
	}

	return 0
}

// loadOperand fetches the operand value for a read instruction
func (c *CPU) loadOperand(mode AddressingMode) uint8 {
	if mode == AddrAccumulator {
		return c.A
	}
	return c.read(c.operandAddress(mode, false))
}

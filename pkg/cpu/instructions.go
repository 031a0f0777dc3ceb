package cpu

// Load and store

func (c *CPU) lda(mode AddressingMode) {
	c.A = c.loadOperand(mode)
	c.setZN(c.A)
}

func (c *CPU) ldx(mode AddressingMode) {
	c.X = c.loadOperand(mode)
	c.setZN(c.X)
}

func (c *CPU) ldy(mode AddressingMode) {
	c.Y = c.loadOperand(mode)
	c.setZN(c.Y)
}

func (c *CPU) sta(mode AddressingMode) {
	c.write(c.operandAddress(mode, true), c.A)
}

func (c *CPU) stx(mode AddressingMode) {
	c.write(c.operandAddress(mode, true), c.X)
}

func (c *CPU) sty(mode AddressingMode) {
	c.write(c.operandAddress(mode, true), c.Y)
}

// Arithmetic. The 2A03 has no decimal mode, so ADC/SBC are always binary:
// the sum is computed in 9 bits, carry is bit 8, and overflow is set when
// both operands share a sign the result does not.

func (c *CPU) adc(mode AddressingMode) {
	c.addToA(c.loadOperand(mode))
}

func (c *CPU) sbc(mode AddressingMode) {
	// Subtraction is addition of the one's complement
	c.addToA(^c.loadOperand(mode))
}

func (c *CPU) addToA(value uint8) {
	carry := uint16(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (c.A^value)&0x80 == 0 && (c.A^uint8(sum))&0x80 != 0)

	c.A = uint8(sum)
	c.setZN(c.A)
}

// Compares

func (c *CPU) cmp(mode AddressingMode) {
	c.compare(c.A, c.loadOperand(mode))
}

func (c *CPU) cpx(mode AddressingMode) {
	c.compare(c.X, c.loadOperand(mode))
}

func (c *CPU) cpy(mode AddressingMode) {
	c.compare(c.Y, c.loadOperand(mode))
}

func (c *CPU) compare(reg, value uint8) {
	c.setFlag(FlagCarry, reg >= value)
	c.setZN(reg - value)
}

// Logical operations

func (c *CPU) and(mode AddressingMode) {
	c.A &= c.loadOperand(mode)
	c.setZN(c.A)
}

func (c *CPU) ora(mode AddressingMode) {
	c.A |= c.loadOperand(mode)
	c.setZN(c.A)
}

func (c *CPU) eor(mode AddressingMode) {
	c.A ^= c.loadOperand(mode)
	c.setZN(c.A)
}

func (c *CPU) bit(mode AddressingMode) {
	value := c.loadOperand(mode)
	c.setFlag(FlagZero, c.A&value == 0)
	c.setFlag(FlagNegative, value&0x80 != 0)
	c.setFlag(FlagOverflow, value&0x40 != 0)
}

// Shifts and rotates. Memory operands go through the read-modify-write
// sequence: the old value is written back once before the result lands.

func (c *CPU) rmw(mode AddressingMode, f func(uint8) uint8) {
	if mode == AddrAccumulator {
		c.read(c.PC)
		c.A = f(c.A)
		return
	}
	addr := c.operandAddress(mode, true)
	value := c.read(addr)
	c.write(addr, value)
	c.write(addr, f(value))
}

func (c *CPU) asl(mode AddressingMode) {
	c.rmw(mode, func(v uint8) uint8 {
		c.setFlag(FlagCarry, v&0x80 != 0)
		v <<= 1
		c.setZN(v)
		return v
	})
}

func (c *CPU) lsr(mode AddressingMode) {
	c.rmw(mode, func(v uint8) uint8 {
		c.setFlag(FlagCarry, v&0x01 != 0)
		v >>= 1
		c.setZN(v)
		return v
	})
}

func (c *CPU) rol(mode AddressingMode) {
	c.rmw(mode, func(v uint8) uint8 {
		oldCarry := uint8(0)
		if c.getFlag(FlagCarry) {
			oldCarry = 1
		}
		c.setFlag(FlagCarry, v&0x80 != 0)
		v = v<<1 | oldCarry
		c.setZN(v)
		return v
	})
}

func (c *CPU) ror(mode AddressingMode) {
	c.rmw(mode, func(v uint8) uint8 {
		oldCarry := uint8(0)
		if c.getFlag(FlagCarry) {
			oldCarry = 0x80
		}
		c.setFlag(FlagCarry, v&0x01 != 0)
		v = v>>1 | oldCarry
		c.setZN(v)
		return v
	})
}

// Increments and decrements

func (c *CPU) inc(mode AddressingMode) {
	c.rmw(mode, func(v uint8) uint8 {
		v++
		c.setZN(v)
		return v
	})
}

func (c *CPU) dec(mode AddressingMode) {
	c.rmw(mode, func(v uint8) uint8 {
		v--
		c.setZN(v)
		return v
	})
}

func (c *CPU) inx(AddressingMode) {
	c.read(c.PC)
	c.X++
	c.setZN(c.X)
}

func (c *CPU) dex(AddressingMode) {
	c.read(c.PC)
	c.X--
	c.setZN(c.X)
}

func (c *CPU) iny(AddressingMode) {
	c.read(c.PC)
	c.Y++
	c.setZN(c.Y)
}

func (c *CPU) dey(AddressingMode) {
	c.read(c.PC)
	c.Y--
	c.setZN(c.Y)
}

// Register transfers

func (c *CPU) tax(AddressingMode) {
	c.read(c.PC)
	c.X = c.A
	c.setZN(c.X)
}

func (c *CPU) txa(AddressingMode) {
	c.read(c.PC)
	c.A = c.X
	c.setZN(c.A)
}

func (c *CPU) tay(AddressingMode) {
	c.read(c.PC)
	c.Y = c.A
	c.setZN(c.Y)
}

func (c *CPU) tya(AddressingMode) {
	c.read(c.PC)
	c.A = c.Y
	c.setZN(c.A)
}

func (c *CPU) txs(AddressingMode) {
	c.read(c.PC)
	c.SP = c.X
}

func (c *CPU) tsx(AddressingMode) {
	c.read(c.PC)
	c.X = c.SP
	c.setZN(c.X)
}

// Flag instructions

func (c *CPU) clc(AddressingMode) { c.read(c.PC); c.setFlag(FlagCarry, false) }
func (c *CPU) sec(AddressingMode) { c.read(c.PC); c.setFlag(FlagCarry, true) }
func (c *CPU) cli(AddressingMode) { c.read(c.PC); c.setFlag(FlagInterrupt, false) }
func (c *CPU) sei(AddressingMode) { c.read(c.PC); c.setFlag(FlagInterrupt, true) }
func (c *CPU) clv(AddressingMode) { c.read(c.PC); c.setFlag(FlagOverflow, false) }
func (c *CPU) cld(AddressingMode) { c.read(c.PC); c.setFlag(FlagDecimal, false) }
func (c *CPU) sed(AddressingMode) { c.read(c.PC); c.setFlag(FlagDecimal, true) }

// Stack instructions

func (c *CPU) pha(AddressingMode) {
	c.read(c.PC)
	c.push(c.A)
}

func (c *CPU) pla(AddressingMode) {
	c.read(c.PC)
	c.read(0x0100 | uint16(c.SP))
	c.A = c.pull()
	c.setZN(c.A)
}

func (c *CPU) php(AddressingMode) {
	c.read(c.PC)
	c.push(c.P | FlagBreak | FlagUnused)
}

func (c *CPU) plp(AddressingMode) {
	c.read(c.PC)
	c.read(0x0100 | uint16(c.SP))
	c.P = c.pull()&^FlagBreak | FlagUnused
}

// Branches: +1 cycle when taken, +1 more when the target crosses a page

func (c *CPU) branch(condition bool) {
	offset := int8(c.fetch())
	if !condition {
		return
	}
	c.read(c.PC)
	oldPC := c.PC
	newPC := uint16(int32(oldPC) + int32(offset))
	if oldPC&0xFF00 != newPC&0xFF00 {
		c.read(oldPC&0xFF00 | newPC&0x00FF)
	}
	c.PC = newPC
}

func (c *CPU) bcc(AddressingMode) { c.branch(!c.getFlag(FlagCarry)) }
func (c *CPU) bcs(AddressingMode) { c.branch(c.getFlag(FlagCarry)) }
func (c *CPU) beq(AddressingMode) { c.branch(c.getFlag(FlagZero)) }
func (c *CPU) bne(AddressingMode) { c.branch(!c.getFlag(FlagZero)) }
func (c *CPU) bmi(AddressingMode) { c.branch(c.getFlag(FlagNegative)) }
func (c *CPU) bpl(AddressingMode) { c.branch(!c.getFlag(FlagNegative)) }
func (c *CPU) bvs(AddressingMode) { c.branch(c.getFlag(FlagOverflow)) }
func (c *CPU) bvc(AddressingMode) { c.branch(!c.getFlag(FlagOverflow)) }

// Jumps and calls

func (c *CPU) jmp(mode AddressingMode) {
	c.PC = c.operandAddress(mode, false)
}

func (c *CPU) jsr(AddressingMode) {
	lo := uint16(c.fetch())
	// PC now points at the high operand byte; that address (the last byte of
	// the instruction) is what goes on the stack, and RTS adds one back.
	c.read(0x0100 | uint16(c.SP))
	c.push16(c.PC)
	hi := uint16(c.fetch())
	c.PC = hi<<8 | lo
}

func (c *CPU) rts(AddressingMode) {
	c.read(c.PC)
	c.read(0x0100 | uint16(c.SP))
	c.PC = c.pull16()
	c.read(c.PC)
	c.PC++
}

func (c *CPU) rti(AddressingMode) {
	c.read(c.PC)
	c.read(0x0100 | uint16(c.SP))
	c.P = c.pull()&^FlagBreak | FlagUnused
	c.PC = c.pull16()
}

// BRK pushes the status with the B flag set and vectors through IRQ/BRK.
// The byte after the opcode is fetched and thrown away, making BRK
// effectively two bytes long.
func (c *CPU) brk(AddressingMode) {
	c.fetch()
	c.push16(c.PC)
	c.push(c.P | FlagBreak | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(VectorIRQ)
}

func (c *CPU) nop(AddressingMode) {
	c.read(c.PC)
}

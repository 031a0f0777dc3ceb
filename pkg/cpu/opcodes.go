package cpu

// instruction pairs an addressing-mode tag with an executor. Entries with a
// nil Exec are unofficial opcodes; fetching one surfaces UnknownOpcodeError.
type instruction struct {
	Name string
	Mode AddressingMode
	Exec func(*CPU, AddressingMode)
}

// opcodes is the flat dispatch table for all 151 official opcodes, indexed
// by the fetched byte.
var opcodes = [256]instruction{
	0x00: {"BRK", AddrImplied, (*CPU).brk},
	0x01: {"ORA", AddrIndexedIndirect, (*CPU).ora},
	0x05: {"ORA", AddrZeroPage, (*CPU).ora},
	0x06: {"ASL", AddrZeroPage, (*CPU).asl},
	0x08: {"PHP", AddrImplied, (*CPU).php},
	0x09: {"ORA", AddrImmediate, (*CPU).ora},
	0x0A: {"ASL", AddrAccumulator, (*CPU).asl},
	0x0D: {"ORA", AddrAbsolute, (*CPU).ora},
	0x0E: {"ASL", AddrAbsolute, (*CPU).asl},

	0x10: {"BPL", AddrRelative, (*CPU).bpl},
	0x11: {"ORA", AddrIndirectIndexed, (*CPU).ora},
	0x15: {"ORA", AddrZeroPageX, (*CPU).ora},
	0x16: {"ASL", AddrZeroPageX, (*CPU).asl},
	0x18: {"CLC", AddrImplied, (*CPU).clc},
	0x19: {"ORA", AddrAbsoluteY, (*CPU).ora},
	0x1D: {"ORA", AddrAbsoluteX, (*CPU).ora},
	0x1E: {"ASL", AddrAbsoluteX, (*CPU).asl},

	0x20: {"JSR", AddrAbsolute, (*CPU).jsr},
	0x21: {"AND", AddrIndexedIndirect, (*CPU).and},
	0x24: {"BIT", AddrZeroPage, (*CPU).bit},
	0x25: {"AND", AddrZeroPage, (*CPU).and},
	0x26: {"ROL", AddrZeroPage, (*CPU).rol},
	0x28: {"PLP", AddrImplied, (*CPU).plp},
	0x29: {"AND", AddrImmediate, (*CPU).and},
	0x2A: {"ROL", AddrAccumulator, (*CPU).rol},
	0x2C: {"BIT", AddrAbsolute, (*CPU).bit},
	0x2D: {"AND", AddrAbsolute, (*CPU).and},
	0x2E: {"ROL", AddrAbsolute, (*CPU).rol},

	0x30: {"BMI", AddrRelative, (*CPU).bmi},
	0x31: {"AND", AddrIndirectIndexed, (*CPU).and},
	0x35: {"AND", AddrZeroPageX, (*CPU).and},
	0x36: {"ROL", AddrZeroPageX, (*CPU).rol},
	0x38: {"SEC", AddrImplied, (*CPU).sec},
	0x39: {"AND", AddrAbsoluteY, (*CPU).and},
	0x3D: {"AND", AddrAbsoluteX, (*CPU).and},
	0x3E: {"ROL", AddrAbsoluteX, (*CPU).rol},

	0x40: {"RTI", AddrImplied, (*CPU).rti},
	0x41: {"EOR", AddrIndexedIndirect, (*CPU).eor},
	0x45: {"EOR", AddrZeroPage, (*CPU).eor},
	0x46: {"LSR", AddrZeroPage, (*CPU).lsr},
	0x48: {"PHA", AddrImplied, (*CPU).pha},
	0x49: {"EOR", AddrImmediate, (*CPU).eor},
	0x4A: {"LSR", AddrAccumulator, (*CPU).lsr},
	0x4C: {"JMP", AddrAbsolute, (*CPU).jmp},
	0x4D: {"EOR", AddrAbsolute, (*CPU).eor},
	0x4E: {"LSR", AddrAbsolute, (*CPU).lsr},

	0x50: {"BVC", AddrRelative, (*CPU).bvc},
	0x51: {"EOR", AddrIndirectIndexed, (*CPU).eor},
	0x55: {"EOR", AddrZeroPageX, (*CPU).eor},
	0x56: {"LSR", AddrZeroPageX, (*CPU).lsr},
	0x58: {"CLI", AddrImplied, (*CPU).cli},
	0x59: {"EOR", AddrAbsoluteY, (*CPU).eor},
	0x5D: {"EOR", AddrAbsoluteX, (*CPU).eor},
	0x5E: {"LSR", AddrAbsoluteX, (*CPU).lsr},

	0x60: {"RTS", AddrImplied, (*CPU).rts},
	0x61: {"ADC", AddrIndexedIndirect, (*CPU).adc},
	0x65: {"ADC", AddrZeroPage, (*CPU).adc},
	0x66: {"ROR", AddrZeroPage, (*CPU).ror},
	0x68: {"PLA", AddrImplied, (*CPU).pla},
	0x69: {"ADC", AddrImmediate, (*CPU).adc},
	0x6A: {"ROR", AddrAccumulator, (*CPU).ror},
	0x6C: {"JMP", AddrIndirect, (*CPU).jmp},
	0x6D: {"ADC", AddrAbsolute, (*CPU).adc},
	0x6E: {"ROR", AddrAbsolute, (*CPU).ror},

	0x70: {"BVS", AddrRelative, (*CPU).bvs},
	0x71: {"ADC", AddrIndirectIndexed, (*CPU).adc},
	0x75: {"ADC", AddrZeroPageX, (*CPU).adc},
	0x76: {"ROR", AddrZeroPageX, (*CPU).ror},
	0x78: {"SEI", AddrImplied, (*CPU).sei},
	0x79: {"ADC", AddrAbsoluteY, (*CPU).adc},
	0x7D: {"ADC", AddrAbsoluteX, (*CPU).adc},
	0x7E: {"ROR", AddrAbsoluteX, (*CPU).ror},

	0x81: {"STA", AddrIndexedIndirect, (*CPU).sta},
	0x84: {"STY", AddrZeroPage, (*CPU).sty},
	0x85: {"STA", AddrZeroPage, (*CPU).sta},
	0x86: {"STX", AddrZeroPage, (*CPU).stx},
	0x88: {"DEY", AddrImplied, (*CPU).dey},
	0x8A: {"TXA", AddrImplied, (*CPU).txa},
	0x8C: {"STY", AddrAbsolute, (*CPU).sty},
	0x8D: {"STA", AddrAbsolute, (*CPU).sta},
	0x8E: {"STX", AddrAbsolute, (*CPU).stx},

	0x90: {"BCC", AddrRelative, (*CPU).bcc},
	0x91: {"STA", AddrIndirectIndexed, (*CPU).sta},
	0x94: {"STY", AddrZeroPageX, (*CPU).sty},
	0x95: {"STA", AddrZeroPageX, (*CPU).sta},
	0x96: {"STX", AddrZeroPageY, (*CPU).stx},
	0x98: {"TYA", AddrImplied, (*CPU).tya},
	0x99: {"STA", AddrAbsoluteY, (*CPU).sta},
	0x9A: {"TXS", AddrImplied, (*CPU).txs},
	0x9D: {"STA", AddrAbsoluteX, (*CPU).sta},

	0xA0: {"LDY", AddrImmediate, (*CPU).ldy},
	0xA1: {"LDA", AddrIndexedIndirect, (*CPU).lda},
	0xA2: {"LDX", AddrImmediate, (*CPU).ldx},
	0xA4: {"LDY", AddrZeroPage, (*CPU).ldy},
	0xA5: {"LDA", AddrZeroPage, (*CPU).lda},
	0xA6: {"LDX", AddrZeroPage, (*CPU).ldx},
	0xA8: {"TAY", AddrImplied, (*CPU).tay},
	0xA9: {"LDA", AddrImmediate, (*CPU).lda},
	0xAA: {"TAX", AddrImplied, (*CPU).tax},
	0xAC: {"LDY", AddrAbsolute, (*CPU).ldy},
	0xAD: {"LDA", AddrAbsolute, (*CPU).lda},
	0xAE: {"LDX", AddrAbsolute, (*CPU).ldx},

	0xB0: {"BCS", AddrRelative, (*CPU).bcs},
	0xB1: {"LDA", AddrIndirectIndexed, (*CPU).lda},
	0xB4: {"LDY", AddrZeroPageX, (*CPU).ldy},
	0xB5: {"LDA", AddrZeroPageX, (*CPU).lda},
	0xB6: {"LDX", AddrZeroPageY, (*CPU).ldx},
	0xB8: {"CLV", AddrImplied, (*CPU).clv},
	0xB9: {"LDA", AddrAbsoluteY, (*CPU).lda},
	0xBA: {"TSX", AddrImplied, (*CPU).tsx},
	0xBC: {"LDY", AddrAbsoluteX, (*CPU).ldy},
	0xBD: {"LDA", AddrAbsoluteX, (*CPU).lda},
	0xBE: {"LDX", AddrAbsoluteY, (*CPU).ldx},

	0xC0: {"CPY", AddrImmediate, (*CPU).cpy},
	0xC1: {"CMP", AddrIndexedIndirect, (*CPU).cmp},
	0xC4: {"CPY", AddrZeroPage, (*CPU).cpy},
	0xC5: {"CMP", AddrZeroPage, (*CPU).cmp},
	0xC6: {"DEC", AddrZeroPage, (*CPU).dec},
	0xC8: {"INY", AddrImplied, (*CPU).iny},
	0xC9: {"CMP", AddrImmediate, (*CPU).cmp},
	0xCA: {"DEX", AddrImplied, (*CPU).dex},
	0xCC: {"CPY", AddrAbsolute, (*CPU).cpy},
	0xCD: {"CMP", AddrAbsolute, (*CPU).cmp},
	0xCE: {"DEC", AddrAbsolute, (*CPU).dec},

	0xD0: {"BNE", AddrRelative, (*CPU).bne},
	0xD1: {"CMP", AddrIndirectIndexed, (*CPU).cmp},
	0xD5: {"CMP", AddrZeroPageX, (*CPU).cmp},
	0xD6: {"DEC", AddrZeroPageX, (*CPU).dec},
	0xD8: {"CLD", AddrImplied, (*CPU).cld},
	0xD9: {"CMP", AddrAbsoluteY, (*CPU).cmp},
	0xDD: {"CMP", AddrAbsoluteX, (*CPU).cmp},
	0xDE: {"DEC", AddrAbsoluteX, (*CPU).dec},

	0xE0: {"CPX", AddrImmediate, (*CPU).cpx},
	0xE1: {"SBC", AddrIndexedIndirect, (*CPU).sbc},
	0xE4: {"CPX", AddrZeroPage, (*CPU).cpx},
	0xE5: {"SBC", AddrZeroPage, (*CPU).sbc},
	0xE6: {"INC", AddrZeroPage, (*CPU).inc},
	0xE8: {"INX", AddrImplied, (*CPU).inx},
	0xE9: {"SBC", AddrImmediate, (*CPU).sbc},
	0xEA: {"NOP", AddrImplied, (*CPU).nop},
	0xEC: {"CPX", AddrAbsolute, (*CPU).cpx},
	0xED: {"SBC", AddrAbsolute, (*CPU).sbc},
	0xEE: {"INC", AddrAbsolute, (*CPU).inc},

	0xF0: {"BEQ", AddrRelative, (*CPU).beq},
	0xF1: {"SBC", AddrIndirectIndexed, (*CPU).sbc},
	0xF5: {"SBC", AddrZeroPageX, (*CPU).sbc},
	0xF6: {"INC", AddrZeroPageX, (*CPU).inc},
	0xF8: {"SED", AddrImplied, (*CPU).sed},
	0xF9: {"SBC", AddrAbsoluteY, (*CPU).sbc},
	0xFD: {"SBC", AddrAbsoluteX, (*CPU).sbc},
	0xFE: {"INC", AddrAbsoluteX, (*CPU).inc},
}

// OpcodeName returns the mnemonic for a byte, or "???" for unofficial
// opcodes.
func OpcodeName(opcode uint8) string {
	if opcodes[opcode].Exec == nil {
		return "???"
	}
	return opcodes[opcode].Name
}

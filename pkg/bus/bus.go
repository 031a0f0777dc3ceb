package bus

import (
	"github.com/famigo-emu/famigo/pkg/apu"
	"github.com/famigo-emu/famigo/pkg/cartridge"
	"github.com/famigo-emu/famigo/pkg/cpu"
	"github.com/famigo-emu/famigo/pkg/input"
	"github.com/famigo-emu/famigo/pkg/logger"
	"github.com/famigo-emu/famigo/pkg/ppu"
)

// CPU address map boundaries
const (
	ramMirrorEnd = 0x1FFF // $0000-$07FF RAM, mirrored up to here
	ppuMirrorEnd = 0x3FFF // $2000-$2007 registers, mirrored every 8 bytes
	oamDMAAddr   = 0x4014
	pad0Addr     = 0x4016
	pad1Addr     = 0x4017
	ioEnd        = 0x401F // cartridge space starts past here
)

// Bus is the CPU-side interconnect. Every Read or Write is one machine
// cycle: the address is decoded, then the PPU advances exactly three dots.
// An NMI edge from any of those dots is latched until the CPU samples it at
// its next instruction boundary.
type Bus struct {
	ram [2048]uint8

	ppu   *ppu.PPU
	apu   *apu.APU
	input *input.Controllers
	cart  *cartridge.Cartridge

	cycles  uint64
	dataBus uint8 // last value seen on the data bus, returned for decode misses

	pending cpu.Interrupt
}

// New creates the interconnect over the given components
func New(cart *cartridge.Cartridge, p *ppu.PPU, a *apu.APU, in *input.Controllers) *Bus {
	return &Bus{
		ppu:   p,
		apu:   a,
		input: in,
		cart:  cart,
	}
}

// Cycles returns the machine cycle counter, including DMA stall cycles
func (b *Bus) Cycles() uint64 {
	return b.cycles
}

// TakeInterrupt returns the interrupt latched since the last call and
// clears it
func (b *Bus) TakeInterrupt() cpu.Interrupt {
	out := b.pending
	b.pending = cpu.InterruptNone
	return out
}

// tick advances the machine one CPU cycle: three PPU dots
func (b *Bus) tick() {
	b.cycles++
	for i := 0; i < 3; i++ {
		if b.ppu.Step() {
			b.pending = cpu.InterruptNMI
		}
	}
}

// Read decodes a CPU read and costs one cycle
func (b *Bus) Read(addr uint16) uint8 {
	value := b.decodeRead(addr)
	b.dataBus = value
	b.tick()
	return value
}

// Write decodes a CPU write and costs one cycle. A write to $4014 starts an
// OAM DMA transfer, stalling the CPU while the PPU keeps running.
func (b *Bus) Write(addr uint16, value uint8) {
	b.dataBus = value

	if addr == oamDMAAddr {
		b.tick()
		b.oamDMA(value)
		return
	}

	b.decodeWrite(addr, value)
	b.tick()
}

func (b *Bus) decodeRead(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr&0x07FF]
	case addr <= ppuMirrorEnd:
		return b.ppu.ReadRegister(addr)
	case addr == pad0Addr:
		return b.input.Read(0)
	case addr == pad1Addr:
		return b.input.Read(1)
	case addr == 0x4015:
		return b.apu.ReadRegister(addr)
	case addr <= ioEnd:
		// Write-only or unmapped I/O reads back the data bus
		return b.dataBus
	default:
		return b.cart.ReadPRG(addr)
	}
}

func (b *Bus) decodeWrite(addr uint16, value uint8) {
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr&0x07FF] = value
	case addr <= ppuMirrorEnd:
		b.ppu.WriteRegister(addr, value)
	case addr == pad0Addr:
		b.input.Write(value)
	case addr == pad1Addr:
		// $4017 write is the APU frame counter, not the second pad
		b.apu.WriteRegister(addr, value)
	case addr <= 0x4015:
		b.apu.WriteRegister(addr, value)
	case addr <= ioEnd:
		// Unmapped I/O: ignored
	default:
		b.cart.WritePRG(addr, value)
	}
}

// oamDMA copies 256 bytes from CPU page $PP00 into OAM through the $2004
// port, starting at the current OAM pointer. The transfer stalls the CPU
// for 513 cycles, or 514 when it begins on an odd cycle; each transfer
// cycle still fans out to the PPU.
func (b *Bus) oamDMA(page uint8) {
	logger.LogBus("OAM DMA from $%02X00", page)

	// Alignment: one wait cycle, two if the write landed on an odd cycle
	if b.cycles%2 == 1 {
		b.tick()
	}
	b.tick()

	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		value := b.decodeRead(base + uint16(i))
		b.dataBus = value
		b.tick()
		b.ppu.WriteDMA(value)
		b.tick()
	}
}

// LoadRAM copies data into internal RAM starting at the given offset;
// intended for tests that need code in place without a cartridge.
func (b *Bus) LoadRAM(offset int, data []byte) {
	copy(b.ram[offset:], data)
}

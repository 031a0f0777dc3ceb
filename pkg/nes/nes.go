package nes

import (
	"io"

	"github.com/famigo-emu/famigo/pkg/apu"
	"github.com/famigo-emu/famigo/pkg/bus"
	"github.com/famigo-emu/famigo/pkg/cartridge"
	"github.com/famigo-emu/famigo/pkg/cpu"
	"github.com/famigo-emu/famigo/pkg/input"
	"github.com/famigo-emu/famigo/pkg/ppu"
)

// Console owns the whole core: the bus owns the cartridge, and each Step
// borrows the CPU and bus together for the duration of one instruction.
// It is single-threaded; the host drives it by calling Step in a loop.
type Console struct {
	CPU   *cpu.CPU
	PPU   *ppu.PPU
	APU   *apu.APU
	Bus   *bus.Bus
	Input *input.Controllers
	Cart  *cartridge.Cartridge
}

// New wires a console around a loaded cartridge and runs the reset
// sequence, leaving PC at the cartridge's reset vector.
func New(cart *cartridge.Cartridge) *Console {
	n := &Console{
		Cart:  cart,
		APU:   apu.New(),
		Input: input.New(),
	}
	n.PPU = ppu.New(cart)
	n.Bus = bus.New(cart, n.PPU, n.APU, n.Input)
	n.CPU = cpu.New(n.Bus)
	n.CPU.Reset()
	return n
}

// Load builds a console from an iNES image
func Load(r io.Reader) (*Console, error) {
	cart, err := cartridge.LoadFromReader(r)
	if err != nil {
		return nil, err
	}
	return New(cart), nil
}

// LoadBytes builds a console from an in-memory iNES image
func LoadBytes(data []byte) (*Console, error) {
	cart, err := cartridge.LoadFromBytes(data)
	if err != nil {
		return nil, err
	}
	return New(cart), nil
}

// LoadFile builds a console from an iNES file on disk
func LoadFile(path string) (*Console, error) {
	cart, err := cartridge.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return New(cart), nil
}

// Reset presses the reset button
func (n *Console) Reset() {
	n.PPU.Reset()
	n.APU.Reset()
	n.CPU.Reset()
}

// Step executes one CPU instruction (1-8 cycles, plus up to 514 for a DMA
// stall), with the PPU advancing three dots per cycle underneath. It
// returns the interrupt edge produced during the instruction: an Nmi
// return means the frame just ended and the framebuffer is ready to
// present. An UnknownOpcodeError terminates the session.
func (n *Console) Step() (cpu.Interrupt, error) {
	if err := n.CPU.Step(); err != nil {
		return cpu.InterruptNone, err
	}

	intr := n.Bus.TakeInterrupt()
	switch intr {
	case cpu.InterruptNMI:
		n.CPU.TriggerNMI()
	case cpu.InterruptIRQ:
		n.CPU.TriggerIRQ()
	}
	return intr, nil
}

// StepFrame runs until the vblank NMI edge, i.e. one video frame
func (n *Console) StepFrame() error {
	// A frame is ~29780 CPU cycles; the bound only guards against ROMs that
	// disable NMI entirely.
	for i := 0; i < 100000; i++ {
		intr, err := n.Step()
		if err != nil {
			return err
		}
		if intr == cpu.InterruptNMI {
			return nil
		}
	}
	return nil
}

// Framebuffer returns the 256x240 RGB24 pixel buffer. The host owns it
// between frames and must not read it while Step is running.
func (n *Console) Framebuffer() []uint8 {
	return n.PPU.Framebuffer()
}

// Press marks a controller button down
func (n *Console) Press(pad int, button input.Button) {
	n.Input.Press(pad, button)
}

// Release marks a controller button up
func (n *Console) Release(pad int, button input.Button) {
	n.Input.Release(pad, button)
}

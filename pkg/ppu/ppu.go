package ppu

import (
	"github.com/famigo-emu/famigo/pkg/cartridge"
)

// Cart is the PPU's view of the cartridge: pattern table memory plus the
// board's nametable mirroring arrangement.
type Cart interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, value uint8)
	Mirroring() cartridge.MirroringMode
}

// Screen geometry
const (
	ScreenWidth  = 256
	ScreenHeight = 240

	dotsPerScanline   = 341
	scanlinesPerFrame = 262

	scanlinePostRender = 240
	scanlineVBlank     = 241
	scanlinePreRender  = 261
)

// PPUCTRL flags
const (
	CtrlNametable   = 0x03 // Base nametable address
	CtrlIncrement   = 0x04 // VRAM address increment: 0=+1, 1=+32
	CtrlSpriteTable = 0x08 // Sprite pattern table (8x8 only)
	CtrlBGTable     = 0x10 // Background pattern table
	CtrlSpriteSize  = 0x20 // 0: 8x8, 1: 8x16
	CtrlNMIEnable   = 0x80 // Generate NMI at start of vblank
)

// PPUMASK flags
const (
	MaskGreyscale  = 0x01
	MaskBGLeft     = 0x02 // Show background in leftmost 8 pixels
	MaskSpriteLeft = 0x04 // Show sprites in leftmost 8 pixels
	MaskBGShow     = 0x08
	MaskSpriteShow = 0x10
)

// PPUSTATUS flags
const (
	StatusSpriteOverflow = 0x20
	StatusSprite0Hit     = 0x40
	StatusVBlank         = 0x80
)

// PPU represents the picture processing unit: a per-dot state machine
// running three dots per CPU cycle.
type PPU struct {
	// Register file
	Ctrl    uint8
	Mask    uint8
	Status  uint8
	OAMAddr uint8

	// Internal (loopy) registers
	v uint16 // current VRAM address (15 bits)
	t uint16 // temporary VRAM address
	x uint8  // fine X scroll (3 bits)
	w uint8  // shared $2005/$2006 write latch: 0=first write, 1=second

	readBuffer uint8 // delayed $2007 read buffer
	openBus    uint8 // last value driven onto the register bus

	// Storage
	nametables [4096]uint8 // two 1KB banks; all four only for four-screen
	palette    [32]uint8
	OAM        [256]uint8

	// Timing
	Dot      int
	Scanline int
	Frame    uint64

	// Background pipeline
	nametableByte uint8
	attributeByte uint8
	lowTileByte   uint8
	highTileByte  uint8
	lowTileShift  uint16
	highTileShift uint16
	lowAttrShift  uint16
	highAttrShift uint16

	// Sprite pipeline: up to eight units latched for the scanline in flight
	sprites     [8]spriteUnit
	spriteCount int

	framebuffer [ScreenWidth * ScreenHeight * 3]uint8

	cart Cart
}

// New creates a new PPU attached to the given cartridge
func New(cart Cart) *PPU {
	return &PPU{cart: cart}
}

// Reset returns the PPU to its power-up state. Nametable and palette
// contents are left alone, as on hardware.
func (p *PPU) Reset() {
	p.Ctrl = 0
	p.Mask = 0
	p.Status = 0
	p.OAMAddr = 0
	p.v = 0
	p.t = 0
	p.x = 0
	p.w = 0
	p.readBuffer = 0
	p.Dot = 0
	p.Scanline = 0
	p.Frame = 0
	p.spriteCount = 0
}

// Framebuffer returns the RGB24 pixel buffer. The host must not read it
// while the console is stepping.
func (p *PPU) Framebuffer() []uint8 {
	return p.framebuffer[:]
}

func (p *PPU) renderingEnabled() bool {
	return p.Mask&(MaskBGShow|MaskSpriteShow) != 0
}

// Step advances the PPU by one dot. It returns true when this dot produced
// the vblank NMI edge: the gated signal (vblank AND Ctrl bit 7) goes high
// only at scanline 241 dot 1, so enabling NMI mid-vblank does not fire one.
func (p *PPU) Step() bool {
	nmi := false

	rendering := p.renderingEnabled()
	preRender := p.Scanline == scanlinePreRender
	visibleLine := p.Scanline < scanlinePostRender
	fetchLine := visibleLine || preRender
	visibleDot := p.Dot >= 1 && p.Dot <= 256
	prefetchDot := p.Dot >= 321 && p.Dot <= 336

	if rendering && visibleLine && visibleDot {
		p.renderPixel()
	}

	if rendering && fetchLine {
		if visibleDot || prefetchDot {
			p.shiftBackground()
			p.fetchBackground()
		}

		switch {
		case p.Dot == 256:
			p.incrementY()
		case p.Dot == 257:
			p.copyX()
		case preRender && p.Dot >= 280 && p.Dot <= 304:
			p.copyY()
		}

		// Sprites for the next scanline: evaluate, then latch patterns
		// during the dot 257-320 fetch window.
		if p.Dot == 257 {
			if visibleLine {
				p.evaluateSprites()
			} else {
				p.spriteCount = 0
			}
		}
	}

	// Status flag edges
	if p.Scanline == scanlineVBlank && p.Dot == 1 {
		p.Status |= StatusVBlank
		if p.Ctrl&CtrlNMIEnable != 0 {
			nmi = true
		}
	}
	if preRender && p.Dot == 1 {
		p.Status &^= StatusVBlank | StatusSprite0Hit | StatusSpriteOverflow
	}

	p.Dot++
	if p.Dot == dotsPerScanline {
		p.Dot = 0
		p.Scanline++
		if p.Scanline == scanlinesPerFrame {
			p.Scanline = 0
			p.Frame++
		}
	}

	return nmi
}

// shiftBackground advances the four background shift registers one bit
func (p *PPU) shiftBackground() {
	p.lowTileShift <<= 1
	p.highTileShift <<= 1
	p.lowAttrShift <<= 1
	p.highAttrShift <<= 1
}

// fetchBackground runs the fixed 8-dot tile fetch cadence: nametable byte,
// attribute byte, pattern low, pattern high, then reload the shifters.
func (p *PPU) fetchBackground() {
	switch (p.Dot - 1) % 8 {
	case 1:
		p.nametableByte = p.readVRAM(0x2000 | p.v&0x0FFF)
	case 3:
		attrAddr := 0x23C0 | p.v&0x0C00 | p.v>>4&0x38 | p.v>>2&0x07
		// Select the 2-bit group for this tile's quadrant of the byte
		shift := (p.v >> 4 & 0x04) | (p.v & 0x02)
		p.attributeByte = p.readVRAM(attrAddr) >> shift & 0x03
	case 5:
		fineY := p.v >> 12 & 0x07
		p.lowTileByte = p.readVRAM(p.backgroundTable() + uint16(p.nametableByte)*16 + fineY)
	case 7:
		fineY := p.v >> 12 & 0x07
		p.highTileByte = p.readVRAM(p.backgroundTable() + uint16(p.nametableByte)*16 + fineY + 8)

		p.lowTileShift = p.lowTileShift&0xFF00 | uint16(p.lowTileByte)
		p.highTileShift = p.highTileShift&0xFF00 | uint16(p.highTileByte)
		p.lowAttrShift = p.lowAttrShift&0xFF00 | uint16(p.attributeByte&0x01)*0xFF
		p.highAttrShift = p.highAttrShift&0xFF00 | uint16(p.attributeByte>>1)*0xFF

		p.incrementX()
	}
}

// backgroundPixel returns the 2-bit pattern index and 2-bit attribute for
// the current dot, honoring the fine-x tap and left-column clipping.
func (p *PPU) backgroundPixel() (pixel, attr uint8) {
	x := p.Dot - 1
	if p.Mask&MaskBGShow == 0 || (x < 8 && p.Mask&MaskBGLeft == 0) {
		return 0, 0
	}

	tap := 15 - p.x
	pixel = uint8(p.highTileShift>>tap&0x01)<<1 | uint8(p.lowTileShift>>tap&0x01)
	attr = uint8(p.highAttrShift>>tap&0x01)<<1 | uint8(p.lowAttrShift>>tap&0x01)
	return pixel, attr
}

// renderPixel multiplexes background and sprite pixels into the framebuffer
func (p *PPU) renderPixel() {
	x := p.Dot - 1
	y := p.Scanline

	bgPixel, bgAttr := p.backgroundPixel()
	spPixel, spAttr, spZero := p.spritePixel()

	var paletteAddr uint16
	switch {
	case bgPixel == 0 && spPixel == 0:
		paletteAddr = 0
	case bgPixel == 0:
		paletteAddr = 0x10 | uint16(spAttr&0x03)<<2 | uint16(spPixel)
	case spPixel == 0:
		paletteAddr = uint16(bgAttr)<<2 | uint16(bgPixel)
	default:
		if spZero && x >= 1 && x <= 254 {
			p.Status |= StatusSprite0Hit
		}
		if spAttr&spriteAttrBehind == 0 {
			paletteAddr = 0x10 | uint16(spAttr&0x03)<<2 | uint16(spPixel)
		} else {
			paletteAddr = uint16(bgAttr)<<2 | uint16(bgPixel)
		}
	}

	index := p.readPalette(paletteAddr)
	if p.Mask&MaskGreyscale != 0 {
		index &= 0x30
	}

	rgb := masterPalette[index&0x3F]
	offset := (y*ScreenWidth + x) * 3
	p.framebuffer[offset] = rgb[0]
	p.framebuffer[offset+1] = rgb[1]
	p.framebuffer[offset+2] = rgb[2]
}

// loopy register helpers

// incrementX advances coarse X, wrapping into the neighboring nametable
func (p *PPU) incrementX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

// incrementY advances fine Y, overflowing into coarse Y and wrapping the
// vertical nametable at row 29
func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}

	p.v &^= 0x7000
	coarseY := p.v >> 5 & 0x1F
	switch coarseY {
	case 29:
		coarseY = 0
		p.v ^= 0x0800
	case 31:
		coarseY = 0
	default:
		coarseY++
	}
	p.v = p.v&^0x03E0 | coarseY<<5
}

// copyX copies the horizontal bits of t into v at dot 257
func (p *PPU) copyX() {
	p.v = p.v&^0x041F | p.t&0x041F
}

// copyY copies the vertical bits of t into v during pre-render dots 280-304
func (p *PPU) copyY() {
	p.v = p.v&^0x7BE0 | p.t&0x7BE0
}

func (p *PPU) backgroundTable() uint16 {
	if p.Ctrl&CtrlBGTable != 0 {
		return 0x1000
	}
	return 0x0000
}

func (p *PPU) spriteTable() uint16 {
	if p.Ctrl&CtrlSpriteTable != 0 {
		return 0x1000
	}
	return 0x0000
}

func (p *PPU) spriteHeight() int {
	if p.Ctrl&CtrlSpriteSize != 0 {
		return 16
	}
	return 8
}

package ppu

import "testing"

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	p, _ := newTestPPU()
	p.Status |= StatusVBlank
	p.w = 1

	value := p.ReadRegister(RegStatus)
	if value&StatusVBlank == 0 {
		t.Error("first status read should report vblank")
	}
	if p.w != 0 {
		t.Error("status read must reset the write latch")
	}

	value = p.ReadRegister(RegStatus)
	if value&StatusVBlank != 0 {
		t.Error("second status read should report vblank clear")
	}
}

// TestWriteLatchReset covers the shared $2005/$2006 latch: a $2002 read in
// the middle of an address write pair makes the next write a first write
// again.
func TestWriteLatchReset(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(RegAddr, 0x21) // first write
	p.ReadRegister(RegStatus)      // resets the latch

	p.WriteRegister(RegAddr, 0x3F) // first write again
	p.WriteRegister(RegAddr, 0x00)
	if p.v != 0x3F00 {
		t.Errorf("v=$%04X, want $3F00", p.v)
	}
}

func TestScrollWrites(t *testing.T) {
	p, _ := newTestPPU()

	// Classic $2005 pair: $7D then $5E
	p.WriteRegister(RegScroll, 0x7D)
	if p.x != 0x05 {
		t.Errorf("fine x=%d, want 5", p.x)
	}
	if p.t&0x001F != 0x0F {
		t.Errorf("coarse x in t=$%04X, want $0F", p.t&0x001F)
	}

	p.WriteRegister(RegScroll, 0x5E)
	if p.t != 0x616F {
		t.Errorf("t=$%04X, want $616F", p.t)
	}
	if p.w != 0 {
		t.Error("second scroll write should clear the latch")
	}
}

func TestAddrWrites(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(RegAddr, 0x3F)
	if p.v != 0 {
		t.Error("v must not change until the second address write")
	}

	p.WriteRegister(RegAddr, 0xF0)
	if p.v != 0x3FF0 {
		t.Errorf("v=$%04X, want $3FF0", p.v)
	}
	if p.t != 0x3FF0 {
		t.Errorf("t=$%04X, want $3FF0", p.t)
	}
}

func TestAddrWriteClearsBit14(t *testing.T) {
	p, _ := newTestPPU()
	p.t = 0x7FFF

	p.WriteRegister(RegAddr, 0xFF) // only the low 6 bits land in t's high byte
	p.WriteRegister(RegAddr, 0xFF)
	if p.v&0x4000 != 0 {
		t.Errorf("bit 14 must be cleared by the first $2006 write, v=$%04X", p.v)
	}
}

func setVRAMAddr(p *PPU, addr uint16) {
	p.ReadRegister(RegStatus) // known latch state
	p.WriteRegister(RegAddr, uint8(addr>>8))
	p.WriteRegister(RegAddr, uint8(addr))
}

func TestDataReadBuffered(t *testing.T) {
	p, cart := newTestPPU()
	cart.chr[0] = 0xAA
	cart.chr[1] = 0xBB

	setVRAMAddr(p, 0x0000)

	// Non-palette $2007 reads are one read behind
	first := p.ReadRegister(RegData)
	second := p.ReadRegister(RegData)
	third := p.ReadRegister(RegData)

	if first == 0xAA {
		t.Error("first read should return the stale buffer, not fresh data")
	}
	if second != 0xAA || third != 0xBB {
		t.Errorf("buffered reads: got %02X/%02X, want AA/BB", second, third)
	}
}

func TestDataReadPaletteBypassesBuffer(t *testing.T) {
	p, _ := newTestPPU()
	p.palette[0] = 0x21
	p.writeVRAM(0x2F00, 0x5A) // nametable byte underneath $3F00

	setVRAMAddr(p, 0x3F00)

	if got := p.ReadRegister(RegData); got != 0x21 {
		t.Errorf("palette read: got %02X, want 21 (immediate)", got)
	}
	if p.readBuffer != 0x5A {
		t.Errorf("buffer should hold the underlying nametable byte, got %02X", p.readBuffer)
	}
}

func TestDataIncrement(t *testing.T) {
	p, _ := newTestPPU()

	setVRAMAddr(p, 0x2000)
	p.ReadRegister(RegData)
	if p.v != 0x2001 {
		t.Errorf("v=$%04X, want $2001 (+1)", p.v)
	}

	p.WriteRegister(RegCtrl, CtrlIncrement)
	p.ReadRegister(RegData)
	if p.v != 0x2021 {
		t.Errorf("v=$%04X, want $2021 (+32)", p.v)
	}
}

func TestDataWrite(t *testing.T) {
	p, _ := newTestPPU()

	setVRAMAddr(p, 0x2155)
	p.WriteRegister(RegData, 0x42)
	if got := p.readVRAM(0x2155); got != 0x42 {
		t.Errorf("nametable byte: got %02X, want 42", got)
	}
	if p.v != 0x2156 {
		t.Errorf("v=$%04X, want $2156", p.v)
	}
}

func TestOAMAddrData(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(RegOAMAddr, 0x10)
	p.WriteRegister(RegOAMData, 0xAA)
	p.WriteRegister(RegOAMData, 0xBB)

	if p.OAM[0x10] != 0xAA || p.OAM[0x11] != 0xBB {
		t.Error("OAM writes should store at the pointer and increment it")
	}

	// Reads do not increment
	p.WriteRegister(RegOAMAddr, 0x10)
	if p.ReadRegister(RegOAMData) != 0xAA {
		t.Error("OAM read at pointer")
	}
	if p.ReadRegister(RegOAMData) != 0xAA {
		t.Error("OAM reads must not increment the pointer")
	}
}

func TestRegisterMirroring(t *testing.T) {
	p, _ := newTestPPU()
	p.Status |= StatusVBlank

	// $2002 is mirrored every 8 bytes through $3FFF
	if p.ReadRegister(0x200A)&StatusVBlank == 0 {
		t.Error("$200A should mirror $2002")
	}
	p.Status |= StatusVBlank
	if p.ReadRegister(0x3FFA)&StatusVBlank == 0 {
		t.Error("$3FFA should mirror $2002")
	}
}

func TestCtrlWriteUpdatesT(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(RegCtrl, 0x03)
	if p.t&0x0C00 != 0x0C00 {
		t.Errorf("nametable bits of t=$%04X, want both set", p.t)
	}
}

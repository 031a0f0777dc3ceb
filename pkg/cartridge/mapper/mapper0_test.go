package mapper

import "testing"

func TestMapper0NROM128Mirroring(t *testing.T) {
	data := newTestData(1, 1, false)
	data.PRGROM[0x0123] = 0xAB
	m := NewMapper0(data)

	// 16KB image: $C000-$FFFF mirrors $8000-$BFFF
	if m.ReadPRG(0x8123) != 0xAB {
		t.Error("Expected PRG read at $8123")
	}
	if m.ReadPRG(0xC123) != 0xAB {
		t.Error("NROM-128 must mirror the single bank at $C000")
	}
}

func TestMapper0NROM256Flat(t *testing.T) {
	data := newTestData(2, 1, false)
	m := NewMapper0(data)

	// 32KB image: both halves map linearly
	if m.ReadPRG(0x8000) != 0 {
		t.Error("Expected bank 0 at $8000")
	}
	if m.ReadPRG(0xC000) != 1 {
		t.Error("Expected bank 1 at $C000")
	}
}

func TestMapper0ROMWritesIgnored(t *testing.T) {
	data := newTestData(1, 1, false)
	m := NewMapper0(data)

	before := m.ReadPRG(0x8000)
	m.WritePRG(0x8000, 0xFF)
	if m.ReadPRG(0x8000) != before {
		t.Error("PRG ROM writes must be ignored")
	}

	before = m.ReadCHR(0x0000)
	m.WriteCHR(0x0000, 0xFF)
	if m.ReadCHR(0x0000) != before {
		t.Error("CHR ROM writes must be ignored")
	}
}

func TestMapper0PRGRAM(t *testing.T) {
	data := newTestData(1, 1, false)
	data.PRGRAM = make([]uint8, 8192)
	m := NewMapper0(data)

	m.WritePRG(0x6000, 0x12)
	m.WritePRG(0x7FFF, 0x34)
	if m.ReadPRG(0x6000) != 0x12 || m.ReadPRG(0x7FFF) != 0x34 {
		t.Error("PRG RAM should be readable and writable")
	}
}

func TestMapper0CHRRAM(t *testing.T) {
	data := newTestData(1, 0, true)
	m := NewMapper0(data)

	m.WriteCHR(0x1FFF, 0x56)
	if m.ReadCHR(0x1FFF) != 0x56 {
		t.Error("CHR RAM should be writable")
	}
}

func TestUnsupportedMapperNumber(t *testing.T) {
	if _, err := New(99, newTestData(1, 1, false)); err == nil {
		t.Error("Expected error for mapper 99")
	}
}

package mapper

import "testing"

func TestMapper2BankSwitching(t *testing.T) {
	data := newTestData(8, 0, true)
	m := NewMapper2(data)

	// Bank 0 selected at power-up
	if m.ReadPRG(0x8000) != 0 {
		t.Errorf("Expected bank 0, got %d", m.ReadPRG(0x8000))
	}

	// Any write into $8000-$FFFF selects via the low three bits
	m.WritePRG(0x8000, 0x03)
	if m.ReadPRG(0x8000) != 3 {
		t.Errorf("Expected bank 3, got %d", m.ReadPRG(0x8000))
	}

	m.WritePRG(0xFFFF, 0x05)
	if m.ReadPRG(0x9234) != 5 {
		t.Errorf("Expected bank 5, got %d", m.ReadPRG(0x9234))
	}

	// Only the low three bits participate
	m.WritePRG(0x8000, 0xFA)
	if m.ReadPRG(0x8000) != 2 {
		t.Errorf("Expected bank 2 (from $FA & 7), got %d", m.ReadPRG(0x8000))
	}
}

func TestMapper2FixedLastBank(t *testing.T) {
	data := newTestData(8, 0, true)
	m := NewMapper2(data)

	if m.ReadPRG(0xC000) != 7 {
		t.Errorf("Expected last bank at $C000, got %d", m.ReadPRG(0xC000))
	}

	// The fixed window must not move with the bank register
	m.WritePRG(0x8000, 0x02)
	if m.ReadPRG(0xC000) != 7 {
		t.Errorf("Last bank must stay fixed, got %d", m.ReadPRG(0xC000))
	}
	if m.ReadPRG(0xFFFF) != 7 {
		t.Errorf("Last bank must cover $FFFF, got %d", m.ReadPRG(0xFFFF))
	}
}

func TestMapper2CHRRAM(t *testing.T) {
	data := newTestData(8, 0, true)
	m := NewMapper2(data)

	m.WriteCHR(0x0000, 0x11)
	m.WriteCHR(0x1FFF, 0x22)
	if m.ReadCHR(0x0000) != 0x11 || m.ReadCHR(0x1FFF) != 0x22 {
		t.Error("UxROM CHR RAM should be writable")
	}
}

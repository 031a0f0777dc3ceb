package cartridge

import (
	"errors"
	"testing"
)

// buildINES assembles a minimal iNES image
func buildINES(prgBanks, chrBanks uint8, flags6, flags7 uint8) []byte {
	image := make([]byte, 0, 16+int(prgBanks)*16384+int(chrBanks)*8192)
	header := []byte{'N', 'E', 'S', 0x1A, prgBanks, chrBanks, flags6, flags7,
		0, 0, 0, 0, 0, 0, 0, 0}
	image = append(image, header...)

	prg := make([]byte, int(prgBanks)*16384)
	for i := range prg {
		prg[i] = uint8(i)
	}
	image = append(image, prg...)

	chr := make([]byte, int(chrBanks)*8192)
	for i := range chr {
		chr[i] = uint8(i ^ 0xFF)
	}
	image = append(image, chr...)

	return image
}

func TestLoadValidImage(t *testing.T) {
	cart, err := LoadFromBytes(buildINES(1, 1, 0x00, 0x00))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}

	if len(cart.PRGROM) != 16384 {
		t.Errorf("Expected 16KB PRG, got %d", len(cart.PRGROM))
	}
	if len(cart.CHRROM) != 8192 {
		t.Errorf("Expected 8KB CHR, got %d", len(cart.CHRROM))
	}
	if cart.MapperNum != 0 {
		t.Errorf("Expected mapper 0, got %d", cart.MapperNum)
	}
	if cart.Mirroring() != MirroringHorizontal {
		t.Errorf("Expected horizontal mirroring, got %d", cart.Mirroring())
	}
}

func TestLoadBadMagic(t *testing.T) {
	image := buildINES(1, 1, 0x00, 0x00)
	image[0] = 'X'

	_, err := LoadFromBytes(image)
	if !errors.Is(err, ErrBadMagic) {
		t.Errorf("Expected ErrBadMagic, got %v", err)
	}
}

func TestLoadShortFile(t *testing.T) {
	tests := []struct {
		name string
		trim func([]byte) []byte
	}{
		{"truncated header", func(b []byte) []byte { return b[:10] }},
		{"missing PRG", func(b []byte) []byte { return b[:16+100] }},
		{"missing CHR", func(b []byte) []byte { return b[:16+16384+100] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes(tt.trim(buildINES(1, 1, 0x00, 0x00)))
			if !errors.Is(err, ErrShortFile) {
				t.Errorf("Expected ErrShortFile, got %v", err)
			}
		})
	}
}

func TestLoadUnsupportedMapper(t *testing.T) {
	// Mapper 4 = flags6 high nibble $4
	_, err := LoadFromBytes(buildINES(1, 1, 0x40, 0x00))

	var unsupported *UnsupportedMapperError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected UnsupportedMapperError, got %v", err)
	}
	if unsupported.Mapper != 4 {
		t.Errorf("Expected mapper 4 in error, got %d", unsupported.Mapper)
	}
}

func TestMapperNumberNibbles(t *testing.T) {
	// flags6 high nibble is the low nibble of the mapper number, flags7
	// high nibble the high nibble: $20 | $0 -> mapper 2
	cart, err := LoadFromBytes(buildINES(2, 0, 0x20, 0x00))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if cart.MapperNum != 2 {
		t.Errorf("Expected mapper 2, got %d", cart.MapperNum)
	}
}

func TestTrainerSkipped(t *testing.T) {
	image := buildINES(1, 1, 0x04, 0x00)
	// Splice a 512-byte trainer between header and PRG
	withTrainer := append([]byte{}, image[:16]...)
	withTrainer = append(withTrainer, make([]byte, 512)...)
	withTrainer = append(withTrainer, image[16:]...)

	cart, err := LoadFromBytes(withTrainer)
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	// PRG fill pattern starts at 0 when the trainer was skipped correctly
	if cart.PRGROM[0] != 0 || cart.PRGROM[1] != 1 {
		t.Errorf("Trainer not skipped: PRG starts %02X %02X", cart.PRGROM[0], cart.PRGROM[1])
	}
}

func TestMirroringFlags(t *testing.T) {
	tests := []struct {
		flags6 uint8
		want   MirroringMode
	}{
		{0x00, MirroringHorizontal},
		{0x01, MirroringVertical},
		{0x08, MirroringFourScreen},
		{0x09, MirroringFourScreen}, // four-screen wins over the mirror bit
	}

	for _, tt := range tests {
		cart, err := LoadFromBytes(buildINES(1, 1, tt.flags6, 0x00))
		if err != nil {
			t.Fatalf("LoadFromBytes failed: %v", err)
		}
		if cart.Mirroring() != tt.want {
			t.Errorf("flags6=$%02X: expected mirroring %d, got %d", tt.flags6, tt.want, cart.Mirroring())
		}
	}
}

func TestCHRRAMAllocated(t *testing.T) {
	cart, err := LoadFromBytes(buildINES(1, 0, 0x00, 0x00))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if len(cart.CHRRAM) != 8192 {
		t.Errorf("Expected 8KB CHR RAM, got %d", len(cart.CHRRAM))
	}

	cart.WriteCHR(0x1000, 0x5A)
	if cart.ReadCHR(0x1000) != 0x5A {
		t.Error("CHR RAM should be writable")
	}
}

func TestPRGRAMWithBatteryFlag(t *testing.T) {
	cart, err := LoadFromBytes(buildINES(1, 1, 0x02, 0x00))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}

	cart.WritePRG(0x6123, 0x77)
	if cart.ReadPRG(0x6123) != 0x77 {
		t.Error("PRG RAM at $6000 should be readable and writable")
	}
}

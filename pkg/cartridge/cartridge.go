package cartridge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/famigo-emu/famigo/pkg/cartridge/mapper"
	"github.com/famigo-emu/famigo/pkg/logger"
)

// Load errors. UnsupportedMapperError carries the mapper number so the host
// can report exactly which board the image wants.
var (
	ErrBadMagic  = errors.New("invalid iNES magic number")
	ErrShortFile = errors.New("iNES file truncated")
)

// UnsupportedMapperError is returned when the header names a mapper this
// emulator does not implement.
type UnsupportedMapperError struct {
	Mapper uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper: %d", e.Mapper)
}

// MirroringMode represents the nametable mirroring arrangement
type MirroringMode int

const (
	MirroringHorizontal MirroringMode = iota
	MirroringVertical
	MirroringSingleScreenLo
	MirroringSingleScreenHi
	MirroringFourScreen
)

// iNESHeader represents the 16-byte iNES file header
type iNESHeader struct {
	Magic      [4]uint8 // "NES\x1A"
	PRGROMSize uint8    // Size of PRG ROM in 16KB units
	CHRROMSize uint8    // Size of CHR ROM in 8KB units
	Flags6     uint8    // Mapper low nibble, mirroring, battery, trainer
	Flags7     uint8    // Mapper high nibble
	Padding    [8]uint8 // Unused
}

// Cartridge represents a loaded NES cartridge
type Cartridge struct {
	PRGROM []uint8
	CHRROM []uint8
	PRGRAM []uint8
	CHRRAM []uint8

	Header    iNESHeader
	MapperNum uint8
	Mapper    mapper.Mapper

	mirroring MirroringMode
}

const (
	prgBankSize = 16384
	chrBankSize = 8192
	trainerSize = 512
)

// LoadFromReader loads a cartridge from an iNES image
func LoadFromReader(reader io.Reader) (*Cartridge, error) {
	cart := &Cartridge{}

	if err := cart.readHeader(reader); err != nil {
		return nil, err
	}

	if string(cart.Header.Magic[:]) != "NES\x1A" {
		return nil, ErrBadMagic
	}

	// Trainer data is not used; skip it when present
	if cart.Header.Flags6&0x04 != 0 {
		trainer := make([]uint8, trainerSize)
		if _, err := io.ReadFull(reader, trainer); err != nil {
			return nil, ErrShortFile
		}
	}

	cart.PRGROM = make([]uint8, int(cart.Header.PRGROMSize)*prgBankSize)
	if _, err := io.ReadFull(reader, cart.PRGROM); err != nil {
		return nil, ErrShortFile
	}

	if cart.Header.CHRROMSize > 0 {
		cart.CHRROM = make([]uint8, int(cart.Header.CHRROMSize)*chrBankSize)
		if _, err := io.ReadFull(reader, cart.CHRROM); err != nil {
			return nil, ErrShortFile
		}
	} else {
		// No CHR banks in the image means the board carries CHR RAM
		cart.CHRRAM = make([]uint8, chrBankSize)
	}

	// Battery bit allocates PRG RAM at $6000-$7FFF
	if cart.Header.Flags6&0x02 != 0 {
		cart.PRGRAM = make([]uint8, 8192)
	}

	if cart.Header.Flags6&0x08 != 0 {
		cart.mirroring = MirroringFourScreen
	} else if cart.Header.Flags6&0x01 != 0 {
		cart.mirroring = MirroringVertical
	} else {
		cart.mirroring = MirroringHorizontal
	}

	cart.MapperNum = (cart.Header.Flags7 & 0xF0) | (cart.Header.Flags6 >> 4)

	data := &mapper.CartridgeData{
		PRGROM: cart.PRGROM,
		CHRROM: cart.CHRROM,
		PRGRAM: cart.PRGRAM,
		CHRRAM: cart.CHRRAM,
	}

	m, err := mapper.New(cart.MapperNum, data)
	if err != nil {
		return nil, &UnsupportedMapperError{Mapper: cart.MapperNum}
	}
	cart.Mapper = m

	logger.LogInfo("Cartridge loaded: mapper=%d, PRG=%dKB, CHR=%dKB, mirroring=%d",
		cart.MapperNum, len(cart.PRGROM)/1024,
		(len(cart.CHRROM)+len(cart.CHRRAM))/1024, cart.mirroring)

	return cart, nil
}

// LoadFromBytes loads a cartridge from an in-memory iNES image
func LoadFromBytes(data []byte) (*Cartridge, error) {
	return LoadFromReader(bytes.NewReader(data))
}

// LoadFromFile loads a cartridge from an iNES file on disk
func LoadFromFile(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ROM file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// readHeader reads the iNES header
func (c *Cartridge) readHeader(reader io.Reader) error {
	headerBytes := make([]uint8, 16)
	if _, err := io.ReadFull(reader, headerBytes); err != nil {
		return ErrShortFile
	}

	copy(c.Header.Magic[:], headerBytes[0:4])
	c.Header.PRGROMSize = headerBytes[4]
	c.Header.CHRROMSize = headerBytes[5]
	c.Header.Flags6 = headerBytes[6]
	c.Header.Flags7 = headerBytes[7]
	copy(c.Header.Padding[:], headerBytes[8:16])

	return nil
}

// ReadPRG reads from PRG space
func (c *Cartridge) ReadPRG(addr uint16) uint8 {
	return c.Mapper.ReadPRG(addr)
}

// WritePRG writes to PRG space
func (c *Cartridge) WritePRG(addr uint16, value uint8) {
	c.Mapper.WritePRG(addr, value)
}

// ReadCHR reads from CHR space
func (c *Cartridge) ReadCHR(addr uint16) uint8 {
	return c.Mapper.ReadCHR(addr)
}

// WriteCHR writes to CHR space
func (c *Cartridge) WriteCHR(addr uint16, value uint8) {
	c.Mapper.WriteCHR(addr, value)
}

// Mirroring returns the nametable mirroring arrangement. NROM and UxROM
// boards never change it after load.
func (c *Cartridge) Mirroring() MirroringMode {
	return c.mirroring
}

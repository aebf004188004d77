package mifare

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a dump is neither 1024 nor 4096 bytes long.
var ErrInvalidSize = errors.New("invalid dump size")

const (
	// BlockSize is the size of a single MIFARE Classic block.
	BlockSize = 16
	// KeySize is the size of Key A and Key B.
	KeySize = 6
	// AccessBitsSize is the size of the access conditions between the two keys.
	AccessBitsSize = 4

	size1K = 1024
	size4K = 4096

	sectors1K = 16
	sectors4K = 40

	// smallSectors is the number of 4-block sectors at the start of a 4K card.
	smallSectors = 32
)

// Geometry is the memory variant of a MIFARE Classic card.
type Geometry int

const (
	OneK Geometry = iota + 1
	FourK
)

// GeometryFromSize maps a dump length to its card geometry.
func GeometryFromSize(n int) (Geometry, error) {
	switch n {
	case size1K:
		return OneK, nil
	case size4K:
		return FourK, nil
	default:
		return 0, fmt.Errorf("%w: %d bytes (want %d or %d)", ErrInvalidSize, n, size1K, size4K)
	}
}

// Size returns the dump length in bytes, or 0 for an unknown geometry.
func (g Geometry) Size() int {
	switch g {
	case OneK:
		return size1K
	case FourK:
		return size4K
	default:
		return 0
	}
}

// SectorCount returns the number of sectors (and thus trailers) on the card.
func (g Geometry) SectorCount() int {
	switch g {
	case OneK:
		return sectors1K
	case FourK:
		return sectors4K
	default:
		return 0
	}
}

func (g Geometry) String() string {
	switch g {
	case OneK:
		return "1K"
	case FourK:
		return "4K"
	default:
		return fmt.Sprintf("Geometry(%d)", int(g))
	}
}

// TrailerOffset returns the absolute byte offset of a sector's trailer block.
// It is derived from the block layout, independently of the stride walk in Decode.
func (g Geometry) TrailerOffset(sector int) int {
	if sector < smallSectors {
		return (sector*4 + 3) * BlockSize
	}
	return (smallSectors*4 + (sector-smallSectors)*16 + 15) * BlockSize
}

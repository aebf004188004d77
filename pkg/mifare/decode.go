package mifare

import "fmt"

// DECODING LOGIC:
// The trailers are not located by block arithmetic but by walking the dump the
// same way the mfoc tooling does:
//
// 1. Read the UID region at 0x00.
// 2. Jump to the first trailer at 0x30 (end of block 2).
// 3. For each sector: skip the current stride, read Key A, skip the access
//    bits, read Key B.
// 4. After sector i the stride becomes 0x30 while i < 31, and 0xF0 from then on.
//
// Reading a trailer consumes 16 bytes, so a stride of 0x30 jumps over the three
// data blocks of a small sector and 0xF0 over the fifteen of a large one. The
// switch happens after sector 31 has been read, which lands sector 32 on the
// first large trailer of a 4K card.

const (
	firstTrailerOffset = 0x30
	smallStride        = 0x30
	largeStride        = 0xF0
	strideSwitchSector = 31
)

// Decode extracts the UID and the key pair of every sector from a raw dump.
//
// It returns ErrInvalidSize if data is not a 1K or 4K image, and
// ErrTruncatedRead if the walk for the given geometry runs off the end of data.
func Decode(data []byte, g Geometry) (UID, KeySet, error) {
	var uid UID

	if _, err := GeometryFromSize(len(data)); err != nil {
		return uid, nil, err
	}

	count := g.SectorCount()
	if count == 0 {
		return uid, nil, fmt.Errorf("unsupported geometry %s", g)
	}

	c := newCursor(data)

	region, err := c.read(UIDRegionSize)
	if err != nil {
		return uid, nil, fmt.Errorf("uid: %w", err)
	}
	copy(uid[:], region)

	if err := c.seek(firstTrailerOffset); err != nil {
		return uid, nil, fmt.Errorf("first trailer: %w", err)
	}

	keys := make(KeySet, 0, count)
	stride := 0
	for i := 0; i < count; i++ {
		pair, err := readTrailer(c, i, stride)
		if err != nil {
			return uid, nil, err
		}
		keys = append(keys, pair)

		if i < strideSwitchSector {
			stride = smallStride
		} else {
			stride = largeStride
		}
	}

	return uid, keys, nil
}

// readTrailer skips stride bytes then reads Key A, the access bits and Key B.
func readTrailer(c *cursor, sector, stride int) (SectorKeyPair, error) {
	pair := SectorKeyPair{Sector: sector}

	if err := c.skip(stride); err != nil {
		return pair, fmt.Errorf("sector %d trailer: %w", sector, err)
	}

	a, err := c.read(KeySize)
	if err != nil {
		return pair, fmt.Errorf("sector %d key A: %w", sector, err)
	}
	copy(pair.A[:], a)

	if err := c.skip(AccessBitsSize); err != nil {
		return pair, fmt.Errorf("sector %d access bits: %w", sector, err)
	}

	b, err := c.read(KeySize)
	if err != nil {
		return pair, fmt.Errorf("sector %d key B: %w", sector, err)
	}
	copy(pair.B[:], b)

	return pair, nil
}

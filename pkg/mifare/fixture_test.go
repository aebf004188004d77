package mifare

import "github.com/gregLibert/mfc-keys/pkg/hexutil"

var transportAccessBits = hexutil.Hex("FF 07 80 69")

func keyA(sector int) Key {
	return Key{0xA0, byte(sector), 0xA2, 0xA3, 0xA4, 0xA5}
}

func keyB(sector int) Key {
	return Key{0xB0, byte(sector), 0xB2, 0xB3, 0xB4, 0xB5}
}

// buildDump lays out a synthetic image: data blocks filled with 0x5A and each
// trailer written at its block-math offset with keyA/keyB for that sector.
func buildDump(g Geometry, uid []byte) []byte {
	data := hexutil.Fill(0x5A, g.Size())
	copy(data, uid)

	for s := 0; s < g.SectorCount(); s++ {
		off := g.TrailerOffset(s)
		a, b := keyA(s), keyB(s)
		copy(data[off:], a[:])
		copy(data[off+KeySize:], transportAccessBits)
		copy(data[off+KeySize+AccessBitsSize:], b[:])
	}
	return data
}

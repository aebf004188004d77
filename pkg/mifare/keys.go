package mifare

import (
	"encoding/hex"
	"fmt"
)

// UIDRegionSize is the length of the leading region read for the UID.
// Only the first 4 bytes identify the card; the rest is ignored.
const UIDRegionSize = 8

// UID is the 4-byte card identifier found at the start of the dump.
type UID [4]byte

// String returns the UID as 8 lowercase hex digits.
func (u UID) String() string {
	return hex.EncodeToString(u[:])
}

// Key is a 6-byte MIFARE Classic sector key (Key A or Key B).
type Key [KeySize]byte

// String returns the key as 12 lowercase hex digits.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// SectorKeyPair holds both keys from one sector trailer.
type SectorKeyPair struct {
	Sector int
	A      Key
	B      Key
}

// KeySet is the list of sector keys of a card, ordered by sector number.
type KeySet []SectorKeyPair

// Validate checks that the set describes a whole card: 16 or 40 entries whose
// sector numbers run from 0 without gaps or reordering.
func (ks KeySet) Validate() error {
	if len(ks) != OneK.SectorCount() && len(ks) != FourK.SectorCount() {
		return fmt.Errorf("key set has %d sectors, want %d or %d", len(ks), OneK.SectorCount(), FourK.SectorCount())
	}
	for i, p := range ks {
		if p.Sector != i {
			return fmt.Errorf("key set entry %d is for sector %d", i, p.Sector)
		}
	}
	return nil
}

// KeysA returns every Key A concatenated in sector order.
func (ks KeySet) KeysA() []byte {
	out := make([]byte, 0, len(ks)*KeySize)
	for _, p := range ks {
		out = append(out, p.A[:]...)
	}
	return out
}

// KeysB returns every Key B concatenated in sector order.
func (ks KeySet) KeysB() []byte {
	out := make([]byte, 0, len(ks)*KeySize)
	for _, p := range ks {
		out = append(out, p.B[:]...)
	}
	return out
}

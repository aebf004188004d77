/*
Package mifare decodes raw MIFARE Classic memory dumps and extracts the sector keys.

A dump is the flat image of every block on the card, in block order, as written by
tools such as mfoc, nfc-mfclassic or a Proxmark. This package only understands the
layout of that image; it never talks to a reader.

# Card Layout

MIFARE Classic memory is split into sectors of 16-byte blocks:
  - 1K: 16 sectors of 4 blocks (1024 bytes).
  - 4K: 32 sectors of 4 blocks followed by 8 sectors of 16 blocks (4096 bytes).

The last block of every sector is the sector trailer:

	| Key A (6) | Access bits (4) | Key B (6) |

Block 0 of sector 0 is the manufacturer block, whose first 4 bytes are the UID of
a single-size card.

# Usage Example

	data, _ := os.ReadFile("mycard.mfd")

	geometry, err := mifare.GeometryFromSize(len(data))
	if err != nil {
	    log.Fatal(err)
	}

	uid, keys, err := mifare.Decode(data, geometry)
	if err != nil {
	    log.Fatal(err)
	}

	fmt.Println(keys.Describe(uid, geometry))
*/
package mifare

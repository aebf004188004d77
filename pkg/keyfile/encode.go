package keyfile

import (
	"fmt"

	"github.com/gregLibert/mfc-keys/pkg/mifare"
)

// NamedBuffer is one key file ready to be written.
// Name is only a suggestion for the file sink.
type NamedBuffer struct {
	Name string
	Data []byte
}

// Encode serializes a key set in the requested format.
//
// The key set must come from mifare.Decode. A set that fails Validate is a
// programming error and makes Encode panic rather than emit a short file.
func Encode(uid mifare.UID, keys mifare.KeySet, f Format) []NamedBuffer {
	if err := keys.Validate(); err != nil {
		panic(fmt.Sprintf("keyfile: malformed key set: %v", err))
	}

	switch f {
	case MfocDump:
		return []NamedBuffer{
			{Name: fmt.Sprintf("a%s.dump", uid), Data: keys.KeysA()},
			{Name: fmt.Sprintf("b%s.dump", uid), Data: keys.KeysB()},
		}
	case ProxmarkBin:
		data := append(keys.KeysA(), keys.KeysB()...)
		return []NamedBuffer{
			{Name: fmt.Sprintf("%s.bin", uid), Data: data},
		}
	default:
		panic(fmt.Sprintf("keyfile: unsupported format %s", f))
	}
}

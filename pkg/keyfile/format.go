// Package keyfile serializes decoded MIFARE Classic keys into the key files
// consumed by mfoc/mfocGUI and the Proxmark client, and writes them to disk.
package keyfile

import (
	"fmt"
	"strings"
)

// Format selects the key-file representation.
type Format int

const (
	// MfocDump writes two files: every Key A, then every Key B.
	MfocDump Format = iota + 1
	// ProxmarkBin writes one file: every Key A followed by every Key B.
	ProxmarkBin
)

func (f Format) String() string {
	switch f {
	case MfocDump:
		return "mfoc"
	case ProxmarkBin:
		return "proxmark"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a configuration value ("mfoc" or "proxmark") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mfoc":
		return MfocDump, nil
	case "proxmark":
		return ProxmarkBin, nil
	default:
		return 0, fmt.Errorf("unknown key file format %q (want mfoc or proxmark)", s)
	}
}

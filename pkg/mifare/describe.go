package mifare

import (
	"fmt"
	"strings"
)

const tableSeparator = "+---+----------------+----------------+"

// Describe renders the UID and every sector's keys as an ASCII table.
// The result has no trailing newline.
func (ks KeySet) Describe(uid UID, g Geometry) string {
	var sb strings.Builder

	sb.WriteString(tableSeparator + "\n")
	sb.WriteString(fmt.Sprintf("|%3s|            %s             |\n", g, uid))
	sb.WriteString(tableSeparator + "\n")
	sb.WriteString("|sec|key A           |key B           |\n")
	sb.WriteString(tableSeparator + "\n")

	for _, p := range ks {
		sb.WriteString(fmt.Sprintf("|%03d|  %s  |  %s  |\n", p.Sector, p.A, p.B))
	}

	sb.WriteString(tableSeparator)
	return sb.String()
}

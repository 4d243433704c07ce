package barostat

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// osSeed derives a generator seed from the OS entropy source, falling back
// to the clock when that source is unavailable.
func osSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

package cache

import (
	"encoding/binary"
	"strconv"

	"github.com/zeebo/xxh3"
)

// hash spreads an integer key across freelru's buckets.
func hash(n int64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n)) //nolint:gosec // bit pattern only
	return uint32(xxh3.Hash(buf[:]))                  //nolint:gosec // truncation intended
}

// stringKey is used by libraries that only accept string keys.
func stringKey(n int64) string {
	return strconv.FormatInt(n, 10)
}

// encodeFactors packs a factor list for byte-oriented caches.
func encodeFactors(factors []int64) []byte {
	buf := make([]byte, 0, len(factors)*2)
	for _, f := range factors {
		buf = binary.AppendUvarint(buf, uint64(f)) //nolint:gosec // factors are positive
	}
	return buf
}

func decodeFactors(buf []byte) ([]int64, bool) {
	factors := make([]int64, 0, len(buf)/2)
	for len(buf) > 0 {
		f, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil, false
		}
		factors = append(factors, int64(f)) //nolint:gosec // encoded from int64
		buf = buf[n:]
	}
	return factors, true
}

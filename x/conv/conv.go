// Package conv formats integers without fmt/strconv so MCU builds stay small.
package conv

// Itoa writes the base-10 form of n into the tail of buf and returns that
// slice. buf should hold at least 20 bytes for any int64.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	i := Utoa(buf, u)
	if neg && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}

// Utoa writes u right-aligned into buf and returns the start index.
func Utoa(buf []byte, u uint64) int {
	i := len(buf)
	if u == 0 && i > 0 {
		i--
		buf[i] = '0'
		return i
	}
	for u > 0 && i > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	return i
}

// Clock renders a duration in whole seconds as h:mm:ss.
func Clock(secs uint32) string {
	var out [16]byte
	n := 0
	var tmp [10]byte
	i := Utoa(tmp[:], uint64(secs/3600))
	n += copy(out[n:], tmp[i:])
	for _, part := range []uint32{(secs / 60) % 60, secs % 60} {
		out[n] = ':'
		out[n+1] = byte('0' + part/10)
		out[n+2] = byte('0' + part%10)
		n += 3
	}
	return string(out[:n])
}

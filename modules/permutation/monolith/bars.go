package monolith

import "sync"

// A bar lane maps y = x ^ (^rotl1(x) & rotl2(x) & rotl3(x)) and rotates the
// result left by one. The 7-bit top lane of Monolith-31 drops the rotl3
// term. Rotations are lane-local.

// Bar64 is the Monolith-64 bar: eight independent 8-bit lanes.
func Bar64(x uint64) uint64 {
	l1 := ((x & 0x8080808080808080) >> 7) | ((x & 0x7F7F7F7F7F7F7F7F) << 1)
	l2 := ((x & 0xC0C0C0C0C0C0C0C0) >> 6) | ((x & 0x3F3F3F3F3F3F3F3F) << 2)
	l3 := ((x & 0xE0E0E0E0E0E0E0E0) >> 5) | ((x & 0x1F1F1F1F1F1F1F1F) << 3)
	y := x ^ (^l1 & l2 & l3)
	return ((y & 0x8080808080808080) >> 7) | ((y & 0x7F7F7F7F7F7F7F7F) << 1)
}

// Bar31 is the Monolith-31 bar: three 8-bit lanes and a 7-bit top lane.
func Bar31(x uint32) uint32 {
	return bar24(x&0xFFFFFF) | uint32(bar7(uint8(x>>24)))<<24
}

func bar24(x uint32) uint32 {
	l1 := ((x & 0x808080) >> 7) | ((x & 0x7F7F7F) << 1)
	l2 := ((x & 0xC0C0C0) >> 6) | ((x & 0x3F3F3F) << 2)
	l3 := ((x & 0xE0E0E0) >> 5) | ((x & 0x1F1F1F) << 3)
	y := x ^ (^l1 & l2 & l3)
	return ((y & 0x808080) >> 7) | ((y & 0x7F7F7F) << 1)
}

func bar8(x uint8) uint8 {
	l1 := x>>7 | x<<1
	l2 := x>>6 | x<<2
	l3 := x>>5 | x<<3
	y := x ^ (^l1 & l2 & l3)
	return y>>7 | y<<1
}

func bar7(x uint8) uint8 {
	l1 := (x>>6 | x<<1) & 0x7F
	l2 := (x>>5 | x<<2) & 0x7F
	y := (x ^ (^l1 & l2)) & 0x7F
	return (y>>6 | y<<1) & 0x7F
}

// lookup16 packs two 8-bit lanes per entry.
var lookup16 = sync.OnceValue(func() []uint16 {
	table := make([]uint16, 1<<16)
	for i := range table {
		table[i] = uint16(bar8(uint8(i>>8)))<<8 | uint16(bar8(uint8(i)))
	}
	return table
})

// lookup15 covers the top half of a Monolith-31 word: a 7-bit lane over an
// 8-bit lane.
var lookup15 = sync.OnceValue(func() []uint16 {
	table := make([]uint16, 1<<15)
	for i := range table {
		table[i] = uint16(bar7(uint8(i>>8)))<<8 | uint16(bar8(uint8(i)))
	}
	return table
})

// Bar64Lookup evaluates Bar64 with four 16-bit table lookups.
func Bar64Lookup(x uint64) uint64 {
	t := lookup16()
	return uint64(t[uint16(x)]) |
		uint64(t[uint16(x>>16)])<<16 |
		uint64(t[uint16(x>>32)])<<32 |
		uint64(t[uint16(x>>48)])<<48
}

// Bar31Lookup evaluates Bar31 with a 16-bit and a 15-bit table lookup. The
// input must fit in 31 bits.
func Bar31Lookup(x uint32) uint32 {
	return uint32(lookup16()[uint16(x)]) | uint32(lookup15()[x>>16])<<16
}

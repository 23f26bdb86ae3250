package seed

import (
	"crypto/sha1"
	"encoding/binary"
	"math/bits"
	"time"
)

// gxStat is the graphics status word mixed into the boot message.
const gxStat = 0x06000000

// HashedSeed is one enumerated point of a seed space and its raw seed.
type HashedSeed struct {
	Version    Version
	MACAddress uint64
	Time       time.Time
	Buttons    Buttons
	Timer0     uint32
	VCount     uint32
	VFrame     uint32

	// RawSeed is the 64-bit initial state of the frame LCG.
	RawSeed uint64
}

// NewHashedSeed hashes one seed-space point.
func NewHashedSeed(v Version, mac uint64, t time.Time, b Buttons, timer0, vcount, vframe uint32) HashedSeed {
	return HashedSeed{
		Version:    v,
		MACAddress: mac,
		Time:       t,
		Buttons:    b,
		Timer0:     timer0,
		VCount:     vcount,
		VFrame:     vframe,
		RawSeed:    rawSeed(v, mac, t, b, timer0, vcount, vframe),
	}
}

// rawSeed builds the 13-word boot message, hashes it and folds the first two
// digest words into a 64-bit seed.
func rawSeed(v Version, mac uint64, t time.Time, b Buttons, timer0, vcount, vframe uint32) uint64 {
	var words [13]uint32
	n := nazo[v]
	for i := range n {
		words[i] = bits.ReverseBytes32(n[i])
	}
	words[5] = bits.ReverseBytes32(vcount<<16 | timer0&0xFFFF)
	words[6] = uint32(mac & 0xFFFF)
	words[7] = bits.ReverseBytes32(uint32(mac>>16) ^ (vframe << 24) ^ gxStat)
	words[8] = dateWord(t)
	words[9] = timeWord(t)
	// words[10], words[11] stay zero.
	words[12] = bits.ReverseBytes32(b.KeyInput())

	var msg [len(words) * 4]byte
	for i, w := range words {
		binary.BigEndian.PutUint32(msg[i*4:], w)
	}
	sum := sha1.Sum(msg[:])

	h0 := binary.BigEndian.Uint32(sum[0:4])
	h1 := binary.BigEndian.Uint32(sum[4:8])
	return uint64(bits.ReverseBytes32(h1))<<32 | uint64(bits.ReverseBytes32(h0))
}

func bcd(n int) uint32 {
	return uint32((n/10)<<4 | n%10)
}

// dateWord encodes 0xYYMMDDWW in BCD, WW being the weekday (Sunday = 0).
func dateWord(t time.Time) uint32 {
	return bcd(t.Year()%100)<<24 | bcd(int(t.Month()))<<16 | bcd(t.Day())<<8 | uint32(t.Weekday())
}

// timeWord encodes 0xHHMMSS00 in BCD; afternoon hours carry the 0x40 flag.
func timeWord(t time.Time) uint32 {
	hour := bcd(t.Hour())
	if t.Hour() >= 12 {
		hour += 0x40
	}
	return hour<<24 | bcd(t.Minute())<<16 | bcd(t.Second())<<8
}

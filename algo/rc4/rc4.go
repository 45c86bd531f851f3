// Package rc4 implements the stream cipher variant targeted by the cracker.
// It differs from textbook RC4 in one detail: the keystream byte for a
// position is read from the schedule state before the advance-and-swap step,
// so keystream[0] is taken from the freshly scheduled state and keystream[p]
// equals the textbook byte p-1 for p > 0.
package rc4

type RC4 struct {
	s    [256]byte
	i, j byte
}

func (c *RC4) InitKey(key []byte) {
	for i := 0; i < 256; i++ {
		c.s[i] = byte(i)
	}

	var j byte
	for i := 0; i < 256; i++ {
		j += c.s[i] + key[i%len(key)]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}

	c.i = 0
	c.j = 0
}

// XorInplace applies the keystream to data: read the output byte from the
// current state, then advance. Encryption and decryption are the same
// operation.
func (c *RC4) XorInplace(data []byte) {
	for n := 0; n < len(data); n++ {
		x := c.s[c.i] + c.s[c.j]
		data[n] ^= c.s[x]
		c.i++
		c.j += c.s[c.i]
		c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]
	}
}

// KeystreamAt derives the keystream byte at position pos from scratch:
// full key schedule, then exactly pos advance steps over a private copy of
// the state. No state is shared between positions, so any number of
// positions can be computed concurrently. Costs O(pos) per call.
func KeystreamAt(key []byte, pos int) byte {
	var s [256]byte
	for i := 0; i < 256; i++ {
		s[i] = byte(i)
	}

	var j byte
	for i := 0; i < 256; i++ {
		j += s[i] + key[i%len(key)]
		s[i], s[j] = s[j], s[i]
	}

	var i byte
	j = 0
	for n := 0; n < pos; n++ {
		i++
		j += s[i]
		s[i], s[j] = s[j], s[i]
	}
	return s[s[i]+s[j]]
}

func EncryptInplace(key []byte, data []byte) {
	var c RC4
	c.InitKey(key)
	c.XorInplace(data)
}

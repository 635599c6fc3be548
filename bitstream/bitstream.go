// Package bitstream converts bytes to and from ordered bit sequences.
// Bits are stored one per byte (0 or 1), most-significant bit first.
package bitstream

const BitsInByte = 8

// ToBits expands every byte of data into 8 bits, MSB first.
func ToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*BitsInByte)
	for _, b := range data {
		for i := BitsInByte - 1; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

// FromBits packs bits back into bytes, 8 at a time. Only the low bit of each
// element is used and a trailing group shorter than 8 is ignored.
func FromBits(bits []byte) []byte {
	bytes := make([]byte, 0, len(bits)/BitsInByte)
	for i := 0; i+BitsInByte <= len(bits); i += BitsInByte {
		var b byte
		for j := 0; j < BitsInByte; j++ {
			b = (b << 1) | (bits[i+j] & 1)
		}
		bytes = append(bytes, b)
	}
	return bytes
}

// Uint32Bits returns the 32 bits of v in big-endian order.
func Uint32Bits(v uint32) []byte {
	bits := make([]byte, 32)
	for i := 0; i < 32; i++ {
		bits[i] = byte(v>>(31-i)) & 1
	}
	return bits
}

// BitsUint32 reads the first 32 bits as a big-endian unsigned integer.
// It panics if fewer than 32 bits are given.
func BitsUint32(bits []byte) uint32 {
	_ = bits[31]
	var v uint32
	for _, bit := range bits[:32] {
		v = (v << 1) | uint32(bit&1)
	}
	return v
}

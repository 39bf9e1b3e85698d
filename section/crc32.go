package section

// crcTable is the MSB-first table for the MPEG-2 CRC32 polynomial 0x04C11DB7.
// hash/crc32 only implements the reflected form, which MPEG does not use.
var crcTable = func() [256]uint32 {
	var table [256]uint32
	for i := range table {
		c := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if c&0x80000000 != 0 {
				c = c<<1 ^ 0x04C11DB7
			} else {
				c <<= 1
			}
		}
		table[i] = c
	}

	return table
}()

// CRC32 computes the MPEG-2 CRC32 of data: initial value 0xFFFFFFFF, no
// reflection and no final xor. The CRC of a long section including its
// trailing CRC field is zero.
func CRC32(data []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc = crc<<8 ^ crcTable[byte(crc>>24)^b]
	}

	return crc
}

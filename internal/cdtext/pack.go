package cdtext

import (
	"encoding/binary"

	"github.com/sigurn/crc16"
)

const (
	packSize    = 18
	payloadSize = 12
)

// ccitt is the CRC-16/CCITT table (x^16 + x^12 + x^5 + 1), processed
// MSB first with an initial value of 0.
var ccitt = crc16.MakeTable(crc16.CRC16_XMODEM)

// Pack is one 18-byte CD-TEXT unit.
//
//	byte 0      pack id
//	byte 1      track number; bit 7 is the extension flag
//	byte 2      sequence number
//	byte 3      bit 7 double-byte flag, bits 4-6 block, bits 0-3 character position
//	bytes 4-15  payload
//	bytes 16-17 CRC, stored inverted
type Pack struct {
	ID           PackID
	Track        int
	Extension    bool
	Seq          int
	Block        int
	CharPosition int
	DoubleByte   bool
	Payload      [payloadSize]byte
	CRC          uint16
}

func parsePack(b []byte) Pack {
	p := Pack{
		ID:           PackID(b[0]),
		Track:        int(b[1] & 0x7F),
		Extension:    b[1]&0x80 != 0,
		Seq:          int(b[2]),
		DoubleByte:   b[3]&0x80 != 0,
		Block:        int(b[3]>>4) & 0x07,
		CharPosition: int(b[3] & 0x0F),
		CRC:          binary.BigEndian.Uint16(b[16:18]),
	}
	copy(p.Payload[:], b[4:16])
	return p
}

// validCRC reports whether a raw pack passes its CRC. Running the CRC over
// the header and payload followed by the un-inverted CRC leaves a remainder
// of zero.
func validCRC(b []byte) bool {
	crc := crc16.Checksum(b[:16], ccitt)
	crc = crc16.Update(crc, []byte{b[16] ^ 0xFF, b[17] ^ 0xFF}, ccitt)
	return crc == 0
}

package scsi

import (
	"encoding/binary"
	"strings"
)

// SCSI command opcodes
const (
	OpTestUnitReady = 0x00
	OpRequestSense  = 0x03
	OpInquiry       = 0x12
	OpReadTOC       = 0x43
)

// READ TOC/PMA/ATIP response formats (MMC-3 table 235)
const (
	FormatTOC         = 0x00
	FormatSessionInfo = 0x01
	FormatFullTOC     = 0x02
	FormatPMA         = 0x03
	FormatATIP        = 0x04
	FormatCDText      = 0x05
)

// BuildTestUnitReady creates the CDB for TEST UNIT READY command.
// Returns 6-byte CDB.
func BuildTestUnitReady() []byte {
	return []byte{OpTestUnitReady, 0, 0, 0, 0, 0}
}

// BuildInquiry creates the CDB for INQUIRY command.
// Returns 6-byte CDB requesting 36 bytes of response.
func BuildInquiry() []byte {
	return []byte{OpInquiry, 0, 0, 0, 36, 0}
}

// BuildReadTOC creates the CDB for READ TOC/PMA/ATIP.
// Returns 10-byte CDB.
//
// msf selects MSF addressing (byte 1 = 0x02) for the formats that carry
// addresses in either form; the Full TOC is always MSF.
func BuildReadTOC(format byte, msf bool, number byte, allocLen uint16) []byte {
	// Byte 0: Opcode (0x43)
	// Byte 1: 0x02 = MSF, 0x00 = LBA
	// Byte 2: Format (low 4 bits)
	// Byte 3-5: Reserved
	// Byte 6: Track/session number
	// Byte 7-8: Allocation length
	// Byte 9: Control
	cdb := make([]byte, 10)
	cdb[0] = OpReadTOC
	if msf {
		cdb[1] = 0x02
	}
	cdb[2] = format & 0x0F
	cdb[6] = number
	binary.BigEndian.PutUint16(cdb[7:9], allocLen)
	return cdb
}

// BuildReadSimpleTOC requests the format 0 TOC in LBA form.
func BuildReadSimpleTOC(allocLen uint16) []byte {
	return BuildReadTOC(FormatTOC, false, 0, allocLen)
}

// BuildReadFullTOC requests the format 2 (raw Q sub-channel) TOC.
func BuildReadFullTOC(allocLen uint16) []byte {
	return BuildReadTOC(FormatFullTOC, false, 0, allocLen)
}

// BuildReadCDText requests the format 5 CD-TEXT packs.
func BuildReadCDText(allocLen uint16) []byte {
	return BuildReadTOC(FormatCDText, false, 0, allocLen)
}

// InquiryData represents parsed INQUIRY response
type InquiryData struct {
	DeviceType byte   // Peripheral device type (5 = CD-ROM)
	Vendor     string // 8 chars
	Product    string // 16 chars
	Revision   string // 4 chars
}

// ParseInquiry parses a 36-byte INQUIRY response.
// This is a pure function.
func ParseInquiry(data []byte) InquiryData {
	if len(data) < 36 {
		return InquiryData{}
	}

	return InquiryData{
		DeviceType: data[0] & 0x1F,
		Vendor:     trimString(data[8:16]),
		Product:    trimString(data[16:32]),
		Revision:   trimString(data[32:36]),
	}
}

// trimString trims trailing spaces from ASCII bytes
func trimString(b []byte) string {
	return strings.TrimRight(string(b), " ")
}

// ResponseLength returns the number of valid bytes in a READ TOC/PMA/ATIP
// response: the big-endian length field plus the two bytes of the field
// itself. The response may be larger than the buffer that holds it.
func ResponseLength(data []byte) (int, bool) {
	if len(data) < 2 {
		return 0, false
	}
	return int(binary.BigEndian.Uint16(data[0:2])) + 2, true
}

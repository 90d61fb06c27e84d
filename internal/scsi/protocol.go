package scsi

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// USB Mass Storage Bulk-Only protocol constants
const (
	CBWSignature = 0x43425355 // "USBC" little-endian
	CSWSignature = 0x53425355 // "USBS" little-endian
	CBWSize      = 31
	CSWSize      = 13
)

// Direction constants for CBW
const (
	DirectionOut = 0x00 // Host to device
	DirectionIn  = 0x80 // Device to host
)

// CSW status values
const (
	StatusPassed     = 0x00
	StatusFailed     = 0x01
	StatusPhaseError = 0x02
)

// Returned by ParseCSW and CheckCSW.
var (
	ErrCSWTooShort    = errors.New("CSW too short")
	ErrCSWSignature   = errors.New("invalid CSW signature")
	ErrCSWTagMismatch = errors.New("CSW tag does not match CBW")
	ErrCSWPhaseError  = errors.New("phase error")
)

// CBW represents a Command Block Wrapper
type CBW struct {
	Tag           uint32
	DataLength    uint32
	Direction     byte
	LUN           byte
	CommandLength byte
	Command       [16]byte
}

// CSW represents a Command Status Wrapper
type CSW struct {
	Tag     uint32
	Residue uint32
	Status  byte
}

// BuildCBW creates a CBW from a SCSI CDB.
// This is a pure function: (tag, dataLen, direction, cdb) → 31 bytes
func BuildCBW(tag uint32, dataLen uint32, direction byte, cdb []byte) []byte {
	cbw := make([]byte, CBWSize)

	binary.LittleEndian.PutUint32(cbw[0:4], CBWSignature)
	binary.LittleEndian.PutUint32(cbw[4:8], tag)
	binary.LittleEndian.PutUint32(cbw[8:12], dataLen)
	cbw[12] = direction
	cbw[13] = 0 // LUN

	// Command field holds at most 16 bytes
	n := copy(cbw[15:], cdb)
	cbw[14] = byte(n)

	return cbw
}

// ParseCSW parses a 13-byte CSW response.
// This is a pure function: bytes → (CSW, error)
func ParseCSW(data []byte) (CSW, error) {
	if len(data) < CSWSize {
		return CSW{}, errors.Wrapf(ErrCSWTooShort, "%d bytes", len(data))
	}

	sig := binary.LittleEndian.Uint32(data[0:4])
	if sig != CSWSignature {
		return CSW{}, errors.Wrapf(ErrCSWSignature, "%#08x", sig)
	}

	return CSW{
		Tag:     binary.LittleEndian.Uint32(data[4:8]),
		Residue: binary.LittleEndian.Uint32(data[8:12]),
		Status:  data[12],
	}, nil
}

// CheckCSW verifies that a CSW answers the CBW sent with tag. A phase error
// means the device needs a reset; it is reported as an error rather than a
// status.
func CheckCSW(csw CSW, tag uint32) error {
	if csw.Tag != tag {
		return errors.Wrapf(ErrCSWTagMismatch, "got %d, want %d", csw.Tag, tag)
	}
	if csw.Status == StatusPhaseError {
		return ErrCSWPhaseError
	}
	return nil
}

package scsi

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sense keys
const (
	SenseNoSense        = 0x00
	SenseNotReady       = 0x02
	SenseMediumError    = 0x03
	SenseHardwareError  = 0x04
	SenseIllegalRequest = 0x05
	SenseUnitAttention  = 0x06
)

// Additional sense codes
const (
	ASCInvalidFieldInCDB   = 0x24
	ASCMediumNotPresent    = 0x3A
	ASCIllegalModeForTrack = 0x64
)

// Fixed-format sense data layout
const (
	requestSenseAllocLength = 18
	fixedSenseMinimumLength = 14
	fixedSenseCurrent       = 0x70
	fixedSenseDeferred      = 0x71
	responseCodeMask        = 0x7F
	senseKeyMask            = 0x0F
)

var (
	// ErrNoCDText is returned when the disc carries no CD-TEXT.
	ErrNoCDText = errors.New("disc has no CD-TEXT")
	// ErrCDTextNotSupported is returned by drives that cannot read CD-TEXT.
	ErrCDTextNotSupported = errors.New("drive does not support CD-TEXT")
)

// Sense is the interesting part of fixed-format sense data.
type Sense struct {
	Key  byte
	ASC  byte
	ASCQ byte
}

func (s Sense) String() string {
	return fmt.Sprintf("sense key %#02x, ASC %#02x, ASCQ %#02x", s.Key, s.ASC, s.ASCQ)
}

// SenseError reports a command that ended in CHECK CONDITION.
type SenseError struct {
	Op    string
	Sense Sense
}

func (e *SenseError) Error() string {
	return fmt.Sprintf("%s: check condition: %v", e.Op, e.Sense)
}

// BuildRequestSense creates the CDB for REQUEST SENSE.
// Returns 6-byte CDB requesting 18 bytes of fixed-format sense data.
func BuildRequestSense() []byte {
	return []byte{OpRequestSense, 0, 0, 0, requestSenseAllocLength, 0}
}

// ParseSense parses fixed-format sense data (response code 0x70 or 0x71).
// This is a pure function.
func ParseSense(data []byte) (Sense, error) {
	if len(data) < fixedSenseMinimumLength {
		return Sense{}, errors.Errorf("sense data too short: %d bytes", len(data))
	}

	code := data[0] & responseCodeMask
	if code != fixedSenseCurrent && code != fixedSenseDeferred {
		return Sense{}, errors.Errorf("unsupported sense response code %#02x", code)
	}

	return Sense{
		Key:  data[2] & senseKeyMask,
		ASC:  data[12],
		ASCQ: data[13],
	}, nil
}

// cdTextError maps the sense data of a failed CD-TEXT read.
// Illegal mode for this track (0x64) means the disc has no CD-TEXT; an
// invalid CDB field (0x24) means the drive does not know format 5.
func cdTextError(err error) error {
	var se *SenseError
	if !errors.As(err, &se) || se.Sense.Key != SenseIllegalRequest {
		return err
	}

	switch se.Sense.ASC {
	case ASCIllegalModeForTrack:
		return errors.Wrap(ErrNoCDText, se.Error())
	case ASCInvalidFieldInCDB:
		return errors.Wrap(ErrCDTextNotSupported, se.Error())
	}
	return err
}

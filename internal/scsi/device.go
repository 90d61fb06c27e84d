package scsi

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/gousb"
	"github.com/pkg/errors"

	"github.com/binaryphile/cdtoc/internal/logging"
)

const (
	defaultTimeout        = 5 * time.Second
	tocTimeout            = 10 * time.Second
	defaultTOCAllocLength = 1024
	maxAllocLength        = 0xFFFF
)

// Transport carries SCSI commands to a drive. It returns the data-in bytes
// and the command status.
type Transport interface {
	SendCommand(ctx context.Context, cdb []byte, dataLen int, timeout time.Duration) ([]byte, byte, error)
	Close()
}

// Device represents a CD/DVD drive. It is not safe for concurrent use.
type Device struct {
	t   Transport
	log *logging.Logger
}

// Option configures a Device.
type Option func(*Device)

// WithLogger sets the logger for device discovery and command tracing.
func WithLogger(log logr.Logger) Option {
	return func(d *Device) {
		d.log = logging.New(log).WithName("scsi")
	}
}

// NewDevice wraps an already open transport.
func NewDevice(t Transport, opts ...Option) *Device {
	d := &Device{t: t, log: logging.Discard()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OpenDevice opens a USB CD drive.
// If vendorID and productID are 0, it will auto-detect.
func OpenDevice(vendorID, productID gousb.ID, opts ...Option) (*Device, error) {
	d := NewDevice(nil, opts...)
	t, err := openUSB(vendorID, productID, d.log)
	if err != nil {
		return nil, err
	}
	d.t = t
	return d, nil
}

// Close releases the transport.
func (d *Device) Close() {
	if d.t != nil {
		d.t.Close()
	}
}

// command runs one command and turns CHECK CONDITION into a *SenseError.
func (d *Device) command(ctx context.Context, op string, cdb []byte, dataLen int, timeout time.Duration) ([]byte, error) {
	d.log.Trace("command", "op", op, "cdb", cdb, "len", dataLen)

	data, status, err := d.t.SendCommand(ctx, cdb, dataLen, timeout)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	switch status {
	case StatusPassed:
		return data, nil
	case StatusFailed:
		return nil, d.checkCondition(ctx, op)
	}
	return nil, errors.Errorf("%s failed with status %d", op, status)
}

func (d *Device) checkCondition(ctx context.Context, op string) error {
	data, status, err := d.t.SendCommand(ctx, BuildRequestSense(), requestSenseAllocLength, defaultTimeout)
	if err != nil {
		return errors.Wrapf(err, "%s failed; REQUEST SENSE", op)
	}
	if status != StatusPassed {
		return errors.Errorf("%s failed; REQUEST SENSE failed with status %d", op, status)
	}

	sense, err := ParseSense(data)
	if err != nil {
		return errors.Wrapf(err, "%s failed", op)
	}
	return &SenseError{Op: op, Sense: sense}
}

// Inquiry sends INQUIRY command and returns device info
func (d *Device) Inquiry(ctx context.Context) (*InquiryData, error) {
	data, err := d.command(ctx, "INQUIRY", BuildInquiry(), 36, defaultTimeout)
	if err != nil {
		return nil, err
	}

	info := ParseInquiry(data)
	return &info, nil
}

// TestUnitReady checks if drive is ready (disc loaded)
func (d *Device) TestUnitReady(ctx context.Context) bool {
	_, err := d.command(ctx, "TEST UNIT READY", BuildTestUnitReady(), 0, defaultTimeout)
	return err == nil
}

// ReadTOC issues READ TOC/PMA/ATIP with the given format and returns the
// response trimmed to its length field. A response longer than the first
// allocation is read again with the exact length.
func (d *Device) ReadTOC(ctx context.Context, format byte, msf bool) ([]byte, error) {
	allocLen := defaultTOCAllocLength
	for attempt := 0; attempt < 2; attempt++ {
		cdb := BuildReadTOC(format, msf, 0, uint16(allocLen))
		data, err := d.command(ctx, "READ TOC", cdb, allocLen, tocTimeout)
		if err != nil {
			return nil, err
		}

		n, ok := ResponseLength(data)
		if !ok {
			return nil, errors.Errorf("READ TOC format %d: short response of %d bytes", format, len(data))
		}
		if n > allocLen {
			if n > maxAllocLength {
				return nil, errors.Errorf("READ TOC format %d: response of %d bytes exceeds allocation limit", format, n)
			}
			d.log.Debug("retrying READ TOC with larger buffer", "format", format, "length", n)
			allocLen = n
			continue
		}
		if n > len(data) {
			return nil, errors.Errorf("READ TOC format %d: response says %d bytes, got %d", format, n, len(data))
		}
		return data[:n], nil
	}

	return nil, errors.Errorf("READ TOC format %d: response still larger than %d bytes", format, allocLen)
}

// ReadSimpleTOC reads the format 0 TOC with LBA addresses.
func (d *Device) ReadSimpleTOC(ctx context.Context) ([]byte, error) {
	return d.ReadTOC(ctx, FormatTOC, false)
}

// ReadFullTOC reads the format 2 (raw Q sub-channel) TOC.
func (d *Device) ReadFullTOC(ctx context.Context) ([]byte, error) {
	return d.ReadTOC(ctx, FormatFullTOC, false)
}

// ReadCDText reads the format 5 CD-TEXT data. It returns ErrNoCDText or
// ErrCDTextNotSupported when the drive says so.
func (d *Device) ReadCDText(ctx context.Context) ([]byte, error) {
	data, err := d.ReadTOC(ctx, FormatCDText, false)
	if err != nil {
		return nil, cdTextError(err)
	}
	return data, nil
}

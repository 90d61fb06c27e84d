package scsi

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gousb"
	"github.com/pkg/errors"

	"github.com/binaryphile/cdtoc/internal/logging"
)

// Known USB CD drive IDs
var KnownDevices = []struct {
	VendorID  gousb.ID
	ProductID gousb.ID
	Name      string
}{
	{0x0e8d, 0x1887, "Hitachi-LG/MediaTek Slim Portable DVD Writer"},
	{0x152d, 0x2339, "JMicron USB CD/DVD"},
	{0x13fd, 0x0840, "Initio USB CD/DVD"},
	{0x1c6b, 0xa223, "Philips USB CD/DVD"},
}

// usbTransport speaks the USB Mass Storage Bulk-Only protocol to a drive.
// It is not safe for concurrent use.
type usbTransport struct {
	ctx    *gousb.Context
	dev    *gousb.Device
	config *gousb.Config
	intf   *gousb.Interface
	epIn   *gousb.InEndpoint
	epOut  *gousb.OutEndpoint
	tag    uint32
}

// openUSB opens a USB CD drive.
// If vendorID and productID are 0, it will auto-detect.
func openUSB(vendorID, productID gousb.ID, log *logging.Logger) (*usbTransport, error) {
	ctx := gousb.NewContext()

	var dev *gousb.Device
	var err error
	var deviceName string

	if vendorID != 0 && productID != 0 {
		dev, err = ctx.OpenDeviceWithVIDPID(vendorID, productID)
		if err != nil {
			ctx.Close()
			return nil, errors.Wrap(err, "open device")
		}
		if dev == nil {
			ctx.Close()
			return nil, errors.Errorf("device %s:%s not found", vendorID, productID)
		}
		deviceName = fmt.Sprintf("%s:%s", vendorID, productID)
	} else {
		for _, known := range KnownDevices {
			dev, err = ctx.OpenDeviceWithVIDPID(known.VendorID, known.ProductID)
			if err == nil && dev != nil {
				deviceName = known.Name
				break
			}
		}
		if dev == nil {
			ctx.Close()
			return nil, errors.New("no USB CD drive found")
		}
	}

	// Not fatal: not every platform supports detaching the kernel driver.
	if err := dev.SetAutoDetach(true); err != nil {
		log.Debug("auto-detach not supported", "error", err)
	}

	config, err := dev.Config(1)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, errors.Wrap(err, "get config")
	}

	// Find Mass Storage interface (class 8) or fallback to first interface with bulk endpoints
	var intf *gousb.Interface
	for _, iface := range config.Desc.Interfaces {
		for _, alt := range iface.AltSettings {
			if alt.Class == gousb.ClassMassStorage {
				intf, err = config.Interface(iface.Number, alt.Alternate)
				if err != nil {
					continue
				}
				break
			}
		}
		if intf != nil {
			break
		}
	}

	// Fallback: try first interface (some drives use vendor-specific class)
	if intf == nil {
		for _, iface := range config.Desc.Interfaces {
			intf, err = config.Interface(iface.Number, 0)
			if err == nil {
				break
			}
		}
	}

	if intf == nil {
		config.Close()
		dev.Close()
		ctx.Close()
		return nil, errors.New("no suitable interface found")
	}

	var epIn *gousb.InEndpoint
	var epOut *gousb.OutEndpoint

	for _, ep := range intf.Setting.Endpoints {
		if ep.Direction == gousb.EndpointDirectionIn {
			if in, err := intf.InEndpoint(ep.Number); err == nil {
				epIn = in
			}
		} else {
			if out, err := intf.OutEndpoint(ep.Number); err == nil {
				epOut = out
			}
		}
	}

	if epIn == nil || epOut == nil {
		intf.Close()
		config.Close()
		dev.Close()
		ctx.Close()
		return nil, errors.New("could not find USB endpoints")
	}

	log.Info("found drive", "name", deviceName,
		"out", fmt.Sprintf("0x%02x", uint8(epOut.Desc.Address)),
		"in", fmt.Sprintf("0x%02x", uint8(epIn.Desc.Address)))

	return &usbTransport{
		ctx:    ctx,
		dev:    dev,
		config: config,
		intf:   intf,
		epIn:   epIn,
		epOut:  epOut,
		tag:    1,
	}, nil
}

// Close releases all USB resources
func (u *usbTransport) Close() {
	if u.intf != nil {
		u.intf.Close()
	}
	if u.config != nil {
		u.config.Close()
	}
	if u.dev != nil {
		u.dev.Close()
	}
	if u.ctx != nil {
		u.ctx.Close()
	}
}

// SendCommand sends a SCSI command and receives response.
// Returns (data, status, error)
func (u *usbTransport) SendCommand(ctx context.Context, cdb []byte, dataLen int, timeout time.Duration) ([]byte, byte, error) {
	direction := DirectionIn
	if dataLen == 0 {
		direction = DirectionOut
	}
	tag := u.tag
	cbw := BuildCBW(tag, uint32(dataLen), byte(direction), cdb)
	u.tag++

	writeCtx, writeCancel := context.WithTimeout(ctx, timeout)
	defer writeCancel()

	n, err := u.epOut.WriteContext(writeCtx, cbw)
	if err != nil {
		return nil, 0xFF, errors.Wrap(err, "CBW write")
	}
	if n != len(cbw) {
		return nil, 0xFF, errors.Errorf("CBW short write: %d/%d bytes", n, len(cbw))
	}

	var data []byte
	if dataLen > 0 {
		readCtx, readCancel := context.WithTimeout(ctx, timeout)
		defer readCancel()

		data = make([]byte, dataLen)
		n, err := u.epIn.ReadContext(readCtx, data)
		if err != nil {
			// Try to recover by reading CSW anyway
			data = nil
		} else {
			data = data[:n]
		}
	}

	cswCtx, cswCancel := context.WithTimeout(ctx, timeout)
	defer cswCancel()

	cswBuf := make([]byte, CSWSize)
	if _, err := u.epIn.ReadContext(cswCtx, cswBuf); err != nil {
		return data, 0xFF, errors.Wrap(err, "CSW read")
	}

	csw, err := ParseCSW(cswBuf)
	if err != nil {
		return data, 0xFF, err
	}
	if err := CheckCSW(csw, tag); err != nil {
		return data, 0xFF, err
	}

	return data, csw.Status, nil
}

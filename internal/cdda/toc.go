package cdda

import (
	"encoding/binary"
)

// TOCEntry is one track descriptor from a simple (format 0) TOC.
type TOCEntry struct {
	Number  int
	Ctrl    byte
	Address Address
}

// IsAudio returns true if this is an audio track
func (e TOCEntry) IsAudio() bool {
	return e.Ctrl&CtrlDataTrack == 0
}

// TOC represents a simple CD Table of Contents. It only describes the
// tracks of the last session, so disc IDs are computed from a FullTOC.
type TOC struct {
	FirstTrack int
	LastTrack  int
	Leadout    Address
	Tracks     []TOCEntry
}

// ParseTOC parses raw bytes from a SCSI READ TOC command (format 0, LBA
// addressing: CDB byte 1 = 0x00, not MSF format 0x02).
//
// This is a pure function: input bytes → TOC struct.
func ParseTOC(raw []byte) (TOC, error) {
	if len(raw) < 4 {
		return TOC{}, malformed("TOC data too short: need at least 4 bytes, got %d", len(raw))
	}

	// Header: 2-byte length (big-endian), first track, last track
	// Length includes the header bytes after the length field (i.e., first/last track + entries)
	tocLen := int(binary.BigEndian.Uint16(raw[0:2]))
	toc := TOC{
		FirstTrack: int(raw[2]),
		LastTrack:  int(raw[3]),
	}

	dataEnd := tocLen + 2
	if dataEnd > len(raw) {
		return TOC{}, malformed("TOC length %d exceeds buffer of %d bytes", tocLen, len(raw))
	}

	// Track entry format:
	// Byte 0: Reserved
	// Byte 1: ADR (upper 4 bits) / Control (lower 4 bits)
	// Byte 2: Track number (0xAA = lead-out)
	// Byte 3: Reserved
	// Bytes 4-7: LBA (big-endian, signed)
	haveLeadout := false
	for offset := 4; offset+tocEntrySize <= dataEnd; offset += tocEntrySize {
		control := raw[offset+1] & 0x0F
		trackNum := int(raw[offset+2])
		lba := int(int32(binary.BigEndian.Uint32(raw[offset+4 : offset+8])))

		if trackNum == TrackLeadout {
			toc.Leadout = AddressFromLBA(lba)
			haveLeadout = true
			break // Lead-out is the last entry
		}

		if trackNum < toc.FirstTrack || trackNum > toc.LastTrack {
			return TOC{}, malformed("track %d outside of range %d-%d", trackNum, toc.FirstTrack, toc.LastTrack)
		}

		toc.Tracks = append(toc.Tracks, TOCEntry{
			Number:  trackNum,
			Ctrl:    control,
			Address: AddressFromLBA(lba),
		})
	}

	if !haveLeadout {
		return TOC{}, malformed("TOC has no lead-out entry")
	}
	return toc, nil
}

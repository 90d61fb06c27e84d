package cdda

// Addressing constants (ECMA-130 section 21).
const (
	FramesPerSecond  = 75
	SecondsPerMinute = 60

	// MSFOffset is the number of frames between MSF 00:00.00 and LBA 0.
	// The first two seconds of the program area are not addressable by LBA.
	MSFOffset = 2 * FramesPerSecond
)

// Control nibble flags of a TOC entry.
const (
	CtrlPreEmphasis   = 0x01 // audio track recorded with pre-emphasis
	CtrlCopyPermitted = 0x02 // digital copy permitted
	CtrlDataTrack     = 0x04
	CtrlFourChannel   = 0x08 // 4-channel audio; unset for data tracks
)

// ADR nibble values.
const (
	ADRNotSpecified  = 0
	ADRPosition      = 1
	ADRCatalogNumber = 2
	ADRISRC          = 3
	ADRSkipInterval  = 5 // recordable media only
)

// Point values with special meaning in ADR 1 entries.
const (
	PointFirstTrack = 0xA0
	PointLastTrack  = 0xA1
	PointLeadout    = 0xA2
)

// TrackLeadout is the track number a simple TOC uses for the lead-out.
const TrackLeadout = 0xAA

// Disc types, stored in the A0 entry of each session.
const (
	DiscTypeCD     = 0x00 // CD-DA or CD-ROM
	DiscTypeCDI    = 0x10
	DiscTypeCDXA   = 0x20
	DiscTypeDVDROM = 0x40
	DiscTypeDVDRAM = 0x80
)

const (
	fullTOCEntrySize = 11
	tocEntrySize     = 8
)

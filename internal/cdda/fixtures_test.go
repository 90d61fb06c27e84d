package cdda

// Buffers captured from real discs with READ TOC/PMA/ATIP.

// Philip Glass, "Glassworks - Expanded Edition": one session, 11 tracks.
var fullTOCGlassworks = []byte{
	0x00, 0x9c, 0x01, 0x01,
	0x01, 0x10, 0x00, 0xa0, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
	0x01, 0x10, 0x00, 0xa1, 0x00, 0x00, 0x00, 0x00, 0x0b, 0x00, 0x00,
	0x01, 0x10, 0x00, 0xa2, 0x00, 0x00, 0x00, 0x00, 0x3f, 0x03, 0x00,
	0x01, 0x10, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00,
	0x01, 0x10, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x06, 0x1a, 0x43,
	0x01, 0x10, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x0c, 0x1a, 0x1e,
	0x01, 0x10, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x14, 0x06, 0x39,
	0x01, 0x10, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x1a, 0x0b, 0x19,
	0x01, 0x10, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x21, 0x20, 0x28,
	0x01, 0x10, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x27, 0x24, 0x16,
	0x01, 0x10, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x28, 0x2e, 0x43,
	0x01, 0x10, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x2e, 0x1d, 0x19,
	0x01, 0x10, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x31, 0x36, 0x1b,
	0x01, 0x10, 0x00, 0x0b, 0x00, 0x00, 0x00, 0x00, 0x36, 0x34, 0x16,
}

// Lacuna Coil, "Karmacode": an Enhanced CD with 13 audio tracks in session 1
// and a single CD-XA data track in session 2.
var fullTOCKarmacode = []byte{
	0x00, 0xf4, 0x01, 0x02,
	0x01, 0x10, 0x00, 0xa0, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
	0x01, 0x10, 0x00, 0xa1, 0x00, 0x00, 0x00, 0x00, 0x0d, 0x00, 0x00,
	0x01, 0x10, 0x00, 0xa2, 0x00, 0x00, 0x00, 0x00, 0x2f, 0x1d, 0x08,
	0x01, 0x10, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00,
	0x01, 0x10, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x04, 0x1c, 0x3c,
	0x01, 0x10, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x07, 0x32, 0x36,
	0x01, 0x10, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x0b, 0x35, 0x3f,
	0x01, 0x10, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x20, 0x39,
	0x01, 0x10, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x13, 0x19, 0x25,
	0x01, 0x10, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x14, 0x39, 0x41,
	0x01, 0x10, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x18, 0x26, 0x49,
	0x01, 0x10, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x1c, 0x31, 0x30,
	0x01, 0x10, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x1f, 0x33, 0x1b,
	0x01, 0x10, 0x00, 0x0b, 0x00, 0x00, 0x00, 0x00, 0x23, 0x33, 0x00,
	0x01, 0x10, 0x00, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x27, 0x17, 0x3a,
	0x01, 0x10, 0x00, 0x0d, 0x00, 0x00, 0x00, 0x00, 0x2b, 0x17, 0x27,
	0x01, 0x50, 0x00, 0xb0, 0x31, 0x3b, 0x08, 0x02, 0x38, 0x33, 0x48,
	0x01, 0x50, 0x00, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x5f, 0x00, 0x00,
	0x02, 0x14, 0x00, 0xa0, 0x00, 0x00, 0x00, 0x00, 0x0e, 0x20, 0x00,
	0x02, 0x14, 0x00, 0xa1, 0x00, 0x00, 0x00, 0x00, 0x0e, 0x00, 0x00,
	0x02, 0x14, 0x00, 0xa2, 0x00, 0x00, 0x00, 0x00, 0x38, 0x33, 0x48,
	0x02, 0x14, 0x00, 0x0e, 0x00, 0x00, 0x00, 0x00, 0x32, 0x01, 0x08,
}

// Dashboard Confessional, "Dusk and Summer": track 1 starts at 09:46.50,
// with audio hidden in the pregap before it.
var fullTOCDuskAndSummer = []byte{
	0x00, 0x91, 0x01, 0x01,
	0x01, 0x10, 0x00, 0xa0, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
	0x01, 0x10, 0x00, 0xa1, 0x00, 0x00, 0x00, 0x00, 0x0a, 0x00, 0x00,
	0x01, 0x10, 0x00, 0xa2, 0x00, 0x00, 0x00, 0x00, 0x32, 0x19, 0x2e,
	0x01, 0x10, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x09, 0x2e, 0x32,
	0x01, 0x10, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x0d, 0x33, 0x33,
	0x01, 0x10, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x11, 0x22, 0x3f,
	0x01, 0x10, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x14, 0x3b, 0x0d,
	0x01, 0x10, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x18, 0x34, 0x26,
	0x01, 0x10, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x1c, 0x2f, 0x19,
	0x01, 0x10, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x21, 0x03, 0x13,
	0x01, 0x10, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x25, 0x1e, 0x28,
	0x01, 0x10, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x29, 0x27, 0x0d,
	0x01, 0x10, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x2e, 0x11, 0x25,
}

// Glassworks, format 0 in LBA mode.
var simpleTOCGlassworks = []byte{
	0x00, 0x62, 0x01, 0x0b,
	0x00, 0x10, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x10, 0x02, 0x00, 0x00, 0x00, 0x70, 0xc3,
	0x00, 0x10, 0x03, 0x00, 0x00, 0x00, 0xda, 0x16,
	0x00, 0x10, 0x04, 0x00, 0x00, 0x01, 0x60, 0xf5,
	0x00, 0x10, 0x05, 0x00, 0x00, 0x01, 0xcb, 0xc4,
	0x00, 0x10, 0x06, 0x00, 0x00, 0x02, 0x4d, 0x06,
	0x00, 0x10, 0x07, 0x00, 0x00, 0x02, 0xb7, 0x98,
	0x00, 0x10, 0x08, 0x00, 0x00, 0x02, 0xcc, 0x47,
	0x00, 0x10, 0x09, 0x00, 0x00, 0x03, 0x30, 0x9a,
	0x00, 0x10, 0x0a, 0x00, 0x00, 0x03, 0x6c, 0xab,
	0x00, 0x10, 0x0b, 0x00, 0x00, 0x03, 0xc3, 0xf4,
	0x00, 0x10, 0xaa, 0x00, 0x00, 0x04, 0x53, 0xb7,
}

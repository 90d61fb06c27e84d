package cdtext

// CD-TEXT buffers captured with READ TOC/PMA/ATIP format 5.

// Philip Glass, "Glassworks - Expanded Edition".
var cdTextGlassworks = []byte{
	0x03, 0x50, 0x00, 0x00,
	0x80, 0x00, 0x00, 0x00, 0x47, 0x6c, 0x61, 0x73, 0x73, 0x77, 0x6f, 0x72, 0x6b, 0x73, 0x20, 0x2d, 0x8e, 0xd0,
	0x80, 0x00, 0x01, 0x0c, 0x20, 0x45, 0x78, 0x70, 0x61, 0x6e, 0x64, 0x65, 0x64, 0x20, 0x45, 0x64, 0xfc, 0x47,
	0x80, 0x00, 0x02, 0x0f, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x00, 0x47, 0x6c, 0x61, 0x73, 0x73, 0x77, 0x51, 0xd5,
	0x80, 0x01, 0x03, 0x06, 0x6f, 0x72, 0x6b, 0x73, 0x3a, 0x20, 0x4f, 0x70, 0x65, 0x6e, 0x69, 0x6e, 0x84, 0x70,
	0x80, 0x01, 0x04, 0x0f, 0x67, 0x00, 0x47, 0x6c, 0x61, 0x73, 0x73, 0x77, 0x6f, 0x72, 0x6b, 0x73, 0x38, 0x2d,
	0x80, 0x02, 0x05, 0x0a, 0x3a, 0x20, 0x46, 0x6c, 0x6f, 0x65, 0x00, 0x47, 0x6c, 0x61, 0x73, 0x73, 0x5e, 0x69,
	0x80, 0x03, 0x06, 0x05, 0x77, 0x6f, 0x72, 0x6b, 0x73, 0x3a, 0x20, 0x49, 0x73, 0x6c, 0x61, 0x6e, 0x97, 0x86,
	0x80, 0x03, 0x07, 0x0f, 0x64, 0x73, 0x00, 0x47, 0x6c, 0x61, 0x73, 0x73, 0x77, 0x6f, 0x72, 0x6b, 0xce, 0x79,
	0x80, 0x04, 0x08, 0x09, 0x73, 0x3a, 0x20, 0x52, 0x75, 0x62, 0x72, 0x69, 0x63, 0x00, 0x47, 0x6c, 0xe9, 0x3e,
	0x80, 0x05, 0x09, 0x02, 0x61, 0x73, 0x73, 0x77, 0x6f, 0x72, 0x6b, 0x73, 0x3a, 0x20, 0x46, 0x61, 0x19, 0xb0,
	0x80, 0x05, 0x0a, 0x0e, 0x63, 0x61, 0x64, 0x65, 0x73, 0x00, 0x47, 0x6c, 0x61, 0x73, 0x73, 0x77, 0x07, 0x91,
	0x80, 0x06, 0x0b, 0x06, 0x6f, 0x72, 0x6b, 0x73, 0x3a, 0x20, 0x43, 0x6c, 0x6f, 0x73, 0x69, 0x6e, 0xfa, 0x87,
	0x80, 0x06, 0x0c, 0x0f, 0x67, 0x00, 0x49, 0x6e, 0x20, 0x54, 0x68, 0x65, 0x20, 0x55, 0x70, 0x70, 0x5d, 0xc2,
	0x80, 0x07, 0x0d, 0x0a, 0x65, 0x72, 0x20, 0x52, 0x6f, 0x6f, 0x6d, 0x3a, 0x20, 0x44, 0x61, 0x6e, 0x43, 0xc5,
	0x80, 0x07, 0x0e, 0x0f, 0x63, 0x65, 0x20, 0x49, 0x00, 0x49, 0x6e, 0x20, 0x54, 0x68, 0x65, 0x20, 0xa7, 0x03,
	0x80, 0x08, 0x0f, 0x07, 0x55, 0x70, 0x70, 0x65, 0x72, 0x20, 0x52, 0x6f, 0x6f, 0x6d, 0x3a, 0x20, 0xc2, 0x72,
	0x80, 0x08, 0x10, 0x0f, 0x44, 0x61, 0x6e, 0x63, 0x65, 0x20, 0x49, 0x49, 0x00, 0x49, 0x6e, 0x20, 0x29, 0xf3,
	0x80, 0x09, 0x11, 0x03, 0x54, 0x68, 0x65, 0x20, 0x55, 0x70, 0x70, 0x65, 0x72, 0x20, 0x52, 0x6f, 0x2d, 0x99,
	0x80, 0x09, 0x12, 0x0f, 0x6f, 0x6d, 0x3a, 0x20, 0x44, 0x61, 0x6e, 0x63, 0x65, 0x20, 0x56, 0x00, 0x69, 0xe1,
	0x80, 0x0a, 0x13, 0x00, 0x49, 0x6e, 0x20, 0x54, 0x68, 0x65, 0x20, 0x55, 0x70, 0x70, 0x65, 0x72, 0x6d, 0x0e,
	0x80, 0x0a, 0x14, 0x0c, 0x20, 0x52, 0x6f, 0x6f, 0x6d, 0x3a, 0x20, 0x44, 0x61, 0x6e, 0x63, 0x65, 0x1b, 0x94,
	0x80, 0x0a, 0x15, 0x0f, 0x20, 0x56, 0x49, 0x49, 0x49, 0x00, 0x49, 0x6e, 0x20, 0x54, 0x68, 0x65, 0x08, 0x41,
	0x80, 0x0b, 0x16, 0x06, 0x20, 0x55, 0x70, 0x70, 0x65, 0x72, 0x20, 0x52, 0x6f, 0x6f, 0x6d, 0x3a, 0x66, 0x3d,
	0x80, 0x0b, 0x17, 0x0f, 0x20, 0x44, 0x61, 0x6e, 0x63, 0x65, 0x20, 0x49, 0x58, 0x00, 0x00, 0x00, 0x63, 0xeb,
	0x81, 0x00, 0x18, 0x00, 0x50, 0x68, 0x69, 0x6c, 0x69, 0x70, 0x20, 0x47, 0x6c, 0x61, 0x73, 0x73, 0x4d, 0x0a,
	0x81, 0x00, 0x19, 0x0c, 0x20, 0x45, 0x6e, 0x73, 0x65, 0x6d, 0x62, 0x6c, 0x65, 0x2c, 0x20, 0x50, 0xc0, 0x3d,
	0x81, 0x00, 0x1a, 0x0f, 0x68, 0x69, 0x6c, 0x69, 0x70, 0x20, 0x47, 0x6c, 0x61, 0x73, 0x73, 0x2c, 0x17, 0x90,
	0x81, 0x00, 0x1b, 0x0f, 0x20, 0x4d, 0x69, 0x63, 0x68, 0x61, 0x65, 0x6c, 0x20, 0x52, 0x65, 0x69, 0x9c, 0x0d,
	0x81, 0x00, 0x1c, 0x0f, 0x73, 0x6d, 0x61, 0x6e, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xa5, 0xc1,
	0x81, 0x08, 0x1d, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd3, 0xb7,
	0x86, 0x00, 0x1e, 0x00, 0x53, 0x4b, 0x39, 0x30, 0x33, 0x39, 0x34, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc9, 0xb2,
	0x8e, 0x00, 0x1f, 0x00, 0x30, 0x37, 0x34, 0x36, 0x34, 0x33, 0x37, 0x32, 0x36, 0x35, 0x32, 0x38, 0xcc, 0x93,
	0x8e, 0x00, 0x20, 0x0c, 0x00, 0x55, 0x53, 0x53, 0x4d, 0x31, 0x38, 0x31, 0x30, 0x30, 0x33, 0x38, 0x90, 0xb6,
	0x8e, 0x01, 0x21, 0x0b, 0x35, 0x00, 0x55, 0x53, 0x53, 0x4d, 0x31, 0x30, 0x30, 0x31, 0x35, 0x32, 0x98, 0xeb,
	0x8e, 0x02, 0x22, 0x0a, 0x31, 0x33, 0x00, 0x55, 0x53, 0x53, 0x4d, 0x31, 0x38, 0x31, 0x30, 0x30, 0xfc, 0xba,
	0x8e, 0x03, 0x23, 0x09, 0x33, 0x38, 0x36, 0x00, 0x55, 0x53, 0x53, 0x4d, 0x31, 0x38, 0x31, 0x30, 0x4d, 0x45,
	0x8e, 0x04, 0x24, 0x08, 0x30, 0x33, 0x38, 0x37, 0x00, 0x55, 0x53, 0x53, 0x4d, 0x31, 0x30, 0x30, 0xea, 0xeb,
	0x8e, 0x05, 0x25, 0x07, 0x31, 0x35, 0x32, 0x31, 0x34, 0x00, 0x55, 0x53, 0x53, 0x4d, 0x31, 0x38, 0x33, 0x21,
	0x8e, 0x06, 0x26, 0x06, 0x31, 0x30, 0x30, 0x33, 0x38, 0x38, 0x00, 0x55, 0x53, 0x53, 0x4d, 0x31, 0x28, 0xdf,
	0x8e, 0x07, 0x27, 0x05, 0x38, 0x37, 0x30, 0x30, 0x36, 0x31, 0x39, 0x00, 0x55, 0x53, 0x53, 0x4d, 0x72, 0xeb,
	0x8e, 0x08, 0x28, 0x04, 0x31, 0x38, 0x37, 0x30, 0x30, 0x36, 0x32, 0x30, 0x00, 0x55, 0x53, 0x53, 0xa2, 0xc1,
	0x8e, 0x09, 0x29, 0x03, 0x4d, 0x31, 0x38, 0x37, 0x30, 0x30, 0x36, 0x32, 0x31, 0x00, 0x55, 0x53, 0x14, 0x87,
	0x8e, 0x0a, 0x2a, 0x02, 0x53, 0x4d, 0x31, 0x38, 0x37, 0x30, 0x30, 0x34, 0x38, 0x39, 0x00, 0x55, 0x53, 0x16,
	0x8e, 0x0b, 0x2b, 0x01, 0x53, 0x53, 0x4d, 0x31, 0x38, 0x37, 0x30, 0x30, 0x36, 0x32, 0x32, 0x00, 0xc7, 0xc6,
	0x8f, 0x00, 0x2c, 0x00, 0x01, 0x01, 0x0b, 0x00, 0x18, 0x06, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x94, 0x57,
	0x8f, 0x01, 0x2d, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0d, 0x03, 0x2e, 0x00, 0x00, 0x00, 0xe5, 0x8d,
	0x8f, 0x02, 0x2e, 0x00, 0x00, 0x00, 0x00, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xe7, 0x87,
}

// Chevelle, "Wonder What's Next". The title of track 8 has no pack of its
// own: it sits in the middle of a pack whose header names track 7.
var cdTextWonderWhatsNext = []byte{
	0x03, 0x1a, 0x00, 0x00,
	0x80, 0x00, 0x00, 0x00, 0x57, 0x6f, 0x6e, 0x64, 0x65, 0x72, 0x20, 0x57, 0x68, 0x61, 0x74, 0x27, 0xe0, 0x58,
	0x80, 0x00, 0x01, 0x0c, 0x73, 0x20, 0x4e, 0x65, 0x78, 0x74, 0x00, 0x46, 0x61, 0x6d, 0x69, 0x6c, 0xb0, 0x12,
	0x80, 0x01, 0x02, 0x05, 0x79, 0x20, 0x53, 0x79, 0x73, 0x74, 0x65, 0x6d, 0x00, 0x43, 0x6f, 0x6d, 0x1c, 0xae,
	0x80, 0x02, 0x03, 0x03, 0x66, 0x6f, 0x72, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x20, 0x4c, 0x69, 0x61, 0xf6, 0x79,
	0x80, 0x02, 0x04, 0x0f, 0x72, 0x00, 0x53, 0x65, 0x6e, 0x64, 0x20, 0x54, 0x68, 0x65, 0x20, 0x50, 0xe4, 0x80,
	0x80, 0x03, 0x05, 0x0a, 0x61, 0x69, 0x6e, 0x20, 0x42, 0x65, 0x6c, 0x6f, 0x77, 0x00, 0x43, 0x6c, 0x9f, 0xe9,
	0x80, 0x04, 0x06, 0x02, 0x6f, 0x73, 0x75, 0x72, 0x65, 0x00, 0x54, 0x68, 0x65, 0x20, 0x52, 0x65, 0x61, 0xf6,
	0x80, 0x05, 0x07, 0x06, 0x64, 0x00, 0x57, 0x6f, 0x6e, 0x64, 0x65, 0x72, 0x20, 0x57, 0x68, 0x61, 0x2f, 0xe3,
	0x80, 0x06, 0x08, 0x0a, 0x74, 0x27, 0x73, 0x20, 0x4e, 0x65, 0x78, 0x74, 0x00, 0x44, 0x6f, 0x6e, 0xa1, 0x30,
	0x80, 0x07, 0x09, 0x03, 0x27, 0x74, 0x20, 0x46, 0x61, 0x6b, 0x65, 0x20, 0x54, 0x68, 0x69, 0x73, 0x34, 0x61,
	0x80, 0x07, 0x0a, 0x0f, 0x00, 0x46, 0x6f, 0x72, 0x66, 0x65, 0x69, 0x74, 0x00, 0x47, 0x72, 0x61, 0x58, 0xec,
	0x80, 0x09, 0x0b, 0x03, 0x62, 0x20, 0x54, 0x68, 0x79, 0x20, 0x48, 0x61, 0x6e, 0x64, 0x00, 0x41, 0xe5, 0xa3,
	0x80, 0x0a, 0x0c, 0x01, 0x6e, 0x20, 0x45, 0x76, 0x65, 0x6e, 0x69, 0x6e, 0x67, 0x20, 0x57, 0x69, 0xe7, 0x0e,
	0x80, 0x0a, 0x0d, 0x0d, 0x74, 0x68, 0x20, 0x45, 0x6c, 0x20, 0x44, 0x69, 0x61, 0x62, 0x6c, 0x6f, 0x49, 0xff,
	0x80, 0x0a, 0x0e, 0x0f, 0x00, 0x4f, 0x6e, 0x65, 0x20, 0x4c, 0x6f, 0x6e, 0x65, 0x6c, 0x79, 0x20, 0xab, 0x1e,
	0x80, 0x0b, 0x0f, 0x0b, 0x56, 0x69, 0x73, 0x69, 0x74, 0x6f, 0x72, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 0xc3,
	0x81, 0x00, 0x10, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0xc5, 0xed,
	0x81, 0x01, 0x11, 0x03, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x26, 0xdb,
	0x81, 0x02, 0x12, 0x06, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0xba, 0x91,
	0x81, 0x04, 0x13, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0xd3, 0xfc,
	0x81, 0x05, 0x14, 0x03, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x3b, 0xad,
	0x81, 0x06, 0x15, 0x06, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0x51, 0x25,
	0x81, 0x08, 0x16, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0xe9, 0xcf,
	0x81, 0x09, 0x17, 0x03, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x0a, 0xf9,
	0x81, 0x0a, 0x18, 0x06, 0x6c, 0x65, 0x00, 0x43, 0x68, 0x65, 0x76, 0x65, 0x6c, 0x6c, 0x65, 0x00, 0x80, 0x7d,
	0x86, 0x00, 0x19, 0x00, 0x45, 0x4b, 0x38, 0x36, 0x31, 0x35, 0x37, 0x00, 0x00, 0x00, 0x00, 0x00, 0xa3, 0x3a,
	0x8e, 0x00, 0x1a, 0x00, 0x00, 0x55, 0x53, 0x2d, 0x53, 0x4d, 0x31, 0x2d, 0x30, 0x32, 0x2d, 0x30, 0x7d, 0x54,
	0x8e, 0x01, 0x1b, 0x0b, 0x31, 0x35, 0x32, 0x37, 0x00, 0x55, 0x53, 0x2d, 0x53, 0x4d, 0x31, 0x2d, 0x80, 0x02,
	0x8e, 0x02, 0x1c, 0x07, 0x30, 0x32, 0x2d, 0x30, 0x31, 0x35, 0x32, 0x38, 0x00, 0x55, 0x53, 0x2d, 0xa2, 0x5f,
	0x8e, 0x03, 0x1d, 0x03, 0x53, 0x4d, 0x31, 0x2d, 0x30, 0x32, 0x2d, 0x30, 0x31, 0x35, 0x32, 0x39, 0xa2, 0x31,
	0x8e, 0x03, 0x1e, 0x0f, 0x00, 0x55, 0x53, 0x2d, 0x53, 0x4d, 0x31, 0x2d, 0x30, 0x32, 0x2d, 0x30, 0xa2, 0x86,
	0x8e, 0x04, 0x1f, 0x0b, 0x31, 0x35, 0x33, 0x30, 0x00, 0x55, 0x53, 0x2d, 0x53, 0x4d, 0x31, 0x2d, 0x96, 0x07,
	0x8e, 0x05, 0x20, 0x07, 0x30, 0x32, 0x2d, 0x30, 0x31, 0x35, 0x33, 0x31, 0x00, 0x55, 0x53, 0x2d, 0x7a, 0xe2,
	0x8e, 0x06, 0x21, 0x03, 0x53, 0x4d, 0x31, 0x2d, 0x30, 0x32, 0x2d, 0x30, 0x31, 0x35, 0x33, 0x32, 0x58, 0xd3,
	0x8e, 0x06, 0x22, 0x0f, 0x00, 0x55, 0x53, 0x2d, 0x53, 0x4d, 0x31, 0x2d, 0x30, 0x32, 0x2d, 0x30, 0xda, 0x3e,
	0x8e, 0x07, 0x23, 0x0b, 0x31, 0x35, 0x33, 0x33, 0x00, 0x55, 0x53, 0x2d, 0x53, 0x4d, 0x31, 0x2d, 0x15, 0x90,
	0x8e, 0x08, 0x24, 0x07, 0x30, 0x32, 0x2d, 0x30, 0x31, 0x35, 0x33, 0x34, 0x00, 0x55, 0x53, 0x2d, 0xb6, 0x1b,
	0x8e, 0x09, 0x25, 0x03, 0x53, 0x4d, 0x31, 0x2d, 0x30, 0x32, 0x2d, 0x30, 0x31, 0x35, 0x33, 0x35, 0x8a, 0x43,
	0x8e, 0x09, 0x26, 0x0f, 0x00, 0x55, 0x53, 0x2d, 0x53, 0x4d, 0x31, 0x2d, 0x30, 0x32, 0x2d, 0x30, 0x78, 0x49,
	0x8e, 0x0a, 0x27, 0x0b, 0x31, 0x35, 0x33, 0x36, 0x00, 0x55, 0x53, 0x2d, 0x53, 0x4d, 0x31, 0x2d, 0x8d, 0xf2,
	0x8e, 0x0b, 0x28, 0x07, 0x30, 0x32, 0x2d, 0x30, 0x31, 0x35, 0x33, 0x37, 0x00, 0x00, 0x00, 0x00, 0xb6, 0x3f,
	0x8f, 0x00, 0x29, 0x00, 0x01, 0x01, 0x0b, 0x03, 0x10, 0x09, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0xab, 0xe4,
	0x8f, 0x01, 0x2a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x03, 0x2b, 0x00, 0x00, 0x00, 0xa2, 0x8e,
	0x8f, 0x02, 0x2b, 0x00, 0x00, 0x00, 0x00, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x61, 0x43,
}

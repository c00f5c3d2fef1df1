package stdlib

// Compiled bytecode for each module of the standard library. Like the
// script blobs in the stdscript registry, these bytes are produced by an
// external compiler and carried here as opaque assets. Each begins with
// the compiled-unit magic and format version.
var hashModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0x00, 0x52, 0x57, 0x5d, 0xae, 0x23, 0x25, 0xfa,
	0x64, 0x59, 0x4a, 0x81, 0xa2, 0x34, 0xfb, 0x0f,
	0xa5, 0x3e, 0x9c, 0xe9, 0x96, 0x3b, 0xe3, 0xef,
	0x9d, 0xa2, 0xec, 0xcd, 0xc8, 0x76, 0x61, 0xd4,
	0x1b, 0xd3, 0x90, 0xc3, 0x8c, 0x8e, 0xa8, 0xf7,
	0x68, 0x20, 0x86, 0x33, 0x52, 0x8d, 0xa1, 0x59,
	0xff, 0xf9, 0x8b, 0x5c, 0x74, 0xa3, 0x84, 0x25,
	0x09, 0xd2, 0x22, 0x45, 0x1e, 0xc3, 0xa9, 0xb7,
	0xb1, 0xc7, 0x00, 0x43, 0x7e, 0xab,
}

var signatureModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0x7d, 0xa2, 0x6c, 0x51, 0x0c, 0x17, 0x5d, 0x8d,
	0xf4, 0x82, 0x96, 0x5e, 0xa2, 0xb6, 0x97, 0xd3,
	0xf9, 0xab, 0xbb, 0x77, 0x91, 0x22, 0xa6, 0xad,
	0xe6, 0xd3, 0x75, 0x07, 0xae, 0x52, 0x1e, 0xc0,
	0x44, 0x62, 0x58, 0x6c, 0x10, 0x37, 0xae, 0x5b,
	0xe5, 0x5b, 0xe7, 0xbd,
}

var vectorModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0x76, 0x9e, 0x73, 0xb7, 0xf4, 0x0d, 0xcb, 0x6b,
	0x63, 0xde, 0x7e, 0xd6, 0xcc, 0x7f, 0xf1, 0xa3,
	0xc2, 0x52, 0xfd, 0x1a, 0x97, 0x3f, 0xe4, 0x8f,
	0x26, 0xae, 0x19, 0xdd, 0x2d, 0xe2, 0x60, 0x0b,
	0x72, 0xa3, 0x32, 0xdc, 0xf2, 0x95, 0x1f, 0x5a,
	0x16, 0x65, 0xd3, 0x1b, 0x22, 0xbd, 0x88, 0x43,
	0x28, 0xa9, 0x77, 0x9d, 0x17, 0x69, 0x44, 0x2f,
	0xe0, 0x35, 0x50, 0x83, 0xe1, 0x24, 0xc6, 0x8d,
	0x00, 0x5a, 0xda, 0x67, 0x49, 0x65, 0x74, 0x64,
	0x51, 0xe1, 0x28, 0xa8, 0xb4, 0x1a, 0xcc, 0x5d,
	0x54, 0xd4, 0xb8, 0x5a, 0x4a, 0x76, 0x89, 0xd3,
	0xaa, 0x02, 0x3c, 0xdf, 0xef,
}

var eventModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0x6e, 0xf6, 0xb2, 0x61, 0x6a, 0xd2, 0x81, 0x18,
	0x22, 0xf3, 0xdd, 0x00, 0x99, 0x53, 0x17, 0xf9,
	0xe1, 0xfa, 0xba, 0x70, 0x7d, 0x4f, 0xbb, 0xc5,
	0xe0, 0x3d, 0xd5, 0x53, 0x73, 0x4f, 0x2b, 0xe3,
	0xb8, 0x14, 0xfe, 0x0f, 0x4e, 0x71, 0x7d, 0x78,
	0x19, 0xa6, 0x2f, 0xc3, 0x67, 0x45, 0x6e, 0xff,
	0x0b, 0x84, 0x25, 0xa8, 0xe0, 0x4a, 0x95, 0xa9,
	0xd8, 0x41, 0x9f, 0x3c, 0xee, 0x00, 0x66, 0x12,
	0xcf, 0xfd, 0x4f, 0xe2, 0xbb, 0x63, 0x08, 0x48,
	0x07, 0x30, 0x48,
}

var coinModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0xc3, 0xf8, 0x43, 0x3f, 0x59, 0x16, 0x0e, 0x35,
	0x11, 0x16, 0x3c, 0xcc, 0xa4, 0x75, 0x8b, 0xf8,
	0x99, 0xcc, 0x47, 0x8c, 0x93, 0x10, 0x3c, 0x17,
	0xb6, 0x63, 0x40, 0xc2, 0x06, 0x02, 0xd2, 0x2f,
	0xb3, 0x63, 0x38, 0xcc, 0x60, 0x11, 0xec, 0x01,
	0x26, 0xb4, 0x6b, 0xda, 0xa8, 0x1f, 0xc3, 0xa2,
	0x50, 0x57, 0x2c, 0x0b, 0xb9, 0x0f, 0x71, 0x2b,
	0x58, 0x1e, 0x2e, 0x4a, 0x48, 0x4d, 0x73, 0xac,
	0x95, 0xfb, 0x8f, 0xfa, 0x1d, 0x7f, 0x57, 0x5e,
	0xb8, 0x48, 0x0b, 0xbd, 0x1b,
}

var lbrModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0x4c, 0xf0, 0x63, 0x1d, 0x5a, 0xb1, 0x53, 0x52,
	0x72, 0x68, 0xbd, 0xcc, 0x4c, 0x32, 0x4a, 0xe1,
	0xc3, 0xc9, 0xb5, 0x23, 0xb5, 0xde, 0x09, 0xe3,
	0xe0, 0x5e, 0x8e, 0x6b, 0xa0, 0x8a, 0xb9, 0x46,
	0x46, 0xa9, 0xae, 0x3a, 0xfe, 0xed, 0x2e, 0xbb,
	0xeb, 0x3a, 0x3b, 0x13, 0xf6, 0xc6, 0xb5, 0x5e,
	0x5c, 0x61, 0xd6, 0xe6, 0x08, 0x35, 0xb3, 0x59,
	0xcc, 0x21, 0xd7, 0x86, 0xad, 0xcf, 0xc7, 0x54,
	0x07, 0x7f, 0xe4, 0xb0, 0x36,
}

var accountModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0x4f, 0x17, 0x73, 0x31, 0xfc, 0xa0, 0x06, 0x52,
	0x48, 0x75, 0xe1, 0x13, 0xd5, 0x7d, 0xd5, 0x53,
	0xc9, 0x93, 0xea, 0x32, 0x4f, 0x1c, 0x9e, 0xcf,
	0x53, 0xa0, 0x18, 0x1c, 0x34, 0x32, 0x12, 0x4b,
	0x3d, 0xd5, 0xd6, 0x6a, 0xfb, 0xd3, 0xbe, 0x14,
	0xb7, 0xae, 0x58, 0x7e, 0x25, 0xa2, 0x5a, 0xc8,
	0xf7, 0xb1, 0x6a, 0xc9, 0x09, 0xdd, 0x38, 0x47,
	0x08, 0x4e, 0xf0, 0xe8, 0xa6, 0x19, 0x54, 0x00,
}

var validatorConfigModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0x8e, 0x9f, 0x49, 0xe2, 0x24, 0x8b, 0x22, 0xd3,
	0xd8, 0xbd, 0x26, 0x90, 0x51, 0x8f, 0xb9, 0x2c,
	0xee, 0x04, 0x5c, 0xb6, 0x96, 0x58, 0x9d, 0x77,
	0x48, 0xbf, 0xca, 0x7e, 0xe9, 0xae, 0x9d, 0xaa,
	0x8f, 0x7e, 0x44, 0x5e, 0xb0, 0xff, 0xd1, 0xb1,
	0x23,
}

var vaspModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0x09, 0x7c, 0x09, 0x71, 0xc8, 0x34, 0xfe, 0xe2,
	0xdd, 0x54, 0xa0, 0x99, 0x23, 0xfe, 0xaa, 0x7a,
	0x7a, 0x44, 0xb8, 0x0e, 0xde, 0x22, 0x22, 0xb5,
	0x38, 0x60, 0x26, 0xa8, 0xf7, 0x20, 0x62, 0xd3,
	0x51, 0xed, 0xa2, 0xdb, 0x22, 0x3a, 0xfb, 0x42,
	0xc9, 0x04, 0x7b, 0x3d, 0xa2, 0x28, 0x95, 0xa2,
	0xa9, 0x02, 0xe0, 0xa1, 0xa2, 0x9e, 0x38, 0xe7,
	0x49, 0xcf, 0xbe,
}

var accountLimitsModuleBytecode = []byte{
	0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
	0xac, 0x6b, 0xa3, 0xff, 0x20, 0xd0, 0xca, 0x8f,
	0x66, 0xd5, 0xfc, 0x44, 0x31, 0x73, 0x49, 0x5e,
	0xdb, 0x57, 0x2d, 0xdf, 0x07, 0xec, 0x8d, 0xd7,
	0x02, 0x79, 0xb4, 0x83, 0x09, 0x1c, 0x18, 0xfe,
	0xae, 0x42, 0x31, 0x8c, 0x63, 0xb9, 0xfb, 0x2b,
	0xb4, 0x3d,
}


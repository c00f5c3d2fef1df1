package stdscript

// Compiled bytecode for each script in the standard library, keyed by
// ScriptID. Every blob begins with the compiled-unit magic and format
// version. These bytes are the compatibility contract with the
// interpreter: they must match what every validator executes, byte for
// byte, and must only change together with a coordinated stdlib release.
var compiledBytecode = map[ScriptID][]byte{
	AddCurrencyToAccount: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x1c, 0x39, 0x5d, 0xa2, 0x95, 0xb7, 0x7e, 0x05,
		0xbc, 0xc5, 0xbf, 0xae, 0x57, 0x22, 0x45, 0x07,
		0x1f, 0x8f, 0x7b, 0x45, 0x94, 0x89, 0x79, 0xb8,
		0xe4, 0x1f, 0xb9, 0x68, 0x96, 0x2c, 0x88, 0x03,
		0xc3, 0xa9, 0xd4, 0x92, 0xda, 0x20, 0xee, 0x86,
		0x4e, 0x77, 0x1e, 0x4d, 0x15, 0x3a, 0x93,
	},
	AddValidator: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xfc, 0x15, 0xf1, 0xbe, 0x80, 0x15, 0x51, 0x76,
		0xfb, 0x2a, 0x1d, 0xed, 0xbb, 0xed, 0x68, 0x45,
		0x17, 0x25, 0x73, 0x02, 0xd1, 0x50, 0x60, 0x05,
		0x9a, 0x54, 0xfc, 0xeb, 0x7b, 0x65, 0x9e, 0xda,
		0x97, 0xe9, 0xe4, 0x16, 0x03, 0x2f, 0xe6, 0xcd,
		0xd5, 0xbc, 0xbb, 0xbb, 0x88, 0xca, 0x24, 0x05,
		0xf3,
	},
	Burn: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x85, 0x9f, 0xac, 0xc5, 0xa4, 0xc9, 0xb8, 0x0a,
		0xc2, 0xee, 0xf7, 0x89, 0x16, 0xc1, 0x95, 0x3b,
		0xcc, 0xca, 0xab, 0x60, 0x14, 0xbb, 0x11, 0xb9,
		0xde, 0x83, 0x37, 0x43, 0x0e, 0xa3, 0x4f, 0x0c,
		0x50, 0xbe, 0x0d, 0xff, 0xe9, 0x3c, 0xbc, 0x30,
		0x48,
	},
	BurnTxnFees: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x1f, 0xc3, 0xeb, 0x03, 0xa8, 0x51, 0xce, 0xa5,
		0xa9, 0xe1, 0xe7, 0xfb, 0xf2, 0x3e, 0x71, 0x79,
		0x53, 0x23, 0xb9, 0x32, 0x60, 0xfe, 0x2e, 0x5f,
		0x20, 0xfc, 0x0a, 0x26, 0xfa, 0x9f, 0xf5, 0xaf,
		0x5e, 0x33, 0xf3, 0xcc, 0xc8, 0x37, 0x69, 0xa2,
		0xae, 0x61, 0x57, 0x50, 0x42, 0x45, 0xdd, 0x8c,
		0x8b, 0xc2,
	},
	CancelBurn: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x9e, 0x3a, 0x22, 0x29, 0x94, 0xc3, 0xa0, 0x6f,
		0xac, 0xa4, 0x68, 0xf0, 0x2e, 0x28, 0x05, 0x45,
		0x95, 0xcb, 0xbe, 0xd6, 0xdd, 0x4f, 0xd3, 0x92,
		0xf7, 0x41, 0x95, 0xb9, 0xd9,
	},
	CreateChildVASPAccount: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x34, 0x8c, 0x73, 0xbe, 0x4d, 0x47, 0x03, 0x5f,
		0x78, 0x12, 0xd4, 0x07, 0x06, 0x93, 0x75, 0xfe,
		0xe4, 0x67, 0x84, 0xe4, 0x05, 0xdb, 0xc0, 0x31,
		0x8b, 0x22, 0xe7, 0x2d, 0x1f, 0x47, 0xb6, 0x3d,
		0xf0, 0x56,
	},
	CreateDesignatedDealer: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xc9, 0xc3, 0x7e, 0x35, 0x29, 0x62, 0x4f, 0xbc,
		0x18, 0xb8, 0xe0, 0xcd, 0x46, 0x5c, 0xe4, 0x9c,
		0xf3, 0xf1, 0x90, 0x05, 0x62, 0x6f, 0xb2, 0x31,
		0x0e, 0xa0, 0xf2, 0x1b, 0xd1, 0xc6, 0xe3, 0xd4,
		0xf8, 0x46, 0x79,
	},
	CreateParentVASPAccount: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xc2, 0xc0, 0xd3, 0x13, 0x9f, 0x9b, 0xbf, 0x8e,
		0x66, 0x27, 0x0c, 0x44, 0x72, 0xff, 0x85, 0x6c,
		0x74, 0xbb, 0x62, 0xf1, 0x3b, 0xac, 0xbb, 0xbc,
		0x01, 0xe7, 0x44, 0x7a,
	},
	FreezeAccount: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x6f, 0x03, 0xa8, 0x16, 0xfe, 0x84, 0xfd, 0x5f,
		0x3b, 0xf8, 0xa4, 0x81, 0x32, 0xc9, 0xd2, 0x73,
		0x21, 0xbf, 0x8a,
	},
	Mint: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xdc, 0x6f, 0x17, 0xbb, 0xec, 0x82, 0x4f, 0xff,
		0x8f, 0x86, 0x58, 0x79, 0x66, 0xb2, 0x04, 0x7d,
		0xb6, 0xab, 0x73, 0x67, 0x85, 0x84, 0x01, 0x51,
		0xf1, 0x3d, 0x1d, 0xab, 0x12, 0x4e, 0x2a, 0x54,
		0xcb, 0x4a, 0x3b, 0xbd, 0x20, 0x03, 0x77, 0xfb,
		0xb7, 0xec, 0x6d, 0x5e, 0x0b, 0x77, 0x92, 0x5d,
		0xc1, 0xe7, 0xd6, 0xa4, 0xc8, 0x85,
	},
	MintLBR: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x48, 0x23, 0xb8, 0xad, 0x17, 0x2f, 0xc9, 0xd7,
		0x3d, 0x72, 0x86, 0x85, 0x62, 0x72, 0xdb, 0x32,
		0x6b, 0xaa, 0xf4, 0x07, 0xee, 0xb7, 0xdd, 0x4f,
		0xec, 0x43, 0x22, 0xfe, 0x27, 0x9a, 0x3d, 0x27,
		0x58, 0x33, 0x1f, 0xcd, 0xd7, 0x6c, 0xf2, 0x12,
		0xf9, 0x37, 0x09, 0xb6, 0xa9, 0x90, 0x6f, 0x43,
		0x7b, 0x16, 0xe6, 0xc8, 0x33, 0x32,
	},
	MintLBRToAddress: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xfb, 0x88, 0x6a, 0xfe, 0xc1, 0x5f, 0xf3, 0x1e,
		0x6c, 0x45, 0xd3, 0xe3, 0x8c, 0x60, 0x98, 0xe4,
		0x2c, 0xb7, 0x52, 0x20, 0xf7, 0x62, 0x9a, 0x06,
		0x83, 0x2b, 0x8e, 0x4d, 0x1b, 0x12, 0x74, 0x28,
		0x17, 0x91, 0x9e, 0xde, 0x86, 0x60, 0x76, 0xd2,
		0x54, 0x80, 0x6e, 0x75, 0x86, 0xe9, 0x3d, 0x98,
	},
	ModifyPublishingOption: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x06, 0x89, 0x6d, 0x6d, 0xb6, 0x09, 0x2a, 0xa6,
		0xfd, 0xa5, 0x49, 0xe2, 0xea, 0x03, 0xc7, 0x83,
		0x6f, 0x3a, 0xe0, 0x2d, 0x27, 0xe3, 0x63, 0xb7,
		0x0b,
	},
	PeerToPeerWithMetadata: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x77, 0xbc, 0x96, 0x80, 0x02, 0xa3, 0x85, 0x21,
		0xc3, 0xbe, 0x73, 0x55, 0xe3, 0xb6, 0x26, 0x57,
		0x6c, 0x4f, 0xfb, 0x5d, 0x00, 0x40, 0xee, 0xb6,
		0xc4, 0xa5, 0x0d,
	},
	Preburn: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x97, 0x5c, 0xbe, 0x26, 0x3f, 0xc0, 0x70, 0x3b,
		0xa9, 0x46, 0xbc, 0x35, 0x19, 0xbc, 0x19, 0x99,
		0x88, 0x7e, 0x7c, 0x8a, 0x68, 0x37,
	},
	PublishSharedEd25519PublicKey: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x1f, 0x1b, 0x35, 0x7c, 0x65, 0x68, 0xa6, 0x67,
		0x1e, 0x2f, 0x91, 0x38, 0x13, 0x2c, 0x66, 0x2c,
		0x9e, 0xf6, 0xd4, 0x94, 0x36, 0x1f, 0x4c, 0x63,
		0x59, 0x8e, 0x5c, 0x76, 0xae, 0x06, 0x6a, 0xa1,
		0x66, 0x36, 0xbc, 0xd0, 0x97, 0x95, 0x09, 0x2a,
		0x7a, 0x19, 0x3f, 0xa1, 0xac, 0xfc, 0x41, 0x6c,
		0xb6, 0x2d,
	},
	RegisterPreburner: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xc2, 0xa9, 0xde, 0x59, 0x89, 0x40, 0x0a, 0xc8,
		0x7a, 0xef, 0x14, 0xa6, 0x89, 0xce, 0xe5, 0xd9,
		0x0c, 0x7b, 0x23, 0x99, 0x0a, 0x24, 0x77, 0x17,
		0x9f, 0x1d, 0x74, 0xee,
	},
	RegisterValidator: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x9e, 0xb4, 0xfd, 0x78, 0x9f, 0xff, 0xd0, 0x61,
		0x95, 0xc6, 0x83, 0x75, 0xf5, 0xe9, 0xb5, 0x39,
		0x50, 0xa9, 0xa6, 0x64, 0x1d, 0x6f, 0xe2, 0x39,
		0x42, 0x0b, 0x6d, 0x34, 0x2c,
	},
	RemoveValidator: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xff, 0x61, 0xff, 0x26, 0x25, 0x13, 0xbc, 0xd1,
		0x19, 0x87, 0x94, 0x28, 0x6f, 0xb6, 0xd6, 0x82,
		0x0c, 0x51, 0xe0, 0xf8, 0x23, 0x69, 0x41, 0x5a,
		0xdc, 0xdb, 0xf0, 0x34, 0x16, 0xb0, 0xe8, 0x5f,
		0x3a, 0x36, 0xaa, 0x1a, 0x98, 0xe4, 0x3d, 0x49,
		0xc3, 0x2b, 0x5c, 0x9c, 0xb1, 0x21, 0xed, 0x84,
		0x7a, 0x30, 0xe5, 0xc9,
	},
	RotateAuthenticationKey: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x84, 0x80, 0xb0, 0xe3, 0x8c, 0xe7, 0x9c, 0xff,
		0xeb, 0xbf, 0xcf, 0xf9, 0xb8, 0x8a, 0x52, 0xf0,
		0x1b, 0xc9, 0x98, 0x47, 0xd0, 0x14, 0x80, 0x30,
		0x06, 0x2e, 0xbc, 0x11, 0x79, 0xad, 0xe2, 0xbe,
		0xe2, 0xb0, 0x64, 0xcb, 0x2f, 0x0d, 0x63, 0x11,
	},
	RotateAuthenticationKeyWithNonce: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x64, 0x98, 0x4e, 0x8c, 0xa6, 0xe9, 0xed, 0xda,
		0x34, 0xb1, 0x15, 0x5b, 0xdc, 0x4c, 0x11, 0x3d,
		0xb3, 0xcc, 0xa6, 0x38, 0xcb, 0xf2, 0x22, 0xce,
		0x4e, 0x53, 0xb0, 0x1c, 0xc3, 0xa4, 0x28, 0x59,
		0x20, 0x8c, 0x59, 0x92, 0xf3, 0xb0, 0x52, 0xa3,
		0x01, 0x33, 0xdd, 0x51, 0xf8,
	},
	RotateBaseURL: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xff, 0xb8, 0xff, 0xf7, 0x4a, 0x6c, 0x33, 0x25,
		0x9d, 0x97, 0x04, 0xfa, 0x77, 0xc5, 0xe0, 0x81,
		0x9b, 0x8c, 0xd4, 0x41, 0x4b, 0x2b, 0xba, 0xe9,
		0x22, 0xb2, 0xac, 0x44, 0xba, 0x88, 0xf6, 0x56,
		0xc0, 0x65, 0x3b, 0x21, 0x01, 0xfd, 0x3e, 0x78,
		0x64, 0x95, 0x6b, 0x18, 0x08, 0x39, 0xc9, 0x50,
		0x79, 0x14, 0x6a, 0x9a,
	},
	RotateCompliancePublicKey: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xca, 0x9c, 0x39, 0xba, 0x43, 0xd3, 0x69, 0x74,
		0xbc, 0x31, 0xb6, 0x5f, 0x1a, 0x90, 0x5d, 0xdc,
		0xaa, 0x0b, 0xf4, 0x7e, 0x29, 0xae, 0x8c, 0x12,
		0x21, 0xff, 0x45, 0x4b, 0x55, 0x13, 0x0a, 0x48,
		0xff, 0x7e, 0x7f, 0x13,
	},
	RotateConsensusPubkey: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x0c, 0x90, 0x7e, 0x07, 0x47, 0x4a, 0x8d, 0xe4,
		0x2b, 0x0d, 0x5d, 0xdf, 0x4c, 0x34, 0xf1, 0x1b,
		0x16, 0xba, 0xe4, 0xe5, 0x6b, 0xc0, 0xe3, 0x80,
		0x2d, 0x0d, 0xe5, 0xcc, 0x50, 0x7e, 0xb8,
	},
	RotateSharedEd25519PublicKey: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xc7, 0x44, 0x46, 0xfc, 0xd3, 0x69, 0x14, 0xfb,
		0x0f, 0x56, 0xa8, 0x39, 0xa4, 0x3c, 0x4b, 0x33,
		0x13, 0x72, 0x1e, 0x31, 0xf4, 0xde, 0x33, 0xf1,
		0x63, 0xde, 0x4d, 0xad, 0xd4, 0xa7, 0x68, 0x58,
		0xc7,
	},
	TieredMint: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x93, 0xc9, 0xee, 0xac, 0xbd, 0xe5, 0x74, 0x08,
		0x60, 0x6a, 0x4d, 0x10, 0x38, 0x86, 0x39, 0x12,
		0xdc, 0x11, 0xb1, 0x0e, 0xfa, 0x32, 0x54, 0x8f,
		0xbe, 0xd5, 0x43, 0xb0, 0xc3, 0xcc, 0xbb, 0xc8,
		0x15, 0xd9, 0x06, 0x1c, 0xb1, 0x6e, 0x47, 0xa0,
		0x8e, 0xe8, 0x0b, 0xf2, 0x88, 0xd1, 0xf3, 0x54,
		0x71, 0xd2, 0x49, 0x0c, 0x29, 0x64, 0x19,
	},
	UnfreezeAccount: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x52, 0x63, 0x66, 0x1e, 0x1d, 0xc3, 0x1b, 0x2b,
		0x0e, 0xcf, 0xba, 0xa6, 0xc7, 0xbd, 0x33, 0x5b,
		0xc3, 0x60, 0xd2, 0x06, 0xf6, 0xf9, 0xaf, 0xe2,
		0x03, 0x28, 0x45,
	},
	UnmintLBR: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x9b, 0xf5, 0x68, 0xd4, 0xc7, 0xfb, 0x1d, 0xe1,
		0x8a, 0xb0, 0x06, 0x5d, 0x2e, 0xe0, 0xea, 0x08,
		0x62, 0x1d, 0xd5, 0x66, 0x28, 0x50, 0x23, 0x72,
		0x09, 0xb8,
	},
	UpdateExchangeRate: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0xc9, 0x69, 0xea, 0x2e, 0xcc, 0xea, 0x7f, 0xb8,
		0x0e, 0x4c, 0x83, 0xbb, 0x27, 0x1f, 0x93, 0x84,
		0x02, 0x89, 0xe2, 0x98, 0x56, 0x2d, 0x0d, 0x5f,
		0xaf, 0xce, 0x25, 0xf4, 0x61, 0xd1, 0x1b, 0x71,
		0x22, 0x0b, 0xe9,
	},
	UpdateMintingAbility: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x19, 0x75, 0x3e, 0x95, 0x4a, 0xff, 0xf2, 0x6f,
		0x2b, 0x29, 0x28, 0x19, 0xe5, 0xf2, 0x28, 0xe0,
		0x4e, 0x50, 0xa4, 0x9e, 0x8c, 0x0d, 0x39, 0x1a,
		0x73, 0xc0, 0x74, 0xd1, 0xa6, 0xa8, 0x06, 0x6e,
		0xba, 0x3c, 0x80, 0xd8, 0xb0, 0x7e, 0xb9, 0xc1,
		0x27, 0x50, 0xd7, 0xb8,
	},
	UpdateChainVersion: {
		0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00,
		0x81, 0xfe, 0x09, 0xc7, 0xd7, 0xb9, 0x60, 0x79,
		0xc0, 0xdf, 0x7b, 0xc0, 0x2a, 0x2d, 0xbf, 0x44,
		0x9f, 0xbe, 0x6b, 0xa2, 0xd3, 0x4c, 0x16, 0x36,
		0xdc, 0x4a, 0x2e, 0x98, 0xbd, 0x90, 0xca, 0x57,
		0x44, 0x8c, 0xd1, 0x42, 0xcf,
	},
}

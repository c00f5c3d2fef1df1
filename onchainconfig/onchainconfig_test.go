package onchainconfig

import (
	"bytes"
	"testing"
)

func TestCanonicalBytesIsDeterministic(t *testing.T) {
	opt := LockedPublishingOption([][]byte{{0x01, 0x02}, {0x03}})
	first, err := opt.CanonicalBytes()
	if err != nil {
		t.Fatalf("CanonicalBytes: %+v", err)
	}
	second, err := opt.CanonicalBytes()
	if err != nil {
		t.Fatalf("CanonicalBytes: %+v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("CanonicalBytes: encoding is not deterministic")
	}
}

func TestCanonicalBytesDistinguishesModes(t *testing.T) {
	options := []PublishingOption{
		LockedPublishingOption(nil),
		CustomScriptsPublishingOption(),
		OpenPublishingOption(),
	}
	seen := make(map[string]PublishingMode)
	for _, opt := range options {
		encoded, err := opt.CanonicalBytes()
		if err != nil {
			t.Fatalf("CanonicalBytes(%d): %+v", opt.Mode, err)
		}
		if prev, ok := seen[string(encoded)]; ok {
			t.Errorf("mode %d encodes identically to mode %d", opt.Mode, prev)
		}
		seen[string(encoded)] = opt.Mode
	}
}

func TestAllowlistAffectsEncoding(t *testing.T) {
	empty, err := LockedPublishingOption(nil).CanonicalBytes()
	if err != nil {
		t.Fatalf("CanonicalBytes: %+v", err)
	}
	allowed, err := LockedPublishingOption([][]byte{{0xaa}}).CanonicalBytes()
	if err != nil {
		t.Fatalf("CanonicalBytes: %+v", err)
	}
	if bytes.Equal(empty, allowed) {
		t.Fatal("allowlist contents do not affect the encoding")
	}
}

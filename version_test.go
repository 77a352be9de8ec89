package libosrmc

import "testing"

func TestVersionPacking(t *testing.T) {
	if Version>>16 != VersionMajor {
		t.Fatalf("Expected major %d in high bits, got %d", VersionMajor, Version>>16)
	}
	if Version&0xFFFF != VersionMinor {
		t.Fatalf("Expected minor %d in low bits, got %d", VersionMinor, Version&0xFFFF)
	}
	if VersionString() != "6.0" {
		t.Fatalf("Expected version string 6.0, got %s", VersionString())
	}
}

func TestCompatibleWith(t *testing.T) {
	if !CompatibleWith(Version) {
		t.Fatal("Expected the runtime to be compatible with its own version")
	}
	if !CompatibleWith(VersionMajor<<16 | 99) {
		t.Fatal("Expected minor revisions to stay compatible")
	}
	if CompatibleWith((VersionMajor + 1) << 16) {
		t.Fatal("Expected a major bump to be incompatible")
	}
}

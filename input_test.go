package cadence

import "testing"

func TestKeyString(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Errorf("ParseKey(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if Key(200).String() != "unknown" {
		t.Errorf("Key(200).String() = %q", Key(200).String())
	}
	if _, ok := ParseKey("space"); ok {
		t.Error("ParseKey(space) ok = true")
	}
}

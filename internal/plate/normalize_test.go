package plate

import (
	"regexp"
	"testing"
)

var canonicalAlphabet = regexp.MustCompile(`^[A-Z0-9]*$`)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MH-31-AB-1234", "MH31AB1234"},
		{"mh 31 ab 1234", "MH31AB1234"},
		{"  MH31.AB_1234  ", "MH31AB1234"},
		{"", ""},
		{"!@#$%", ""},
		{"already0K", "ALREADY0K"},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePositionalRepair(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"S repaired in district position", "MHS1AB1234", "MH51AB1234"},
		{"S kept in state position", "SH31AB1234", "SH31AB1234"},
		{"O and I repaired together", "MHOIAB1234", "MH01AB1234"},
		{"B G Z repaired", "KABGCD1234", "KA86CD1234"},
		{"Z repaired", "DLZ1AB1234", "DL21AB1234"},
		{"digits untouched", "MH31AB1234", "MH31AB1234"},
		{"tail confusables untouched", "MH31OS1234", "MH31OS1234"},
		{"too short for repair", "MIS", "MIS"},
		{"exactly four chars", "MHS1", "MH51"},
		{"separators cleaned before repair", "MH-S1-AB-1234", "MH51AB1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"MH-31-AB-1234",
		"MHS1AB1234",
		"SH31AB1234",
		"mhoiab1234",
		"",
		"M",
		"MIS",
		"!@# os BG z 12",
		"OISBGZOISBGZ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNormalizeCanonicalAlphabet(t *testing.T) {
	inputs := []string{
		"MH-31 AB.1234",
		"abc def",
		"日本 ABC123",
		"\x00\x7fMH31",
		"",
	}
	for _, in := range inputs {
		got := Normalize(in)
		if !canonicalAlphabet.MatchString(got) {
			t.Errorf("Normalize(%q) = %q contains characters outside [A-Z0-9]", in, got)
		}
	}
}

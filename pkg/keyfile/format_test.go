package keyfile

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"mfoc", MfocDump, false},
		{"proxmark", ProxmarkBin, false},
		{" Proxmark ", ProxmarkBin, false},
		{"MFOC", MfocDump, false},
		{"", 0, true},
		{"flipper", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormat_String(t *testing.T) {
	for _, f := range []Format{MfocDump, ProxmarkBin} {
		back, err := ParseFormat(f.String())
		if err != nil || back != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), back, err)
		}
	}
	if got := Format(7).String(); got != "Format(7)" {
		t.Errorf("unknown format String() = %q", got)
	}
}

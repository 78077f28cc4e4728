package cpu

import "testing"

func TestIndexCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"lower", "$sp", SP},
		{"upper", "$SP", SP},
		{"mixed", "$Pc", PC},
		{"last", "$u", U},
		{"unknown", "$zz", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.in); got != tt.want {
				t.Errorf("Index(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegisterReinterpretation(t *testing.T) {
	var r Register

	r.SetInt32(-1)
	if r.Int32() != -1 {
		t.Errorf("Int32() = %d, want -1", r.Int32())
	}
	if r.Address() != 0xffffffff {
		t.Errorf("Address() = 0x%x, want 0xffffffff", r.Address())
	}

	r.SetFloat(1.5)
	if r.Float() != 1.5 {
		t.Errorf("Float() = %v, want 1.5", r.Float())
	}

	r.SetInt8(-2)
	if r.Int8() != -2 {
		t.Errorf("Int8() = %d, want -2", r.Int8())
	}
}

func TestNamesOrderMatchesRegisterConstants(t *testing.T) {
	want := [NumRegisters]string{
		"$sp", "$pc", "$r", "$h", "$a", "$b", "$c", "$d", "$i", "$j", "$k", "$u",
	}
	if Names != want {
		t.Errorf("Names = %v, want %v", Names, want)
	}
}

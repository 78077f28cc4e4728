package bytecode

import "testing"

func TestFromMnemonicCaseInsensitive(t *testing.T) {
	tests := []struct {
		in   string
		want Opcode
		ok   bool
	}{
		{"NOOP", NOOP, true},
		{"movi", MOVI, true},
		{"AddF", ADDF, true},
		{"bogus", 0, false},
	}

	for _, tt := range tests {
		got, ok := FromMnemonic(tt.in)
		if ok != tt.ok {
			t.Fatalf("FromMnemonic(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Errorf("FromMnemonic(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStringRoundTripsThroughFromMnemonic(t *testing.T) {
	for op := NOOP; op < maxOpcode; op++ {
		name := op.String()
		if name == "INVALID" {
			t.Fatalf("opcode %d has no name", op)
		}
		got, ok := FromMnemonic(name)
		if !ok || got != op {
			t.Errorf("FromMnemonic(%q) = %v, %v, want %v, true", name, got, ok, op)
		}
	}
}

func TestNumArgs(t *testing.T) {
	tests := []struct {
		op   Opcode
		want int
	}{
		{NOOP, 0},
		{RET, 0},
		{JMP, 1},
		{CALL, 1},
		{PUSHF, 1},
		{PRINTC, 1},
		{ADDI, 2},
		{IFEB, 2},
		{SLLI, 2},
		{LDCI, 2},
		{LDCA, 2},
	}

	for _, tt := range tests {
		if got := NumArgs(tt.op); got != tt.want {
			t.Errorf("NumArgs(%v) = %d, want %d", tt.op, got, tt.want)
		}
	}
}

func TestIsJump(t *testing.T) {
	if !IsJump(JMP) || !IsJump(CALL) {
		t.Error("JMP and CALL must report IsJump true")
	}
	if IsJump(ADDI) {
		t.Error("ADDI must not report IsJump true")
	}
}

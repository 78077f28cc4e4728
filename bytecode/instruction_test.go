package bytecode

import "testing"

func TestEncodeDecodeOpcode(t *testing.T) {
	instr := EncodeOpcode(ADDF)
	if instr.Opcode() != ADDF {
		t.Errorf("Opcode() = %v, want %v", instr.Opcode(), ADDF)
	}
}

func TestEncodeDecodeArg1(t *testing.T) {
	tests := []struct {
		name string
		reg  int
		addr bool
	}{
		{"register mode", 4, false},
		{"address mode", 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr := EncodeOpcode(MOVI) | EncodeArg1(tt.reg, tt.addr)
			if instr.Arg1Reg() != tt.reg {
				t.Errorf("Arg1Reg() = %d, want %d", instr.Arg1Reg(), tt.reg)
			}
			if instr.IsArg1Addr() != tt.addr {
				t.Errorf("IsArg1Addr() = %v, want %v", instr.IsArg1Addr(), tt.addr)
			}
		})
	}
}

func TestEncodeDecodeArg2Register(t *testing.T) {
	instr := EncodeArg2Register(9, true)
	if !instr.IsArg2Reg() {
		t.Fatal("IsArg2Reg() = false, want true")
	}
	if !instr.IsArg2Addr() {
		t.Error("IsArg2Addr() = false, want true")
	}
	if instr.Arg2Value() != 9 {
		t.Errorf("Arg2Value() = %d, want 9", instr.Arg2Value())
	}
}

func TestEncodeDecodeArg2Immediate(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want int32
	}{
		{"positive", 1000, 1000},
		{"negative", -1, -1},
		{"negative large", -200000, -200000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr := EncodeArg2Immediate(uint32(tt.in) & Arg2ValMask)
			if instr.IsArg2Reg() {
				t.Fatal("IsArg2Reg() = true, want false for immediate")
			}
			if !instr.IsArg2Imm() {
				t.Fatal("IsArg2Imm() = false, want true")
			}
			if got := instr.Arg2Immediate(); got != tt.want {
				t.Errorf("Arg2Immediate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeArg2ConstIndex(t *testing.T) {
	instr := EncodeArg2ConstIndex(42)
	if instr.IsArg2Reg() || instr.IsArg2Imm() {
		t.Fatal("constant-pool-index operand must be neither register nor immediate mode")
	}
	if instr.Arg2Value() != 42 {
		t.Errorf("Arg2Value() = %d, want 42", instr.Arg2Value())
	}
}

func TestEncodeDecodeJump(t *testing.T) {
	instr := EncodeOpcode(JMP) | EncodeJump(0xabcdef)
	if instr.Opcode() != JMP {
		t.Fatalf("Opcode() = %v, want JMP", instr.Opcode())
	}
	if instr.JumpTarget() != 0xabcdef {
		t.Errorf("JumpTarget() = 0x%x, want 0xabcdef", instr.JumpTarget())
	}
}

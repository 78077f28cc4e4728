package disasm

import (
	"strings"
	"testing"

	"litavm/bytecode"
	"litavm/cpu"
)

func TestInstructionRendersRegisterOperands(t *testing.T) {
	instr := bytecode.EncodeOpcode(bytecode.ADDI) |
		bytecode.EncodeArg1(cpu.A, false) |
		bytecode.EncodeArg2Register(cpu.B, false)

	got := Instruction(instr, nil)
	want := "ADDI   $a $b"
	if strings.TrimSpace(got) != strings.TrimSpace(want) {
		t.Errorf("Instruction() = %q, want %q", got, want)
	}
}

func TestInstructionRendersAddressModePrefix(t *testing.T) {
	instr := bytecode.EncodeOpcode(bytecode.IFB) |
		bytecode.EncodeArg1(cpu.A, true) |
		bytecode.EncodeArg2Immediate(0)

	got := Instruction(instr, nil)
	if !strings.Contains(got, "&$a") {
		t.Errorf("Instruction() = %q, want it to contain %q", got, "&$a")
	}
	if !strings.Contains(got, "#0") {
		t.Errorf("Instruction() = %q, want it to contain %q", got, "#0")
	}
}

func TestInstructionRendersJumpTarget(t *testing.T) {
	instr := bytecode.EncodeOpcode(bytecode.JMP) | bytecode.EncodeJump(42)
	got := Instruction(instr, nil)
	if !strings.Contains(got, "42") {
		t.Errorf("Instruction() = %q, want it to contain %q", got, "42")
	}
}

func TestInstructionRendersLDCIAddressVsImmediate(t *testing.T) {
	code := &bytecode.Bytecode{Constants: []uint32{100}}

	immediate := bytecode.EncodeOpcode(bytecode.LDCI) |
		bytecode.EncodeArg1(cpu.A, false) |
		bytecode.EncodeArg2Immediate(9)
	got := Instruction(immediate, code)
	if !strings.Contains(got, "9") {
		t.Errorf("Instruction() = %q, want it to contain the immediate 9", got)
	}

	poolRef := bytecode.EncodeOpcode(bytecode.LDCI) |
		bytecode.EncodeArg1(cpu.A, false) |
		bytecode.EncodeArg2ConstIndex(0)
	got = Instruction(poolRef, code)
	if !strings.Contains(got, "100") {
		t.Errorf("Instruction() = %q, want it to contain the constant's RAM address 100", got)
	}
}

func TestFormatRendersOneLinePerInstruction(t *testing.T) {
	code := &bytecode.Bytecode{
		Instrs: []bytecode.Instruction{
			bytecode.EncodeOpcode(bytecode.NOOP),
			bytecode.EncodeOpcode(bytecode.RET),
		},
	}
	out := Format(code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "NOOP") || !strings.Contains(lines[1], "RET") {
		t.Errorf("lines = %v, want NOOP then RET", lines)
	}
}

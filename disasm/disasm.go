// Package disasm renders an assembled bytecode.Bytecode back into
// human-readable assembly text. It is a read-only formatter: it never
// mutates a CPU or RAM, and it is not a debugger.
package disasm

import (
	"fmt"
	"strings"

	"litavm/bytecode"
	"litavm/cpu"
)

// Format renders every instruction in code as one line each, in the form
// "index   MNEMONIC operands". The trailing NOOP sentinel is included.
func Format(code *bytecode.Bytecode) string {
	var b strings.Builder
	for i, instr := range code.Instrs {
		fmt.Fprintf(&b, "%-6d %s\n", i, Instruction(instr, code))
	}
	return b.String()
}

// Instruction renders a single decoded instruction. code supplies the
// constant-pool address table LDC{F,A} and (in RAM-address mode) LDC{I,B}
// need to resolve their operand; it may be nil for instructions that never
// reach into the constant pool.
func Instruction(instr bytecode.Instruction, code *bytecode.Bytecode) string {
	op := instr.Opcode()
	if !op.IsValid() {
		return fmt.Sprintf("??? (0x%08x)", uint32(instr))
	}

	if bytecode.IsJump(op) {
		return fmt.Sprintf("%-6s %d", op.String(), instr.JumpTarget())
	}

	switch op {
	case bytecode.LDCI, bytecode.LDCB:
		if instr.IsArg2Imm() {
			return fmt.Sprintf("%-6s %s %d", op.String(), formatArg1(instr), instr.Arg2Immediate())
		}
		return fmt.Sprintf("%-6s %s %d", op.String(), formatArg1(instr), code.Constants[instr.Arg2Value()])

	case bytecode.LDCF, bytecode.LDCA:
		return fmt.Sprintf("%-6s %s %d", op.String(), formatArg1(instr), code.Constants[instr.Arg2Value()])
	}

	switch bytecode.NumArgs(op) {
	case 0:
		return op.String()
	case 1:
		return fmt.Sprintf("%-6s %s", op.String(), formatArg2(instr))
	default:
		return fmt.Sprintf("%-6s %s %s", op.String(), formatArg1(instr), formatArg2(instr))
	}
}

// formatArg1 renders arg1: a register name, prefixed with & when the
// address-mode flag is set.
func formatArg1(instr bytecode.Instruction) string {
	name := cpu.Names[instr.Arg1Reg()]
	if instr.IsArg1Addr() {
		return "&" + name
	}
	return name
}

// formatArg2 renders arg2 per its three-way mode split: register (with & for
// address mode), signed immediate, or constant-pool index.
func formatArg2(instr bytecode.Instruction) string {
	switch {
	case instr.IsArg2Reg():
		name := cpu.Names[instr.Arg2Value()]
		if instr.IsArg2Addr() {
			return "&" + name
		}
		return name
	case instr.IsArg2Imm():
		return fmt.Sprintf("#%d", instr.Arg2Immediate())
	default:
		return fmt.Sprintf(".const%d", instr.Arg2Value())
	}
}

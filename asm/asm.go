package asm

import (
	"litavm/bytecode"
	"litavm/cpu"
	"litavm/ram"
)

// Compile runs the full two-pass assembly pipeline over source: tokenize,
// assign instruction addresses, resolve labels, lay out the constant pool
// into mem, encode instructions, and return the resulting Bytecode.
//
// Compile installs the constant pool into mem and sets regs' $h register to
// the first RAM address past the pool. It does not touch $sp: that is the
// VM's responsibility at construction time.
func Compile(source string, mem *ram.RAM, regs *cpu.CPU) (*bytecode.Bytecode, error) {
	lines := tokenize(source)
	assignAddresses(lines)

	labels := parseLabels(lines)

	constants, err := parseConstants(lines)
	if err != nil {
		return nil, err
	}

	constAddrs, heapStart, err := layoutConstants(constants, mem)
	if err != nil {
		return nil, err
	}
	regs.Regs[cpu.H].SetAddress(heapStart)

	instrs, count, err := parseInstructions(lines, labels, constants)
	if err != nil {
		return nil, err
	}

	return &bytecode.Bytecode{
		Constants: constAddrs,
		Instrs:    instrs,
		Length:    count,
		PC:        0,
	}, nil
}

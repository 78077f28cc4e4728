// Package interp implements litavm's interpreter: the decode/dispatch loop
// that executes an assembled bytecode.Bytecode against a CPU register file
// and a RAM buffer.
package interp

import (
	"io"
	"os"

	"litavm/bytecode"
	"litavm/cpu"
	"litavm/ram"
	"litavm/vmerr"
)

// VM ties together the register file and RAM buffer the interpreter
// executes against.
type VM struct {
	CPU       *cpu.CPU
	RAM       *ram.RAM
	StackSize int

	// Out receives PRINT* output; defaults to os.Stdout.
	Out io.Writer

	// Trace, if non-nil, receives one line per executed instruction
	// (address and mnemonic) for diagnostic use. It never affects
	// control flow.
	Trace io.Writer
}

// New constructs a VM with the given RAM size and stack size, both in
// bytes. $sp is initialized to ramSize-1.
func New(ramSize, stackSize int) (*VM, error) {
	if stackSize > ramSize {
		return nil, vmerr.NewConfigError("stack size (%d) exceeds RAM size (%d)", stackSize, ramSize)
	}

	vm := &VM{
		CPU:       cpu.New(),
		RAM:       ram.New(ramSize),
		StackSize: stackSize,
		Out:       os.Stdout,
	}
	vm.CPU.Regs[cpu.SP].SetAddress(uint32(ramSize - 1))
	return vm, nil
}

// Execute runs code to completion: fetch/decode/dispatch until pc runs past
// the last instruction.
func (vm *VM) Execute(code *bytecode.Bytecode) error {
	pc := code.PC
	end := code.Length

	for pc < end {
		instr := code.Instrs[pc]
		vm.CPU.Regs[cpu.PC].SetAddress(pc)
		pc++

		next, err := vm.step(code, instr, pc)
		if err != nil {
			return err
		}
		pc = next
	}

	return nil
}

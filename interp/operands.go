package interp

import (
	"litavm/bytecode"
)

// getArg1Int32 reads arg1: either the register's value, or (if arg1's
// address flag is set) the int32 stored at the address the register holds.
func (vm *VM) getArg1Int32(instr bytecode.Instruction) (int32, error) {
	reg := instr.Arg1Reg()
	if instr.IsArg1Addr() {
		return vm.RAM.ReadInt32(int(vm.CPU.Regs[reg].Address()))
	}
	return vm.CPU.Regs[reg].Int32(), nil
}

func (vm *VM) setArg1Int32(instr bytecode.Instruction, v int32) error {
	reg := instr.Arg1Reg()
	if instr.IsArg1Addr() {
		return vm.RAM.StoreInt32(int(vm.CPU.Regs[reg].Address()), v)
	}
	vm.CPU.Regs[reg].SetInt32(v)
	return nil
}

func (vm *VM) getArg1Int8(instr bytecode.Instruction) (int8, error) {
	reg := instr.Arg1Reg()
	if instr.IsArg1Addr() {
		return vm.RAM.ReadInt8(int(vm.CPU.Regs[reg].Address()))
	}
	return vm.CPU.Regs[reg].Int8(), nil
}

func (vm *VM) setArg1Int8(instr bytecode.Instruction, v int8) error {
	reg := instr.Arg1Reg()
	if instr.IsArg1Addr() {
		return vm.RAM.StoreInt8(int(vm.CPU.Regs[reg].Address()), v)
	}
	vm.CPU.Regs[reg].SetInt8(v)
	return nil
}

func (vm *VM) getArg1Float(instr bytecode.Instruction) (float32, error) {
	reg := instr.Arg1Reg()
	if instr.IsArg1Addr() {
		return vm.RAM.ReadFloat(int(vm.CPU.Regs[reg].Address()))
	}
	return vm.CPU.Regs[reg].Float(), nil
}

func (vm *VM) setArg1Float(instr bytecode.Instruction, v float32) error {
	reg := instr.Arg1Reg()
	if instr.IsArg1Addr() {
		return vm.RAM.StoreFloat(int(vm.CPU.Regs[reg].Address()), v)
	}
	vm.CPU.Regs[reg].SetFloat(v)
	return nil
}

// getArg2Int32 reads arg2's three-way mode split: register, immediate, or
// constant-pool index.
func (vm *VM) getArg2Int32(instr bytecode.Instruction, code codeConstants) (int32, error) {
	switch {
	case instr.IsArg2Reg():
		reg := instr.Arg2Value()
		if instr.IsArg2Addr() {
			return vm.RAM.ReadInt32(int(vm.CPU.Regs[reg].Address()))
		}
		return vm.CPU.Regs[reg].Int32(), nil
	case instr.IsArg2Imm():
		return instr.Arg2Immediate(), nil
	default:
		addr := code.constantAddr(instr.Arg2Value())
		return vm.RAM.ReadInt32(int(addr))
	}
}

func (vm *VM) getArg2Int8(instr bytecode.Instruction, code codeConstants) (int8, error) {
	switch {
	case instr.IsArg2Reg():
		reg := instr.Arg2Value()
		if instr.IsArg2Addr() {
			return vm.RAM.ReadInt8(int(vm.CPU.Regs[reg].Address()))
		}
		return vm.CPU.Regs[reg].Int8(), nil
	case instr.IsArg2Imm():
		return int8(instr.Arg2Immediate()), nil
	default:
		addr := code.constantAddr(instr.Arg2Value())
		return vm.RAM.ReadInt8(int(addr))
	}
}

func (vm *VM) getArg2Float(instr bytecode.Instruction, code codeConstants) (float32, error) {
	switch {
	case instr.IsArg2Reg():
		reg := instr.Arg2Value()
		if instr.IsArg2Addr() {
			return vm.RAM.ReadFloat(int(vm.CPU.Regs[reg].Address()))
		}
		return vm.CPU.Regs[reg].Float(), nil
	case instr.IsArg2Imm():
		return float32(instr.Arg2Immediate()), nil
	default:
		addr := code.constantAddr(instr.Arg2Value())
		return vm.RAM.ReadFloat(int(addr))
	}
}

// setArg2Int32 writes through arg2 as a register operand: POP* and DUP*
// write their result back through their sole arg2 operand. The register-mode
// flag is not checked; the low bits are taken as a register index and bit 19
// as the address flag, whatever form the assembler encoded.
func (vm *VM) setArg2Int32(instr bytecode.Instruction, v int32) error {
	reg := instr.Arg2Value()
	if instr.IsArg2Addr() {
		return vm.RAM.StoreInt32(int(vm.CPU.Regs[reg].Address()), v)
	}
	vm.CPU.Regs[reg].SetInt32(v)
	return nil
}

func (vm *VM) setArg2Int8(instr bytecode.Instruction, v int8) error {
	reg := instr.Arg2Value()
	if instr.IsArg2Addr() {
		return vm.RAM.StoreInt8(int(vm.CPU.Regs[reg].Address()), v)
	}
	vm.CPU.Regs[reg].SetInt8(v)
	return nil
}

func (vm *VM) setArg2Float(instr bytecode.Instruction, v float32) error {
	reg := instr.Arg2Value()
	if instr.IsArg2Addr() {
		return vm.RAM.StoreFloat(int(vm.CPU.Regs[reg].Address()), v)
	}
	vm.CPU.Regs[reg].SetFloat(v)
	return nil
}

// codeConstants is the minimal view of a Bytecode the operand helpers need:
// the constant-pool address table.
type codeConstants interface {
	constantAddr(index uint32) uint32
}

// bytecodeConstants adapts a *bytecode.Bytecode to codeConstants.
type bytecodeConstants struct {
	code *bytecode.Bytecode
}

func (b bytecodeConstants) constantAddr(index uint32) uint32 {
	return b.code.Constants[index]
}

// getConstInt32 implements LDCI's source read: an immediate value when the
// immediate flag is set, otherwise the int32 stored at the indexed
// constant's RAM address.
func (vm *VM) getConstInt32(instr bytecode.Instruction, code codeConstants) (int32, error) {
	if instr.IsArg2Imm() {
		return instr.Arg2Immediate(), nil
	}
	addr := code.constantAddr(instr.Arg2Value())
	return vm.RAM.ReadInt32(int(addr))
}

// getConstInt8 implements LDCB's source read, analogous to getConstInt32.
func (vm *VM) getConstInt8(instr bytecode.Instruction, code codeConstants) (int8, error) {
	if instr.IsArg2Imm() {
		return int8(instr.Arg2Immediate()), nil
	}
	addr := code.constantAddr(instr.Arg2Value())
	return vm.RAM.ReadInt8(int(addr))
}

// getConstFloat implements LDCF's source read: always the float32 stored
// at the indexed constant's RAM address.
func (vm *VM) getConstFloat(instr bytecode.Instruction, code codeConstants) (float32, error) {
	addr := code.constantAddr(instr.Arg2Value())
	return vm.RAM.ReadFloat(int(addr))
}

// getConstAddr implements LDCA's source read: the RAM address of the
// indexed constant itself, not its value.
func getConstAddr(instr bytecode.Instruction, code codeConstants) uint32 {
	return code.constantAddr(instr.Arg2Value())
}

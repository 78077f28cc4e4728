package interp

import "litavm/cpu"

// Stack discipline: the stack grows downward from the top of RAM. PUSH
// decrements $sp by the operand width before writing; POP
// reads at $sp then increments it by the same width; DUP reads the current
// top and pushes a copy.

func (vm *VM) pushInt32(v int32) error {
	sp := vm.CPU.Regs[cpu.SP].Address() - 4
	if err := vm.RAM.StoreInt32(int(sp), v); err != nil {
		return err
	}
	vm.CPU.Regs[cpu.SP].SetAddress(sp)
	return nil
}

func (vm *VM) popInt32() (int32, error) {
	sp := vm.CPU.Regs[cpu.SP].Address()
	v, err := vm.RAM.ReadInt32(int(sp))
	if err != nil {
		return 0, err
	}
	vm.CPU.Regs[cpu.SP].SetAddress(sp + 4)
	return v, nil
}

// dupInt32 reads the current top of stack, pushes a copy, and returns the
// duplicated value.
func (vm *VM) dupInt32() (int32, error) {
	sp := vm.CPU.Regs[cpu.SP].Address()
	v, err := vm.RAM.ReadInt32(int(sp))
	if err != nil {
		return 0, err
	}
	if err := vm.pushInt32(v); err != nil {
		return 0, err
	}
	return v, nil
}

func (vm *VM) pushFloat(v float32) error {
	sp := vm.CPU.Regs[cpu.SP].Address() - 4
	if err := vm.RAM.StoreFloat(int(sp), v); err != nil {
		return err
	}
	vm.CPU.Regs[cpu.SP].SetAddress(sp)
	return nil
}

func (vm *VM) popFloat() (float32, error) {
	sp := vm.CPU.Regs[cpu.SP].Address()
	v, err := vm.RAM.ReadFloat(int(sp))
	if err != nil {
		return 0, err
	}
	vm.CPU.Regs[cpu.SP].SetAddress(sp + 4)
	return v, nil
}

func (vm *VM) dupFloat() (float32, error) {
	sp := vm.CPU.Regs[cpu.SP].Address()
	v, err := vm.RAM.ReadFloat(int(sp))
	if err != nil {
		return 0, err
	}
	if err := vm.pushFloat(v); err != nil {
		return 0, err
	}
	return v, nil
}

func (vm *VM) pushInt8(v int8) error {
	sp := vm.CPU.Regs[cpu.SP].Address() - 1
	if err := vm.RAM.StoreInt8(int(sp), v); err != nil {
		return err
	}
	vm.CPU.Regs[cpu.SP].SetAddress(sp)
	return nil
}

func (vm *VM) popInt8() (int8, error) {
	sp := vm.CPU.Regs[cpu.SP].Address()
	v, err := vm.RAM.ReadInt8(int(sp))
	if err != nil {
		return 0, err
	}
	vm.CPU.Regs[cpu.SP].SetAddress(sp + 1)
	return v, nil
}

func (vm *VM) dupInt8() (int8, error) {
	sp := vm.CPU.Regs[cpu.SP].Address()
	v, err := vm.RAM.ReadInt8(int(sp))
	if err != nil {
		return 0, err
	}
	if err := vm.pushInt8(v); err != nil {
		return 0, err
	}
	return v, nil
}

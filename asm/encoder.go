package asm

import (
	"strconv"
	"strings"

	"litavm/bytecode"
	"litavm/cpu"
	"litavm/vmerr"
)

// parseInstructions processes BYTECODE_DEF lines in order, encoding each
// into a single bytecode.Instruction, then appends a NOOP sentinel.
func parseInstructions(lines []*SourceLine, labels *labelTable, constants *constantTable) ([]bytecode.Instruction, uint32, error) {
	var instrs []bytecode.Instruction
	var count uint32

	for _, line := range lines {
		if line.Kind != LineBytecode {
			continue
		}

		mnemonic := line.Tokens[0]
		op, ok := bytecode.FromMnemonic(mnemonic)
		if !ok {
			return nil, 0, vmerr.NewParseError(line.Number, "invalid opcode: %q", mnemonic)
		}

		expected := bytecode.NumArgs(op)
		got := len(line.Tokens) - 1
		if got != expected {
			return nil, 0, vmerr.NewParseError(line.Number, "invalid number of arguments %d, expected %d for opcode: %q", got, expected, mnemonic)
		}

		word := bytecode.EncodeOpcode(op)

		switch {
		case bytecode.IsJump(op):
			jmp, err := parseJumpOperand(line, labels, line.Tokens[1])
			if err != nil {
				return nil, 0, err
			}
			word |= bytecode.EncodeJump(jmp)

		default:
			switch expected {
			case 0:
				// no operands
			case 1:
				arg2, err := parseArg2(line, labels, constants, line.Tokens[1])
				if err != nil {
					return nil, 0, err
				}
				word |= arg2
			case 2:
				arg1, err := parseArg1(line, line.Tokens[1])
				if err != nil {
					return nil, 0, err
				}
				arg2, err := parseArg2(line, labels, constants, line.Tokens[2])
				if err != nil {
					return nil, 0, err
				}
				word |= arg1 | arg2
			}
		}

		instrs = append(instrs, word)
		count++
	}

	instrs = append(instrs, bytecode.EncodeOpcode(bytecode.NOOP))
	return instrs, count, nil
}

// parseArg1 encodes the register-only arg1 slot, honoring the optional '&'
// address-mode prefix.
func parseArg1(line *SourceLine, token string) (bytecode.Instruction, error) {
	addr := false
	if strings.HasPrefix(token, "&") {
		addr = true
		token = token[1:]
	}

	reg := cpu.Index(token)
	if reg < 0 {
		return 0, vmerr.NewParseError(line.Number, "invalid register name: %q", token)
	}

	return bytecode.EncodeArg1(reg, addr), nil
}

// parseArg2 encodes the polymorphic arg2 slot: register (optionally
// address-mode), label reference, immediate, or constant-pool index.
func parseArg2(line *SourceLine, labels *labelTable, constants *constantTable, token string) (bytecode.Instruction, error) {
	if strings.HasPrefix(token, "&") {
		if strings.HasPrefix(token, "&:") {
			return 0, vmerr.NewParseError(line.Number, "invalid argument structure: %q", token)
		}
		reg := cpu.Index(token[1:])
		if reg < 0 {
			return 0, vmerr.NewParseError(line.Number, "invalid register argument structure: %q", token)
		}
		return bytecode.EncodeArg2Register(reg, true), nil
	}

	if reg := cpu.Index(token); reg >= 0 {
		return bytecode.EncodeArg2Register(reg, false), nil
	}

	switch {
	case strings.HasPrefix(token, ":"):
		addr, ok := labels.lookup(token)
		if !ok {
			return 0, vmerr.NewParseError(line.Number, "invalid label: %q", token)
		}
		return bytecode.EncodeArg2Immediate(addr), nil

	case strings.HasPrefix(token, "#"):
		value, err := parseImmediate(line, token)
		if err != nil {
			return 0, err
		}
		return bytecode.EncodeArg2Immediate(uint32(value)), nil

	case strings.HasPrefix(token, "."):
		index, ok := constants.lookup(token)
		if !ok {
			return 0, vmerr.NewParseError(line.Number, "no constant defined for %q", token)
		}
		return bytecode.EncodeArg2ConstIndex(uint32(index)), nil

	default:
		return 0, vmerr.NewParseError(line.Number, "invalid argument structure: %q", token)
	}
}

// parseJumpOperand parses a JMP/CALL operand: a `:label` or `#imm`.
func parseJumpOperand(line *SourceLine, labels *labelTable, token string) (uint32, error) {
	switch {
	case strings.HasPrefix(token, ":"):
		addr, ok := labels.lookup(token)
		if !ok {
			return 0, vmerr.NewParseError(line.Number, "invalid label: %q", token)
		}
		return addr, nil

	case strings.HasPrefix(token, "#"):
		value, err := parseImmediate(line, token)
		if err != nil {
			return 0, err
		}
		return uint32(value), nil

	default:
		return 0, vmerr.NewParseError(line.Number, "invalid jump instruction argument, must be an immediate number or label: %q", token)
	}
}

// parseImmediate parses a `#[0x|0b]digits` immediate token in the given
// radix, enforcing the MAX_IMMEDIATE_VALUE ceiling.
func parseImmediate(line *SourceLine, token string) (int64, error) {
	digits := token[1:]
	base := 10

	switch {
	case strings.HasPrefix(digits, "0x"):
		base = 16
		digits = digits[2:]
	case strings.HasPrefix(digits, "0b"):
		base = 2
		digits = digits[2:]
	}

	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, vmerr.NewParseError(line.Number, "invalid immediate value argument structure: %q", token)
	}

	if value > bytecode.MaxImmediateValue {
		return 0, vmerr.NewEncodeError(line.Number, "invalid immediate value %d, above max value of %d", value, bytecode.MaxImmediateValue)
	}

	return value, nil
}

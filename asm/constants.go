package asm

import (
	"math"
	"strconv"
	"strings"

	"litavm/ram"
	"litavm/vmerr"
)

// MaxConstants is the upper bound on the number of `.name value`
// definitions a single program may declare.
const MaxConstants = 1024

// ConstantKind identifies the storage type of a parsed constant.
type ConstantKind int

const (
	ConstString ConstantKind = iota
	ConstInt32
	ConstInt8
	ConstFloat
)

// constant is one parsed `.name value` definition, in source order.
type constant struct {
	name  string
	kind  ConstantKind
	i32   int32
	i8    int8
	f32   float32
	bytes []byte // STRING payload, without the trailing NUL
}

// constantTable resolves constant names to their zero-based pool index.
type constantTable struct {
	order []*constant
	index map[string]int
}

func newConstantTable() *constantTable {
	return &constantTable{index: make(map[string]int)}
}

func (t *constantTable) lookup(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// parseConstants processes CONSTANT_DEF lines in source order, classifying
// each value's literal kind and appending it to the table. It does not lay
// constants out into RAM; see layoutConstants.
func parseConstants(lines []*SourceLine) (*constantTable, error) {
	table := newConstantTable()

	for _, line := range lines {
		if line.Kind != LineConstant {
			continue
		}
		if len(line.Tokens) < 2 {
			return nil, vmerr.NewParseError(line.Number, "constant expression value can not be empty")
		}

		name := line.Tokens[0]
		value := line.Tokens[1]

		c, err := parseConstantValue(line, name, value)
		if err != nil {
			return nil, err
		}

		if _, exists := table.index[name]; exists {
			continue // first definition wins, matching label resolution
		}

		if len(table.order) >= MaxConstants {
			return nil, vmerr.NewParseError(line.Number, "exceeded maximum number of constants (%d)", MaxConstants)
		}

		table.index[name] = len(table.order)
		table.order = append(table.order, c)
	}

	return table, nil
}

func parseConstantValue(line *SourceLine, name, value string) (*constant, error) {
	if len(value) == 0 {
		return nil, vmerr.NewParseError(line.Number, "constant expression value can not be empty")
	}

	if value[0] == '"' {
		if len(value) < 2 || value[len(value)-1] != '"' {
			return nil, vmerr.NewParseError(line.Number, "constant string expression missing closing '\"'")
		}
		return &constant{name: name, kind: ConstString, bytes: []byte(value[1 : len(value)-1])}, nil
	}

	base := 10
	digits := value
	switch {
	case strings.HasPrefix(value, "0x"):
		base = 16
		digits = value[2:]
	case strings.HasPrefix(value, "0b"):
		base = 2
		digits = value[2:]
	}

	if base != 10 {
		n, err := strconv.ParseInt(digits, base, 64)
		if err != nil {
			return nil, vmerr.NewParseError(line.Number, "invalid constant number expression %q", value)
		}
		return classifyInt(line, name, n)
	}

	hasDecimal := false
	hasNegative := false
	for i, c := range value {
		switch {
		case c == '.':
			if hasDecimal {
				return nil, vmerr.NewParseError(line.Number, "constant number expression %q contains multiple decimals", value)
			}
			hasDecimal = true
		case c == '-':
			if hasNegative || i != 0 {
				return nil, vmerr.NewParseError(line.Number, "constant number expression %q contains multiple negatives", value)
			}
			hasNegative = true
		case c < '0' || c > '9':
			return nil, vmerr.NewParseError(line.Number, "invalid constant number expression %q", value)
		}
	}

	if hasDecimal {
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, vmerr.NewParseError(line.Number, "invalid constant number expression %q", value)
		}
		return &constant{name: name, kind: ConstFloat, f32: float32(f)}, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, vmerr.NewParseError(line.Number, "invalid constant number expression %q", value)
	}
	return classifyInt(line, name, n)
}

func classifyInt(line *SourceLine, name string, n int64) (*constant, error) {
	if n >= -128 && n <= 127 {
		return &constant{name: name, kind: ConstInt8, i8: int8(n)}, nil
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return nil, vmerr.NewParseError(line.Number, "integer out of int32 range: %d", n)
	}
	return &constant{name: name, kind: ConstInt32, i32: int32(n)}, nil
}

// layoutConstants lays out the constant table contiguously into RAM
// starting at address 0, in definition order, and returns the resulting
// constants[i] = ram address table along with the first free RAM address
// (the value the assembler installs into $h).
func layoutConstants(table *constantTable, mem *ram.RAM) ([]uint32, uint32, error) {
	addrs := make([]uint32, len(table.order))
	var addr uint32

	for i, c := range table.order {
		addrs[i] = addr
		switch c.kind {
		case ConstInt32:
			if err := mem.StoreInt32(int(addr), c.i32); err != nil {
				return nil, 0, err
			}
			addr += 4
		case ConstFloat:
			if err := mem.StoreFloat(int(addr), c.f32); err != nil {
				return nil, 0, err
			}
			addr += 4
		case ConstInt8:
			if err := mem.StoreInt8(int(addr), c.i8); err != nil {
				return nil, 0, err
			}
			addr++
		case ConstString:
			if err := mem.StoreString(int(addr), c.bytes); err != nil {
				return nil, 0, err
			}
			addr += uint32(len(c.bytes)) + 1
		}
	}

	return addrs, addr, nil
}

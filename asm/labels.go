package asm

// Label binds a name to the instruction index of the next bytecode line
// that follows its definition.
type Label struct {
	Name    string
	Address uint32
}

// labelTable resolves label names to addresses. First definition wins on
// duplicates (see DESIGN.md).
type labelTable struct {
	byName map[string]uint32
}

func newLabelTable() *labelTable {
	return &labelTable{byName: make(map[string]uint32)}
}

func (t *labelTable) define(name string, addr uint32) {
	if _, exists := t.byName[name]; exists {
		return
	}
	t.byName[name] = addr
}

func (t *labelTable) lookup(name string) (uint32, bool) {
	addr, ok := t.byName[name]
	return addr, ok
}

// parseLabels scans the tokenized lines and records each LABEL_DEF's
// address, which equals the address of the first bytecode instruction that
// follows it (assignAddresses has already propagated that forward).
func parseLabels(lines []*SourceLine) *labelTable {
	labels := newLabelTable()
	for _, line := range lines {
		if line.Kind != LineLabel {
			continue
		}
		name := line.Tokens[0]
		labels.define(name, line.Address)
	}
	return labels
}

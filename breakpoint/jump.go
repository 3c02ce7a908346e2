package breakpoint

// JumpTable classifies instructions for RunTillJump. Multi-byte encodings
// are identified by their extended opcode prefix and the following byte.
type JumpTable interface {
	IsJump(opcode uint8, next uint8) bool
}

// OpcodeTable is a JumpTable built from opcode lists.
type OpcodeTable struct {
	jumps    map[uint8]bool
	extended map[uint8]map[uint8]bool
}

var _ JumpTable = (*OpcodeTable)(nil)

// AddJump marks a single byte opcode as a jump.
func (ot *OpcodeTable) AddJump(opcodes ...uint8) {
	if ot.jumps == nil {
		ot.jumps = make(map[uint8]bool, len(opcodes))
	}
	for _, op := range opcodes {
		ot.jumps[op] = true
	}
}

// SetExtended marks an opcode as the prefix of two byte encodings.
func (ot *OpcodeTable) SetExtended(prefix uint8) {
	if ot.extended == nil {
		ot.extended = make(map[uint8]map[uint8]bool)
	}
	if _, ok := ot.extended[prefix]; !ok {
		ot.extended[prefix] = map[uint8]bool{}
	}
}

// AddExtendedJump marks the encodings prefix+opcode as jumps.
func (ot *OpcodeTable) AddExtendedJump(prefix uint8, opcodes ...uint8) {
	ot.SetExtended(prefix)
	for _, op := range opcodes {
		ot.extended[prefix][op] = true
	}
}

// IsExtended is true if the opcode is an extended opcode prefix.
func (ot *OpcodeTable) IsExtended(opcode uint8) (ok bool) {
	_, ok = ot.extended[opcode]
	return
}

// IsJump implements JumpTable.
func (ot *OpcodeTable) IsJump(opcode uint8, next uint8) bool {
	ext, ok := ot.extended[opcode]
	if ok {
		return ext[next]
	}

	return ot.jumps[opcode]
}

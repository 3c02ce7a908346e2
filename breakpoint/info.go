// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package breakpoint

import (
	"fmt"
	"math"
	"strings"
)

// Bank is a memory bank number.
type Bank int

// AnyBank matches whatever bank is selected.
const AnyBank = Bank(-1)

func (bank Bank) String() string {
	if bank == AnyBank {
		return "any"
	}
	return fmt.Sprintf("%d", int(bank))
}

// Kind is the type of a breakpoint record.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	BREAKPOINT      = Kind(0) // breakpoint
	WATCHPOINT      = Kind(1) // watchpoint
	READ_WATCHPOINT = Kind(2) // read watchpoint
	ANY_WATCHPOINT  = Kind(3) // acc watchpoint
)

// Disposition is what happens to a breakpoint once it stops execution.
type Disposition int

//go:generate go tool stringer -linecomment -type=Disposition
const (
	DISP_KEEP    = Disposition(0) // keep
	DISP_DELETE  = Disposition(1) // del
	DISP_DISABLE = Disposition(2) // dis
)

// NoHit is the breakpoint number of the record returned when nothing matched.
const NoHit = uint32(math.MaxUint32)

// Info describes a breakpoint or watchpoint.
type Info struct {
	Number      uint32      // Breakpoint number, from 1. NoHit if nothing matched.
	Kind        Kind        // Breakpoint or watchpoint type.
	Address     uint32      // Watched or breaking address.
	Bank        Bank        // Bank of the address, or AnyBank.
	Register    string      // Watched register, instead of an address.
	Disposition Disposition // What to do after stopping.
	Enabled     bool        // Disabled records never match.
	TimesHit    int         // Number of counted hits.

	OldValue uint32 // Watched value before the last change.
	Value    uint32 // Current watched value.

	Condition    *Condition // Optional condition gating hits.
	ConditionErr error      // Last condition evaluation error, if any.
}

// Hit is false for the record returned when nothing matched.
func (bi Info) Hit() bool {
	return bi.Number != NoHit
}

// String returns a one line description of the record.
func (bi Info) String() string {
	if !bi.Hit() {
		return "no hit"
	}

	sb := &strings.Builder{}

	enabled := "n"
	if bi.Enabled {
		enabled = "y"
	}

	fmt.Fprintf(sb, "%-3d %-16v %-4v %v ", bi.Number, bi.Kind, bi.Disposition, enabled)
	if len(bi.Register) != 0 {
		fmt.Fprintf(sb, "%v", bi.Register)
	} else {
		fmt.Fprintf(sb, "0x%04x", bi.Address)
		if bi.Bank != AnyBank {
			fmt.Fprintf(sb, " bank %v", bi.Bank)
		}
	}

	if bi.Kind != BREAKPOINT {
		fmt.Fprintf(sb, " value 0x%x", bi.Value)
	}

	if bi.Condition != nil {
		fmt.Fprintf(sb, " if %v", bi.Condition)
	}

	if bi.TimesHit > 0 {
		fmt.Fprintf(sb, " hit %d", bi.TimesHit)
	}

	return sb.String()
}

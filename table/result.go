package table

// AddMode selects how AddSection treats sections that do not simply fill an
// empty slot.
type AddMode uint8

const (
	// AddReplace overwrites a slot that already holds a section.
	AddReplace AddMode = 1 << iota
	// AddGrow lets last_section_number disagree with the table size: the
	// table grows, or the incoming section is rewritten to the larger size.
	AddGrow

	// AddStrict accepts only sections that fill an empty slot of the
	// current table size.
	AddStrict AddMode = 0
)

// Has reports whether all bits of flag are set in m.
func (m AddMode) Has(flag AddMode) bool {
	return m&flag == flag
}

// AddResult is the outcome of AddSection.
type AddResult uint8

const (
	// Accepted means the section was stored in the table.
	Accepted AddResult = iota
	// RejectedInvalidSection means the section was nil or invalid.
	RejectedInvalidSection
	// RejectedIdentityMismatch means table_id, table_id_extension or version
	// differ from the table.
	RejectedIdentityMismatch
	// RejectedSizeConflict means section_number or last_section_number do
	// not fit the table size and AddGrow was not set, or a short section is
	// involved and cannot be resized.
	RejectedSizeConflict
	// RejectedDuplicate means the slot is already filled and AddReplace was
	// not set.
	RejectedDuplicate
)

// OK reports whether the section was accepted.
func (r AddResult) OK() bool {
	return r == Accepted
}

func (r AddResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedInvalidSection:
		return "invalid section"
	case RejectedIdentityMismatch:
		return "identity mismatch"
	case RejectedSizeConflict:
		return "size conflict"
	case RejectedDuplicate:
		return "duplicate section"
	default:
		return "unknown"
	}
}

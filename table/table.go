package table

import (
	"github.com/arloliu/psitable/errs"
	"github.com/arloliu/psitable/internal/hash"
	"github.com/arloliu/psitable/section"
)

// Table is a PSI/SI table in binary form: the list of sections that make one
// version of one table.
//
// A Table is built by feeding sections with AddSection in stream order. It
// becomes valid once every slot from 0 to last_section_number is filled.
// A Table assembles exactly one (table_id, table_id_extension, version)
// occurrence; a new version needs a new Table or a Clear.
//
// Slots hold *section.Section and may share them with other tables, see
// Share and Copy. A Table is not safe for concurrent use.
type Table struct {
	valid     bool
	tid       uint8
	tidExt    uint16
	version   uint8
	sourcePID section.PID
	missing   int
	sections  []*section.Section
}

// New creates an empty, invalid table.
func New() *Table {
	return &Table{
		tid:       section.TableIDNone,
		sourcePID: section.PIDNull,
	}
}

// NewFromSections builds a table from a list of sections.
//
// Returns:
//   - *Table: The table, empty if any section was rejected
//   - error: ErrSectionRejected if any section was rejected
func NewFromSections(sections []*section.Section, mode AddMode) (*Table, error) {
	t := New()
	if !t.AddSections(sections, mode) {
		t.Clear()
		return t, errs.ErrSectionRejected
	}

	return t, nil
}

// AddSection adds a section to the table.
//
// The first accepted section fixes the table identity and size. Later
// sections must have the same table_id, table_id_extension and version.
// When their last_section_number disagrees with the table size, AddGrow
// lets the smaller side be rewritten: a smaller incoming value is raised to
// the table size, a larger one grows the table and is written into every
// section already held. Rewritten sections get a new CRC32.
//
// A rejected section leaves both the table and the section untouched.
func (t *Table) AddSection(s *section.Section, mode AddMode) AddResult {
	if !s.IsValid() {
		return RejectedInvalidSection
	}

	index := int(s.SectionNumber())
	count := int(s.LastSectionNumber()) + 1

	if len(t.sections) == 0 {
		t.tid = s.TableID()
		t.tidExt = s.TableIDExtension()
		t.version = s.Version()
		t.sourcePID = s.SourcePID()
		t.sections = make([]*section.Section, count)
		t.missing = count
	} else if s.TableID() != t.tid || s.TableIDExtension() != t.tidExt || s.Version() != t.version {
		return RejectedIdentityMismatch
	} else if count != len(t.sections) {
		// Short sections have no last_section_number to rewrite.
		if !mode.Has(AddGrow) || s.IsShortSection() || t.holdsShortSection() {
			return RejectedSizeConflict
		}
		// The destination slot is checked before anything is rewritten.
		if index < len(t.sections) && t.sections[index] != nil && !mode.Has(AddReplace) {
			return RejectedDuplicate
		}
		if count < len(t.sections) {
			s.SetLastSectionNumber(uint8(len(t.sections)-1), true)
		} else {
			t.grow(count)
		}
	}

	switch {
	case t.sections[index] == nil:
		t.sections[index] = s
		t.missing--
	case !mode.Has(AddReplace):
		return RejectedDuplicate
	default:
		t.sections[index] = s
	}

	if t.missing < 0 {
		t.recount()
	}
	t.valid = t.missing == 0

	return Accepted
}

// grow extends the table to count slots and rewrites last_section_number of
// every section already held.
func (t *Table) grow(count int) {
	t.missing += count - len(t.sections)
	t.sections = append(t.sections, make([]*section.Section, count-len(t.sections))...)

	last := uint8(count - 1)
	for _, s := range t.sections {
		if s != nil {
			s.SetLastSectionNumber(last, true)
		}
	}
}

func (t *Table) holdsShortSection() bool {
	for _, s := range t.sections {
		if s.IsShortSection() {
			return true
		}
	}

	return false
}

// recount rebuilds the missing count from the slots. It only runs if the
// counter went negative, which no sequence of AddSection calls produces.
func (t *Table) recount() {
	t.missing = 0
	for _, s := range t.sections {
		if s == nil {
			t.missing++
		}
	}
}

// AddSections adds sections in order and reports whether all of them were
// accepted. A rejected section does not stop the others.
func (t *Table) AddSections(sections []*section.Section, mode AddMode) bool {
	ok := true
	for _, s := range sections {
		ok = t.AddSection(s, mode).OK() && ok
	}

	return ok
}

// Clear resets the table to its empty state.
func (t *Table) Clear() {
	t.valid = false
	t.tid = section.TableIDNone
	t.tidExt = 0
	t.version = 0
	t.sourcePID = section.PIDNull
	t.missing = 0
	t.sections = nil
}

// IsValid reports whether every section of the table is present.
func (t *Table) IsValid() bool {
	return t != nil && t.valid
}

// TableID returns the table_id, TableIDNone when empty.
func (t *Table) TableID() uint8 {
	return t.tid
}

// TableIDExtension returns the table_id_extension.
func (t *Table) TableIDExtension() uint16 {
	return t.tidExt
}

// Version returns the version_number.
func (t *Table) Version() uint8 {
	return t.version
}

// SourcePID returns the PID of the first accepted section, or as set by SetSourcePID.
func (t *Table) SourcePID() section.PID {
	return t.sourcePID
}

// SectionCount returns the number of slots, filled or not.
func (t *Table) SectionCount() int {
	return len(t.sections)
}

// MissingCount returns the number of empty slots.
func (t *Table) MissingCount() int {
	return t.missing
}

// SectionAt returns the section in slot index, nil if empty or out of range.
func (t *Table) SectionAt(index int) *section.Section {
	if index < 0 || index >= len(t.sections) {
		return nil
	}

	return t.sections[index]
}

// IsShortSection reports whether the table is made of a single short section.
func (t *Table) IsShortSection() bool {
	return len(t.sections) == 1 && t.sections[0].IsShortSection()
}

// SetTableIDExtension rewrites table_id_extension in the table and every section it holds.
func (t *Table) SetTableIDExtension(ext uint16, recomputeCRC bool) {
	t.tidExt = ext
	for _, s := range t.sections {
		if s != nil {
			s.SetTableIDExtension(ext, recomputeCRC)
		}
	}
}

// SetVersion rewrites version_number in the table and every section it holds.
func (t *Table) SetVersion(version uint8, recomputeCRC bool) {
	t.version = version & section.MaxVersion
	for _, s := range t.sections {
		if s != nil {
			s.SetVersion(version, recomputeCRC)
		}
	}
}

// SetSourcePID sets the source PID of the table and every section it holds.
func (t *Table) SetSourcePID(pid section.PID) {
	t.sourcePID = pid
	for _, s := range t.sections {
		if s != nil {
			s.SetSourcePID(pid)
		}
	}
}

// TotalSize returns the size in bytes of all valid sections in the table.
func (t *Table) TotalSize() int {
	size := 0
	for _, s := range t.sections {
		if s.IsValid() {
			size += s.Size()
		}
	}

	return size
}

// FirstTSPacketIndex returns the lowest first packet index of the sections
// in the table. found is false, and index zero, when the table holds no section.
func (t *Table) FirstTSPacketIndex() (index section.PacketCounter, found bool) {
	for _, s := range t.sections {
		if s == nil {
			continue
		}
		if !found || s.FirstTSPacketIndex() < index {
			index = s.FirstTSPacketIndex()
		}
		found = true
	}

	return index, found
}

// LastTSPacketIndex returns the highest last packet index of the sections
// in the table. found is false, and index zero, when the table holds no section.
func (t *Table) LastTSPacketIndex() (index section.PacketCounter, found bool) {
	for _, s := range t.sections {
		if s == nil {
			continue
		}
		found = true
		index = max(index, s.LastTSPacketIndex())
	}

	return index, found
}

// Fingerprint returns an xxHash64 over the sections of a valid table.
// Equal tables have equal fingerprints.
func (t *Table) Fingerprint() (uint64, bool) {
	if !t.valid {
		return 0, false
	}

	c := hash.NewCombiner()
	for _, s := range t.sections {
		c.Add(s.Data())
	}

	return c.Sum64(), true
}

// Equal reports whether both tables are valid, have the same identity and
// the same number of sections, and every pair of sections is equal.
// An invalid table is never equal to anything, itself included.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil || !t.valid || !other.valid {
		return false
	}
	if t.tid != other.tid || t.tidExt != other.tidExt || t.version != other.version ||
		len(t.sections) != len(other.sections) {
		return false
	}
	for i, s := range t.sections {
		if !s.Equal(other.sections[i]) {
			return false
		}
	}

	return true
}

package table

import (
	"slices"

	"github.com/arloliu/psitable/section"
)

// Share returns a new table referencing the same section instances.
//
// Mutating a section through one table, including with the fan-out setters
// SetVersion, SetTableIDExtension and SetSourcePID, is visible through the
// other. Adding or replacing slots is not: each table has its own slot list.
func (t *Table) Share() *Table {
	dup := New()
	dup.Assign(t)

	return dup
}

// Copy returns a new table holding independent clones of every section.
func (t *Table) Copy() *Table {
	dup := New()
	dup.CopyFrom(t)

	return dup
}

// Assign makes t a sharing duplicate of src, see Share.
func (t *Table) Assign(src *Table) {
	if t == src {
		return
	}
	t.copyHeader(src)
	t.sections = slices.Clone(src.sections)
}

// CopyFrom makes t a deep duplicate of src, see Copy.
func (t *Table) CopyFrom(src *Table) {
	if t == src {
		return
	}
	t.copyHeader(src)
	t.sections = make([]*section.Section, len(src.sections))
	for i, s := range src.sections {
		if s != nil {
			t.sections[i] = s.Clone()
		}
	}
}

func (t *Table) copyHeader(src *Table) {
	t.valid = src.valid
	t.tid = src.tid
	t.tidExt = src.tidExt
	t.version = src.version
	t.sourcePID = src.sourcePID
	t.missing = src.missing
}

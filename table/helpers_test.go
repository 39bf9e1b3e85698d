package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/psitable/section"
)

type sectionFields struct {
	tid     uint8
	ext     uint16
	version uint8
	num     uint8
	last    uint8
}

func newSection(t testing.TB, f sectionFields) *section.Section {
	t.Helper()

	s, err := section.NewLong(section.LongHeader{
		TableID:           f.tid,
		TableIDExtension:  f.ext,
		Version:           f.version,
		IsCurrent:         true,
		SectionNumber:     f.num,
		LastSectionNumber: f.last,
	}, []byte{f.num, 0xAB, 0xCD})
	require.NoError(t, err)

	return s
}

// sdtSections returns the sections 0..last of table 0x42, extension 1, version 3.
func sdtSections(t testing.TB, last uint8) []*section.Section {
	t.Helper()

	sections := make([]*section.Section, 0, int(last)+1)
	for i := 0; i <= int(last); i++ {
		sections = append(sections, newSection(t, sectionFields{0x42, 0x0001, 3, uint8(i), last}))
	}

	return sections
}

func completeTable(t testing.TB, last uint8) *Table {
	t.Helper()

	tbl, err := NewFromSections(sdtSections(t, last), AddStrict)
	require.NoError(t, err)
	require.True(t, tbl.IsValid())

	return tbl
}

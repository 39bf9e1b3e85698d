package psitable

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/psitable/errs"
	"github.com/arloliu/psitable/format"
	"github.com/arloliu/psitable/section"
	"github.com/arloliu/psitable/table"
)

// patSection is a single-section PAT with program 1 on PMT PID 0x0020.
var patSection = []byte{
	0x00, 0xB0, 0x0D, 0x00, 0x01, 0xC1, 0x00, 0x00,
	0x00, 0x01, 0xE0, 0x20,
	0xA2, 0xC3, 0x29, 0x41,
}

func sdtSections(t *testing.T) []*section.Section {
	t.Helper()

	var sections []*section.Section
	for i := range uint8(3) {
		s, err := section.NewLong(section.LongHeader{
			TableID:           0x42,
			TableIDExtension:  0x0001,
			Version:           3,
			IsCurrent:         true,
			SectionNumber:     i,
			LastSectionNumber: 2,
		}, []byte{i, 0xFF})
		require.NoError(t, err)
		sections = append(sections, s)
	}

	return sections
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection(patSection, 0x0000)
	require.NoError(t, err)
	require.True(t, s.IsValid())
	require.Equal(t, uint8(0x00), s.TableID())
	require.Equal(t, uint16(0x0001), s.TableIDExtension())

	corrupted := append([]byte(nil), patSection...)
	corrupted[len(corrupted)-1] ^= 0x01
	_, err = ParseSection(corrupted, 0x0000)
	require.ErrorIs(t, err, errs.ErrCRCMismatch)
}

func TestNewTable(t *testing.T) {
	s, err := ParseSection(patSection, 0x0000)
	require.NoError(t, err)

	tbl := NewTable()
	require.False(t, tbl.IsValid())
	require.Equal(t, table.Accepted, tbl.AddSection(s, table.AddStrict))
	require.True(t, tbl.IsValid())
	require.Equal(t, section.PID(0x0000), tbl.SourcePID())
}

func TestNewTableFromSections(t *testing.T) {
	sections := sdtSections(t)

	tbl, err := NewTableFromSections([]*section.Section{sections[2], sections[0], sections[1]}, table.AddStrict)
	require.NoError(t, err)
	require.True(t, tbl.IsValid())

	_, err = NewTableFromSections([]*section.Section{sections[0], sections[0]}, table.AddStrict)
	require.ErrorIs(t, err, errs.ErrSectionRejected)
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.bin")

	pat, err := ParseSection(patSection, 0x0000)
	require.NoError(t, err)
	patTable, err := NewTableFromSections([]*section.Section{pat}, table.AddStrict)
	require.NoError(t, err)
	sdtTable, err := NewTableFromSections(sdtSections(t), table.AddStrict)
	require.NoError(t, err)

	err = SaveFile(path, []*table.Table{patTable, sdtTable}, table.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	tables, err := LoadFile(path, table.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)
	require.Len(t, tables, 2)
	require.True(t, tables[0].Equal(patTable))
	require.True(t, tables[1].Equal(sdtTable))
}

package table

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/psitable/errs"
	"github.com/arloliu/psitable/format"
	"github.com/arloliu/psitable/report"
	"github.com/arloliu/psitable/section"
)

func TestReadTables(t *testing.T) {
	a := completeTable(t, 2)
	b, err := NewFromSections([]*section.Section{newSection(t, sectionFields{0x46, 9, 0, 0, 0})}, AddStrict)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = WriteTables(&buf, []*Table{a, b})
	require.NoError(t, err)

	tables, err := ReadTables(&buf)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	require.True(t, tables[0].Equal(a))
	require.True(t, tables[1].Equal(b))
	require.Equal(t, section.PIDNull, tables[0].SourcePID())
}

func TestReadTables_Empty(t *testing.T) {
	tables, err := ReadTables(&bytes.Buffer{})
	require.NoError(t, err)
	require.Empty(t, tables)
}

func TestReadTables_IncompleteTableDropped(t *testing.T) {
	var log bytes.Buffer
	reporter := report.NewZerolog(zerolog.New(&log))

	partial := sdtSections(t, 2)
	other := newSection(t, sectionFields{0x46, 9, 0, 0, 0})
	tail := newSection(t, sectionFields{0x4A, 1, 0, 0, 1})

	stream := concat([]*section.Section{partial[0], partial[1], other, tail})

	tables, err := ReadTables(bytes.NewReader(stream), WithReporter(reporter))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Equal(t, uint8(0x46), tables[0].TableID())

	// one for the interrupted table, one for the table left open at the end
	require.Equal(t, 2, bytes.Count(log.Bytes(), []byte("incomplete table dropped")))
	require.Contains(t, log.String(), `"level":"warn"`)
}

func TestReadTables_DuplicateClosesTable(t *testing.T) {
	first := sdtSections(t, 1)
	second := sdtSections(t, 1)
	stream := concat([]*section.Section{first[0], second[0], second[1]})

	tables, err := ReadTables(bytes.NewReader(stream))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.True(t, tables[0].IsValid())
	require.Equal(t, 2, tables[0].SectionCount())
}

func TestReadTables_InvalidSection(t *testing.T) {
	sections := sdtSections(t, 1)
	corrupted := sdtSections(t, 1)[1].Clone()
	data := corrupted.Data()
	data[len(data)-1] ^= 0xFF

	stream := concat([]*section.Section{sections[0]})
	stream = append(stream, data...)
	stream = append(stream, sections[1].Data()...)

	t.Run("check", func(t *testing.T) {
		var log bytes.Buffer
		tables, err := ReadTables(bytes.NewReader(stream), WithReporter(report.NewZerolog(zerolog.New(&log))))
		require.NoError(t, err)
		require.Len(t, tables, 1)
		require.True(t, tables[0].SectionAt(1).Equal(sections[1]))
		require.Contains(t, log.String(), "invalid section skipped")
		require.Contains(t, log.String(), `"index":1`)
	})

	t.Run("ignore", func(t *testing.T) {
		tables, err := ReadTables(bytes.NewReader(stream), WithCRCValidation(section.CRCIgnore))
		require.NoError(t, err)
		// the corrupted section completes the first table, the last one is left alone
		require.Len(t, tables, 1)
		require.Equal(t, data, tables[0].SectionAt(1).Data())
	})

	t.Run("compute", func(t *testing.T) {
		tables, err := ReadTables(bytes.NewReader(stream), WithCRCValidation(section.CRCCompute))
		require.NoError(t, err)
		require.Len(t, tables, 1)
		require.True(t, tables[0].SectionAt(1).Equal(sections[1]))
	})
}

func TestReadTables_Truncated(t *testing.T) {
	a := completeTable(t, 0)
	b := completeTable(t, 2)

	var buf bytes.Buffer
	_, err := WriteTables(&buf, []*Table{a, b})
	require.NoError(t, err)
	stream := buf.Bytes()[:buf.Len()-2]

	var log bytes.Buffer
	tables, err := ReadTables(bytes.NewReader(stream), WithReporter(report.NewZerolog(zerolog.New(&log))))
	require.ErrorIs(t, err, errs.ErrTruncatedSection)
	require.Len(t, tables, 1)
	require.True(t, tables[0].Equal(a))
	require.Contains(t, log.String(), "incomplete table dropped")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.bin"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "plain.bin")
	require.NoError(t, completeTable(t, 1).Save(path))

	var log bytes.Buffer
	_, err = Load(path, WithCompression(format.CompressionZstd), WithReporter(report.NewZerolog(zerolog.New(&log))))
	require.Error(t, err)
	require.Contains(t, log.String(), "error decompressing section file")
}

package table

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/psitable/format"
	"github.com/arloliu/psitable/section"
)

// ReadTables reads a section file and assembles its sections into tables.
//
// Sections of one table are expected to be consecutive, as written by
// WriteTables. A section that does not fit the table being assembled closes
// it and starts a new one. Invalid sections and incomplete tables are
// reported as warnings and dropped.
//
// Returns:
//   - []*Table: The complete tables, in file order
//   - error: An option, decompression or I/O error, or
//     errs.ErrTruncatedSection. The tables completed before the error are
//     returned along with it.
func ReadTables(r io.Reader, opts ...FileOption) ([]*Table, error) {
	cfg, err := applyFileOptions(opts)
	if err != nil {
		return nil, err
	}

	if cfg.codec.Type() != format.CompressionNone {
		packed, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read section file: %w", err)
		}
		raw, err := cfg.codec.Decompress(packed)
		if err != nil {
			cfg.reporter.Error("error decompressing section file", "codec", cfg.codec.Type(), "error", err)
			return nil, fmt.Errorf("decompress section file: %w", err)
		}
		r = bytes.NewReader(raw)
	}

	a := assembler{cfg: cfg, current: New()}
	rd := section.NewReader(r, section.PIDNull, cfg.crc)
	for {
		s, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			a.flush()
			return a.tables, err
		}
		a.add(s)
	}
	a.flush()

	return a.tables, nil
}

// Load reads the section file at path, see ReadTables.
func Load(path string, opts ...FileOption) ([]*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	tables, err := ReadTables(bufio.NewReader(file), opts...)
	if err != nil {
		return tables, fmt.Errorf("load %s: %w", path, err)
	}

	return tables, nil
}

// assembler groups consecutive sections of a section file into tables.
type assembler struct {
	cfg     *fileConfig
	current *Table
	tables  []*Table
	index   int
}

func (a *assembler) add(s *section.Section) {
	defer func() { a.index++ }()

	if !s.IsValid() {
		a.cfg.reporter.Warn("invalid section skipped", "index", a.index)
		return
	}

	if !a.current.AddSection(s, AddStrict).OK() {
		a.flush()
		a.current.AddSection(s, AddStrict)
	}
	if a.current.IsValid() {
		a.tables = append(a.tables, a.current)
		a.current = New()
	}
}

// flush drops the table being assembled, reporting it if it holds sections.
func (a *assembler) flush() {
	if a.current.SectionCount() > 0 {
		a.cfg.reporter.Warn("incomplete table dropped",
			"table_id", a.current.TableID(),
			"table_id_extension", a.current.TableIDExtension(),
			"missing", a.current.MissingCount())
	}
	a.current = New()
}

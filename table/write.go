package table

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/psitable/errs"
	"github.com/arloliu/psitable/format"
	"github.com/arloliu/psitable/internal/pool"
)

// Write writes the sections of a valid table to w, in slot order.
//
// Writing an invalid table is reported and fails with ErrInvalidTable
// without writing anything. The first failing section write stops the
// table and its error is returned.
//
// Parameters:
//   - w: Destination stream
//   - opts: WithReporter, WithCompression
//
// Returns:
//   - int64: Number of bytes written to w
//   - error: ErrInvalidTable, an option error, or the write error
func (t *Table) Write(w io.Writer, opts ...FileOption) (int64, error) {
	return WriteTables(w, []*Table{t}, opts...)
}

// WriteTo implements io.WriterTo with the default options.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	return t.Write(w)
}

// Bytes returns the concatenated sections of a valid table.
func (t *Table) Bytes() ([]byte, error) {
	if !t.IsValid() {
		return nil, errs.ErrInvalidTable
	}

	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	t.appendTo(buf)

	return bytes.Clone(buf.Bytes()), nil
}

// Save writes a valid table into a new section file at path.
func (t *Table) Save(path string, opts ...FileOption) error {
	return SaveTables(path, []*Table{t}, opts...)
}

// WriteTables writes several tables to w as one section file. Every table
// must be valid; nothing is written otherwise.
func WriteTables(w io.Writer, tables []*Table, opts ...FileOption) (int64, error) {
	cfg, err := applyFileOptions(opts)
	if err != nil {
		return 0, err
	}

	return writeTables(w, tables, cfg)
}

// SaveTables writes several tables into a new section file at path.
func SaveTables(path string, tables []*Table, opts ...FileOption) error {
	cfg, err := applyFileOptions(opts)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		cfg.reporter.Error("error creating section file", "path", path, "error", err)
		return fmt.Errorf("create %s: %w", path, err)
	}

	bw := bufio.NewWriter(file)
	_, err = writeTables(bw, tables, cfg)
	if err == nil {
		err = bw.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

func writeTables(w io.Writer, tables []*Table, cfg *fileConfig) (int64, error) {
	for i, t := range tables {
		if !t.IsValid() {
			args := []any{"index", i}
			if t != nil {
				args = append(args, "table_id", t.tid, "missing", t.missing)
			}
			cfg.reporter.Error("invalid table, cannot write it", args...)
			return 0, errs.ErrInvalidTable
		}
	}

	if cfg.codec.Type() != format.CompressionNone {
		return writeCompressed(w, tables, cfg)
	}

	var total int64
	for _, t := range tables {
		for i, s := range t.sections {
			n, err := s.WriteTo(w)
			total += n
			if err != nil {
				cfg.reporter.Error("error writing section",
					"table_id", t.tid, "section", i, "error", err)
				return total, fmt.Errorf("write section %d of table 0x%02X: %w", i, t.tid, err)
			}
		}
	}

	return total, nil
}

func writeCompressed(w io.Writer, tables []*Table, cfg *fileConfig) (int64, error) {
	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	for _, t := range tables {
		t.appendTo(buf)
	}

	packed, err := cfg.codec.Compress(buf.Bytes())
	if err != nil {
		cfg.reporter.Error("error compressing section file", "codec", cfg.codec.Type(), "error", err)
		return 0, fmt.Errorf("compress section file: %w", err)
	}

	n, err := w.Write(packed)
	if err == nil && n < len(packed) {
		err = io.ErrShortWrite
	}
	if err != nil {
		cfg.reporter.Error("error writing section file", "error", err)
		return int64(n), fmt.Errorf("write section file: %w", err)
	}

	return int64(n), nil
}

// appendTo appends every section of a valid table to buf.
func (t *Table) appendTo(buf *pool.ByteBuffer) {
	buf.Grow(t.TotalSize())
	for _, s := range t.sections {
		_, _ = buf.Write(s.Data())
	}
}

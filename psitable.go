// Package psitable reassembles MPEG transport stream PSI/SI sections into
// complete binary tables.
//
// A demultiplexer extracts sections from transport packets and hands them
// over one at a time. Sections of one table (same table_id,
// table_id_extension and version_number) are collected into slots indexed by
// section_number until every slot from 0 to last_section_number is filled.
// The table is then valid and can be decoded, compared or saved.
//
// # Basic Usage
//
// Assembling a table from sections received in any order:
//
//	import "github.com/arloliu/psitable"
//
//	tbl := psitable.NewTable()
//	for s := range sectionsFromDemux {
//	    if res := tbl.AddSection(s, table.AddStrict); !res.OK() {
//	        log.Printf("section dropped: %s", res)
//	        continue
//	    }
//	    if tbl.IsValid() {
//	        handle(tbl)
//	        tbl = psitable.NewTable()
//	    }
//	}
//
// Parsing a raw section:
//
//	s, err := psitable.ParseSection(data, 0x0011)
//	if err != nil {
//	    // errs.ErrCRCMismatch, errs.ErrSectionLengthMismatch, ...
//	}
//
// Saving and loading section files:
//
//	err := psitable.SaveFile("sdt.bin", []*table.Table{tbl},
//	    table.WithCompression(format.CompressionZstd),
//	)
//	tables, err := psitable.LoadFile("sdt.bin",
//	    table.WithCompression(format.CompressionZstd),
//	)
//
// # Package Structure
//
// This package provides top-level wrappers around the section and table
// packages for the common cases. Use those packages directly for the full API.
package psitable

import (
	"github.com/arloliu/psitable/section"
	"github.com/arloliu/psitable/table"
)

// NewTable creates an empty table ready to receive sections.
func NewTable() *table.Table {
	return table.New()
}

// NewTableFromSections builds a table from sections.
//
// Parameters:
//   - sections: Sections of a single table, in any order
//   - mode: table.AddStrict, or a combination of table.AddReplace and table.AddGrow
//
// Returns:
//   - *table.Table: The table, empty when a section was rejected
//   - error: errs.ErrSectionRejected if any section was rejected
//
// Example:
//
//	tbl, err := psitable.NewTableFromSections(sections, table.AddStrict)
//	if err == nil && tbl.IsValid() {
//	    // all sections present
//	}
func NewTableFromSections(sections []*section.Section, mode table.AddMode) (*table.Table, error) {
	return table.NewFromSections(sections, mode)
}

// ParseSection parses a binary section extracted from pid and checks its CRC32.
//
// Use section.New or section.Parse for other CRC32 validation modes.
func ParseSection(data []byte, pid section.PID) (*section.Section, error) {
	return section.Parse(data, pid, section.CRCCheck)
}

// LoadFile reads the complete tables of a section file.
//
// Available options:
//   - table.WithReporter(report.Reporter)
//   - table.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - table.WithCRCValidation(section.CRCIgnore|CRCCheck|CRCCompute)
func LoadFile(path string, opts ...table.FileOption) ([]*table.Table, error) {
	return table.Load(path, opts...)
}

// SaveFile writes valid tables into a new section file.
//
// Available options:
//   - table.WithReporter(report.Reporter)
//   - table.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
func SaveFile(path string, tables []*table.Table, opts ...table.FileOption) error {
	return table.SaveTables(path, tables, opts...)
}

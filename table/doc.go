// Package table reassembles binary sections into complete PSI/SI tables.
//
// # Assembly
//
// A demultiplexer feeds sections, in stream order, to one Table per
// (table_id, table_id_extension) it is collecting. Each call to AddSection
// returns an AddResult:
//
//	t := table.New()
//	for s := range sections {
//	    if r := t.AddSection(s, table.AddStrict); !r.OK() {
//	        rejected[r]++
//	        continue
//	    }
//	    if t.IsValid() {
//	        deliver(t)
//	        t = table.New()
//	    }
//	}
//
// The first accepted section fixes the identity (table_id,
// table_id_extension, version) and the number of slots
// (last_section_number + 1). The table is valid once no slot is missing.
//
// With AddGrow, sections may disagree on last_section_number. The table
// always keeps the largest size seen and rewrites last_section_number, with
// a new CRC32, in every section it holds, so the sections of a complete
// table always agree.
//
// # Sharing
//
// Share and Assign duplicate a table with its section instances shared;
// Copy and CopyFrom clone every section. The fan-out setters
// (SetTableIDExtension, SetVersion, SetSourcePID) and the growth rewrite
// mutate sections in place, so use Copy when the source must stay intact.
//
// # Section Files
//
// Write, Save, ReadTables and Load handle section files: the plain
// concatenation of the sections of one or more tables, optionally
// compressed as a whole with WithCompression.
//
// Nothing in this package is safe for concurrent use, and nothing blocks.
// Evicting tables that stay incomplete is left to the caller.
package table

// Package section implements the binary sections that PSI/SI tables are
// carried in.
//
// A section is the smallest self-contained unit of a broadcast table. It is
// extracted from transport packets by a demultiplexer (outside this
// package) and handed over as raw bytes.
//
// # Layout
//
// All fields are big-endian (ISO/IEC 13818-1, 2.4.4):
//
//	Bytes | Field
//	------|------------------------------------------------------------
//	0     | table_id
//	1-2   | syntax_indicator(1) private(1) reserved(2) section_length(12)
//	3-4   | table_id_extension                      (long sections only)
//	5     | reserved(2) version(5) current_next(1)  (long sections only)
//	6     | section_number                          (long sections only)
//	7     | last_section_number                     (long sections only)
//	...   | payload
//	-4    | CRC32                                   (long sections only)
//
// The total size is section_length + 3 and never exceeds 4096 bytes.
//
// # Validity
//
// A Section is either valid or unusable. New always returns a section and
// records whether it is valid; Parse returns the reason as an error. Under
// CRCCheck a long section whose CRC32 is wrong is invalid.
//
// # Ownership
//
// Sections are passed around as *Section and may be referenced by several
// tables at once. The setters (SetVersion, SetTableIDExtension,
// SetLastSectionNumber, ...) mutate the shared instance in place and are
// visible through every table holding it. Clone returns an independent copy.
// Nothing here is synchronized.
package section

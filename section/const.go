package section

const (
	// Header byte 1 bit masks
	SyntaxIndicatorMask  = 0x80 // section_syntax_indicator, set for long sections
	PrivateIndicatorMask = 0x40 // private_indicator
	ReservedBitsMask     = 0x30 // two reserved bits, always written as 1
	LengthHighMask       = 0x0F // high nibble of section_length

	// Header byte 5 bit masks (long sections)
	VersionMask     = 0x3E // version_number, bits 1-5
	CurrentNextMask = 0x01 // current_next_indicator
	VersionReserved = 0xC0 // two reserved bits, always written as 1
)

// offsets and sizes in a section
const (
	ShortHeaderSize = 3 // table_id + flags/section_length
	LongHeaderSize  = 8 // short header + extension, version, section numbers
	CRCSize         = 4 // trailing CRC32 of long sections

	MinShortSectionSize = ShortHeaderSize
	MinLongSectionSize  = LongHeaderSize + CRCSize

	MaxPSISectionSize     = 1024 // PSI and DVB SI sections
	MaxPrivateSectionSize = 4096 // private sections, upper bound of section_length

	TableIDExtensionOffset  = 3
	VersionOffset           = 5
	SectionNumberOffset     = 6
	LastSectionNumberOffset = 7

	MaxVersion       = 31
	MaxSectionNumber = 255
)

// TableIDNone is the table_id reported by empty tables and invalid sections.
// 0xFF is the reserved "stuffing" table_id and never carries a table.
const TableIDNone = 0xFF

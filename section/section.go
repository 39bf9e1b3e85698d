package section

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arloliu/psitable/errs"
	"github.com/arloliu/psitable/internal/hash"
)

// PID is a 13-bit transport stream packet identifier.
type PID uint16

// PIDNull is the null packet PID, used when the source PID is unknown.
const PIDNull PID = 0x1FFF

// PacketCounter indexes transport packets in a demultiplexed stream.
type PacketCounter uint64

// CRCValidation selects how New treats the CRC32 of long sections.
type CRCValidation uint8

const (
	// CRCIgnore keeps the CRC32 field as it is, without checking it.
	CRCIgnore CRCValidation = iota
	// CRCCheck marks the section invalid when the CRC32 is wrong.
	CRCCheck
	// CRCCompute overwrites the CRC32 field with the correct value.
	CRCCompute
)

func (c CRCValidation) String() string {
	switch c {
	case CRCIgnore:
		return "ignore"
	case CRCCheck:
		return "check"
	case CRCCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// Section is one binary section of a PSI/SI table.
//
// A Section is either valid or unusable: accessors of an invalid section
// return zero values and setters do nothing. Sections are handled through
// *Section so that several tables can share one instance; use Clone to get
// an independent copy. Setters are not synchronized.
type Section struct {
	data      []byte
	valid     bool
	sourcePID PID
	firstPkt  PacketCounter
	lastPkt   PacketCounter
}

// New creates a section from a copy of data.
//
// New never fails: when data is not a well formed section, or when crc is
// CRCCheck and the CRC32 is wrong, the returned section is invalid. Use
// Parse to get the reason.
func New(data []byte, pid PID, crc CRCValidation) *Section {
	s := &Section{
		data:      bytes.Clone(data),
		sourcePID: pid,
	}
	s.valid = validate(s.data, crc) == nil

	return s
}

// Parse creates a section from a copy of data and reports why it is invalid.
//
// Parameters:
//   - data: Complete section bytes, starting at table_id
//   - pid: PID the section was extracted from
//   - crc: CRC32 handling for long sections
//
// Returns:
//   - *Section: The valid section, nil on error
//   - error: ErrSectionTooShort, ErrSectionTooLong, ErrSectionLengthMismatch,
//     ErrSectionNumberOverflow or ErrCRCMismatch
func Parse(data []byte, pid PID, crc CRCValidation) (*Section, error) {
	s := &Section{
		data:      bytes.Clone(data),
		sourcePID: pid,
	}
	if err := validate(s.data, crc); err != nil {
		return nil, err
	}
	s.valid = true

	return s, nil
}

// validate checks the structure of data, fixing the CRC32 in place when
// crc is CRCCompute.
func validate(data []byte, crc CRCValidation) error {
	if len(data) < MinShortSectionSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrSectionTooShort, len(data))
	}
	if len(data) > MaxPrivateSectionSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrSectionTooLong, len(data))
	}

	length := int(binary.BigEndian.Uint16(data[1:3])&0x0FFF) + ShortHeaderSize
	if length != len(data) {
		return fmt.Errorf("%w: section_length gives %d bytes, got %d",
			errs.ErrSectionLengthMismatch, length, len(data))
	}

	if data[1]&SyntaxIndicatorMask == 0 {
		return nil
	}

	if len(data) < MinLongSectionSize {
		return fmt.Errorf("%w: long section of %d bytes", errs.ErrSectionTooShort, len(data))
	}
	if data[SectionNumberOffset] > data[LastSectionNumberOffset] {
		return fmt.Errorf("%w: %d > %d", errs.ErrSectionNumberOverflow,
			data[SectionNumberOffset], data[LastSectionNumberOffset])
	}

	crcOffset := len(data) - CRCSize
	switch crc {
	case CRCCheck:
		if CRC32(data) != 0 {
			return fmt.Errorf("%w: stored 0x%08X, computed 0x%08X", errs.ErrCRCMismatch,
				binary.BigEndian.Uint32(data[crcOffset:]), CRC32(data[:crcOffset]))
		}
	case CRCCompute:
		binary.BigEndian.PutUint32(data[crcOffset:], CRC32(data[:crcOffset]))
	case CRCIgnore:
	}

	return nil
}

// LongHeader describes the header fields of a long section built by NewLong.
type LongHeader struct {
	TableID           uint8
	Private           bool
	TableIDExtension  uint16
	Version           uint8
	IsCurrent         bool
	SectionNumber     uint8
	LastSectionNumber uint8
}

// NewLong builds a valid long section from header fields and a payload, and
// computes its CRC32.
func NewLong(h LongHeader, payload []byte) (*Section, error) {
	if h.Version > MaxVersion {
		return nil, fmt.Errorf("version %d out of range", h.Version)
	}
	if h.SectionNumber > h.LastSectionNumber {
		return nil, fmt.Errorf("%w: %d > %d", errs.ErrSectionNumberOverflow, h.SectionNumber, h.LastSectionNumber)
	}

	size := LongHeaderSize + len(payload) + CRCSize
	if size > MaxPrivateSectionSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, len(payload))
	}

	data := make([]byte, size)
	data[0] = h.TableID
	binary.BigEndian.PutUint16(data[1:3], uint16(size-ShortHeaderSize))
	data[1] |= SyntaxIndicatorMask | ReservedBitsMask
	if h.Private {
		data[1] |= PrivateIndicatorMask
	}
	binary.BigEndian.PutUint16(data[TableIDExtensionOffset:], h.TableIDExtension)
	data[VersionOffset] = VersionReserved | h.Version<<1
	if h.IsCurrent {
		data[VersionOffset] |= CurrentNextMask
	}
	data[SectionNumberOffset] = h.SectionNumber
	data[LastSectionNumberOffset] = h.LastSectionNumber
	copy(data[LongHeaderSize:], payload)
	binary.BigEndian.PutUint32(data[size-CRCSize:], CRC32(data[:size-CRCSize]))

	return &Section{data: data, valid: true, sourcePID: PIDNull}, nil
}

// NewShort builds a valid short section, such as a TDT, from a payload.
func NewShort(tableID uint8, private bool, payload []byte) (*Section, error) {
	size := ShortHeaderSize + len(payload)
	if size > MaxPrivateSectionSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, len(payload))
	}

	data := make([]byte, size)
	data[0] = tableID
	binary.BigEndian.PutUint16(data[1:3], uint16(len(payload)))
	data[1] |= ReservedBitsMask
	if private {
		data[1] |= PrivateIndicatorMask
	}
	copy(data[ShortHeaderSize:], payload)

	return &Section{data: data, valid: true, sourcePID: PIDNull}, nil
}

// IsValid reports whether the section is structurally valid.
func (s *Section) IsValid() bool {
	return s != nil && s.valid
}

// IsLongSection reports whether the section has the long header with
// extension, version and section numbers.
func (s *Section) IsLongSection() bool {
	return s.IsValid() && s.data[1]&SyntaxIndicatorMask != 0
}

// IsShortSection reports whether the section has a 3-byte header only.
func (s *Section) IsShortSection() bool {
	return s.IsValid() && s.data[1]&SyntaxIndicatorMask == 0
}

// IsPrivateSection reports whether the private_indicator bit is set.
func (s *Section) IsPrivateSection() bool {
	return s.IsValid() && s.data[1]&PrivateIndicatorMask != 0
}

// TableID returns the table_id, or TableIDNone for an invalid section.
func (s *Section) TableID() uint8 {
	if !s.IsValid() {
		return TableIDNone
	}

	return s.data[0]
}

// TableIDExtension returns the table_id_extension, zero for short sections.
func (s *Section) TableIDExtension() uint16 {
	if !s.IsLongSection() {
		return 0
	}

	return binary.BigEndian.Uint16(s.data[TableIDExtensionOffset:])
}

// Version returns the version_number, zero for short sections.
func (s *Section) Version() uint8 {
	if !s.IsLongSection() {
		return 0
	}

	return s.data[VersionOffset] & VersionMask >> 1
}

// IsCurrent returns the current_next_indicator. Short sections are always current.
func (s *Section) IsCurrent() bool {
	if !s.IsLongSection() {
		return s.IsValid()
	}

	return s.data[VersionOffset]&CurrentNextMask != 0
}

// SectionNumber returns the section_number, zero for short sections.
func (s *Section) SectionNumber() uint8 {
	if !s.IsLongSection() {
		return 0
	}

	return s.data[SectionNumberOffset]
}

// LastSectionNumber returns the last_section_number, zero for short sections.
func (s *Section) LastSectionNumber() uint8 {
	if !s.IsLongSection() {
		return 0
	}

	return s.data[LastSectionNumberOffset]
}

// SourcePID returns the PID the section was extracted from.
func (s *Section) SourcePID() PID {
	if s == nil {
		return PIDNull
	}

	return s.sourcePID
}

// FirstTSPacketIndex returns the index of the first transport packet of the section.
func (s *Section) FirstTSPacketIndex() PacketCounter {
	if s == nil {
		return 0
	}

	return s.firstPkt
}

// LastTSPacketIndex returns the index of the last transport packet of the section.
func (s *Section) LastTSPacketIndex() PacketCounter {
	if s == nil {
		return 0
	}

	return s.lastPkt
}

// Size returns the size of the section in bytes, zero when invalid.
func (s *Section) Size() int {
	if !s.IsValid() {
		return 0
	}

	return len(s.data)
}

// Data returns the section bytes. The slice aliases the section and must
// not be modified; use the setters.
func (s *Section) Data() []byte {
	if !s.IsValid() {
		return nil
	}

	return s.data
}

// Payload returns the bytes between the header and the CRC32.
func (s *Section) Payload() []byte {
	switch {
	case s.IsLongSection():
		return s.data[LongHeaderSize : len(s.data)-CRCSize]
	case s.IsShortSection():
		return s.data[ShortHeaderSize:]
	default:
		return nil
	}
}

// SetSourcePID records the PID the section was extracted from.
func (s *Section) SetSourcePID(pid PID) {
	s.sourcePID = pid
}

// SetTSPacketIndexes records the range of transport packets the section was
// reassembled from.
func (s *Section) SetTSPacketIndexes(first, last PacketCounter) {
	s.firstPkt = first
	s.lastPkt = last
}

// SetTableIDExtension rewrites table_id_extension of a long section.
func (s *Section) SetTableIDExtension(ext uint16, recomputeCRC bool) {
	if !s.IsLongSection() {
		return
	}
	binary.BigEndian.PutUint16(s.data[TableIDExtensionOffset:], ext)
	if recomputeCRC {
		s.RecomputeCRC()
	}
}

// SetVersion rewrites version_number of a long section. Only the low 5 bits are used.
func (s *Section) SetVersion(version uint8, recomputeCRC bool) {
	if !s.IsLongSection() {
		return
	}
	s.data[VersionOffset] = s.data[VersionOffset]&^VersionMask | version<<1&VersionMask
	if recomputeCRC {
		s.RecomputeCRC()
	}
}

// SetIsCurrent rewrites current_next_indicator of a long section.
func (s *Section) SetIsCurrent(current bool, recomputeCRC bool) {
	if !s.IsLongSection() {
		return
	}
	if current {
		s.data[VersionOffset] |= CurrentNextMask
	} else {
		s.data[VersionOffset] &^= CurrentNextMask
	}
	if recomputeCRC {
		s.RecomputeCRC()
	}
}

// SetSectionNumber rewrites section_number of a long section. Values above
// last_section_number are ignored.
func (s *Section) SetSectionNumber(num uint8, recomputeCRC bool) {
	if !s.IsLongSection() || num > s.data[LastSectionNumberOffset] {
		return
	}
	s.data[SectionNumberOffset] = num
	if recomputeCRC {
		s.RecomputeCRC()
	}
}

// SetLastSectionNumber rewrites last_section_number of a long section.
// Values below section_number are ignored.
func (s *Section) SetLastSectionNumber(num uint8, recomputeCRC bool) {
	if !s.IsLongSection() || num < s.data[SectionNumberOffset] {
		return
	}
	s.data[LastSectionNumberOffset] = num
	if recomputeCRC {
		s.RecomputeCRC()
	}
}

// RecomputeCRC rewrites the CRC32 field of a long section.
func (s *Section) RecomputeCRC() {
	if !s.IsLongSection() {
		return
	}
	end := len(s.data) - CRCSize
	binary.BigEndian.PutUint32(s.data[end:], CRC32(s.data[:end]))
}

// Clone returns an independent copy of the section, including its source PID
// and packet indexes.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	c := *s
	c.data = bytes.Clone(s.data)

	return &c
}

// Equal reports whether both sections are valid and byte-identical.
// Provenance metadata is not compared.
func (s *Section) Equal(other *Section) bool {
	return s.IsValid() && other.IsValid() && bytes.Equal(s.data, other.data)
}

// Fingerprint returns the xxHash64 of the section bytes, zero when invalid.
func (s *Section) Fingerprint() uint64 {
	if !s.IsValid() {
		return 0
	}

	return hash.Bytes(s.data)
}

// WriteTo writes the binary section to w.
//
// Returns:
//   - int64: Number of bytes written
//   - error: ErrInvalidSection for an invalid section, or the write error
func (s *Section) WriteTo(w io.Writer) (int64, error) {
	if !s.IsValid() {
		return 0, errs.ErrInvalidSection
	}
	n, err := w.Write(s.data)

	return int64(n), err
}

func (s *Section) String() string {
	switch {
	case s.IsLongSection():
		return fmt.Sprintf("section tid=0x%02X ext=0x%04X v%d %d/%d, %d bytes",
			s.TableID(), s.TableIDExtension(), s.Version(),
			s.SectionNumber(), s.LastSectionNumber(), len(s.data))
	case s.IsShortSection():
		return fmt.Sprintf("short section tid=0x%02X, %d bytes", s.TableID(), len(s.data))
	default:
		return "invalid section"
	}
}

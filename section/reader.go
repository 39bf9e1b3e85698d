package section

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/psitable/errs"
)

// Reader reads consecutive binary sections from a section file.
type Reader struct {
	r      *bufio.Reader
	crc    CRCValidation
	pid    PID
	header [ShortHeaderSize]byte
	offset int64
}

// NewReader creates a Reader over r. Every section gets pid as source PID.
func NewReader(r io.Reader, pid PID, crc CRCValidation) *Reader {
	return &Reader{
		r:   bufio.NewReaderSize(r, MaxPrivateSectionSize),
		crc: crc,
		pid: pid,
	}
}

// Next returns the next section, which may be invalid (for instance with a
// wrong CRC32). It returns io.EOF at a clean end of stream and
// ErrTruncatedSection when the stream ends inside a section.
func (rd *Reader) Next() (*Section, error) {
	n, err := io.ReadFull(rd.r, rd.header[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %d header bytes at offset %d", errs.ErrTruncatedSection, n, rd.offset)
		}

		return nil, err
	}

	length := int(binary.BigEndian.Uint16(rd.header[1:3]) & 0x0FFF)
	data := make([]byte, ShortHeaderSize+length)
	copy(data, rd.header[:])
	if _, err := io.ReadFull(rd.r, data[ShortHeaderSize:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %d bytes expected at offset %d", errs.ErrTruncatedSection, len(data), rd.offset)
		}

		return nil, err
	}
	rd.offset += int64(len(data))

	s := &Section{data: data, sourcePID: rd.pid}
	s.valid = validate(s.data, rd.crc) == nil

	return s, nil
}

// ReadAll reads every section of r until end of stream.
//
// Invalid sections are kept in the result so callers can count them; only
// I/O errors and truncation stop the read. The sections read so far are
// returned along with the error.
func ReadAll(r io.Reader, crc CRCValidation) ([]*Section, error) {
	rd := NewReader(r, PIDNull, crc)

	var sections []*Section
	for {
		s, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return sections, nil
		}
		if err != nil {
			return sections, err
		}
		sections = append(sections, s)
	}
}

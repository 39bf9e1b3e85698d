package table

import (
	"fmt"

	"github.com/arloliu/psitable/compress"
	"github.com/arloliu/psitable/errs"
	"github.com/arloliu/psitable/format"
	"github.com/arloliu/psitable/internal/options"
	"github.com/arloliu/psitable/report"
	"github.com/arloliu/psitable/section"
)

// fileConfig holds the settings shared by the section file writer and reader.
type fileConfig struct {
	reporter report.Reporter
	codec    compress.Codec
	crc      section.CRCValidation
}

func newFileConfig() *fileConfig {
	return &fileConfig{
		reporter: report.Discard(),
		codec:    compress.NewNoOpCodec(),
		crc:      section.CRCCheck,
	}
}

func (c *fileConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.CreateCodec(comp, "section file")
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}

// FileOption configures Write, Save, ReadTables and Load.
type FileOption = options.Option[*fileConfig]

// WithReporter sets the sink for diagnostics. The default discards them.
func WithReporter(r report.Reporter) FileOption {
	return options.New(func(c *fileConfig) error {
		if r == nil {
			return errs.ErrNilReporter
		}
		c.reporter = r

		return nil
	})
}

// WithCompression compresses the whole section file with the given codec.
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) FileOption {
	return options.New(func(c *fileConfig) error {
		return c.setCompression(comp)
	})
}

// WithCRCValidation sets how sections read from a file are checked.
// The default is section.CRCCheck. Writers ignore it.
func WithCRCValidation(crc section.CRCValidation) FileOption {
	return options.New(func(c *fileConfig) error {
		switch crc {
		case section.CRCIgnore, section.CRCCheck, section.CRCCompute:
			c.crc = crc
			return nil
		default:
			return fmt.Errorf("invalid CRC validation mode: %d", crc)
		}
	})
}

func applyFileOptions(opts []FileOption) (*fileConfig, error) {
	cfg := newFileConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

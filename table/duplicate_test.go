package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/psitable/section"
)

func TestTable_Share(t *testing.T) {
	src := completeTable(t, 2)
	dup := src.Share()

	require.True(t, dup.IsValid())
	require.True(t, dup.Equal(src))
	for i := 0; i < src.SectionCount(); i++ {
		require.Same(t, src.SectionAt(i), dup.SectionAt(i))
	}

	t.Run("section edits are visible through both", func(t *testing.T) {
		src.SetVersion(7, true)

		require.Equal(t, uint8(7), dup.SectionAt(0).Version())
		require.Equal(t, uint8(3), dup.Version(), "table header is not shared")
		require.False(t, dup.Equal(src))
	})

	t.Run("slot edits are not", func(t *testing.T) {
		replacement := newSection(t, sectionFields{0x42, 1, 7, 1, 2})
		require.Equal(t, Accepted, src.AddSection(replacement, AddReplace))

		require.Same(t, replacement, src.SectionAt(1))
		require.NotSame(t, replacement, dup.SectionAt(1))
	})
}

func TestTable_Copy(t *testing.T) {
	src := completeTable(t, 2)
	src.SetSourcePID(0x0042)
	for i := 0; i < src.SectionCount(); i++ {
		first := section.PacketCounter(10 + 5*i)
		src.SectionAt(i).SetTSPacketIndexes(first, first+2)
	}

	dup := src.Copy()

	require.True(t, dup.IsValid())
	require.True(t, dup.Equal(src))
	require.Equal(t, section.PID(0x0042), dup.SourcePID())
	for i := 0; i < src.SectionCount(); i++ {
		require.NotSame(t, src.SectionAt(i), dup.SectionAt(i))
		require.True(t, src.SectionAt(i).Equal(dup.SectionAt(i)))
	}

	first, found := dup.FirstTSPacketIndex()
	require.True(t, found)
	require.Equal(t, section.PacketCounter(10), first)

	last, found := dup.LastTSPacketIndex()
	require.True(t, found)
	require.Equal(t, section.PacketCounter(22), last)
	require.Equal(t, section.PacketCounter(20), dup.SectionAt(2).FirstTSPacketIndex())

	src.SetVersion(7, true)
	require.Equal(t, uint8(3), dup.SectionAt(0).Version())
	require.Equal(t, uint8(3), dup.Version())
}

func TestTable_Copy_Incomplete(t *testing.T) {
	sections := sdtSections(t, 2)
	src := New()
	src.AddSection(sections[2], AddStrict)

	dup := src.Copy()
	require.False(t, dup.IsValid())
	require.Equal(t, 3, dup.SectionCount())
	require.Equal(t, 2, dup.MissingCount())
	require.Nil(t, dup.SectionAt(0))
	require.NotSame(t, sections[2], dup.SectionAt(2))

	// the copy completes independently
	require.True(t, dup.AddSections(sections[:2], AddStrict))
	require.True(t, dup.IsValid())
	require.False(t, src.IsValid())
}

func TestTable_Assign(t *testing.T) {
	src := completeTable(t, 1)
	dst := completeTable(t, 3)

	dst.Assign(src)
	require.Equal(t, 2, dst.SectionCount())
	require.Same(t, src.SectionAt(0), dst.SectionAt(0))
	require.True(t, dst.Equal(src))

	dst.Assign(dst)
	require.Equal(t, 2, dst.SectionCount())
}

func TestTable_CopyFrom(t *testing.T) {
	src := completeTable(t, 1)
	dst := New()

	dst.CopyFrom(src)
	require.True(t, dst.Equal(src))
	require.NotSame(t, src.SectionAt(0), dst.SectionAt(0))

	dst.CopyFrom(New())
	require.False(t, dst.IsValid())
	require.Zero(t, dst.SectionCount())
	require.Equal(t, uint8(section.TableIDNone), dst.TableID())
}

func TestTable_Share_GrowRewritesSharedSections(t *testing.T) {
	src := New()
	held := newSection(t, sectionFields{0x42, 1, 3, 0, 1})
	src.AddSection(held, AddStrict)
	dup := src.Share()

	require.Equal(t, Accepted, src.AddSection(newSection(t, sectionFields{0x42, 1, 3, 3, 3}), AddGrow))
	require.Equal(t, 4, src.SectionCount())
	require.Equal(t, 2, dup.SectionCount())

	// the shared instance was rewritten by the growing table
	require.Equal(t, uint8(3), dup.SectionAt(0).LastSectionNumber())
}

package reg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// countMem counts accesses so tests can hold registers to their
// one-access-per-operation guarantee.
type countMem struct {
	val    uint8
	loads  int
	stores int
}

func (m *countMem) Load() uint8 {
	m.loads++
	return m.val
}

func (m *countMem) Store(val uint8) {
	m.stores++
	m.val = val
}

func TestModifyField(t *testing.T) {
	assert := assert.New(t)

	_, _, color := statusDescriptors()

	mem := &Buffer[uint8]{}
	status := NewRW[uint8](mem)

	status.Modify(color.MustField(2)) // Blue
	assert.Equal(uint8(8), status.Read())
	assert.Equal(uint8(2), status.GetField(color).Val())
}

func TestModifyCombined(t *testing.T) {
	assert := assert.New(t)

	on, dead, color := statusDescriptors()

	mem := &Buffer[uint8]{}
	status := NewRW[uint8](mem)

	status.Modify(Combine[uint8](dead.MustField(1), color.MustField(2), on.MustField(0)))
	assert.Equal(uint8(10), status.Read())
	assert.Equal(uint8(1), status.GetField(dead).Val())
	assert.Equal(uint8(2), status.GetField(color).Val())
	assert.Equal(uint8(0), status.GetField(on).Val())
}

func TestModifyPreserves(t *testing.T) {
	assert := assert.New(t)

	_, _, color := statusDescriptors()

	table := []uint8{0x00, 0xff, 0xa5, 0x03, 0xe0}

	for _, pre := range table {
		status := NewRW[uint8](&Buffer[uint8]{}, pre)

		blue := color.MustField(2)
		status.Modify(blue)
		post := status.Read()

		// Bits outside the mask are untouched; bits inside match exactly.
		assert.Equal(pre&^blue.Mask(), post&^blue.Mask())
		assert.Equal(blue.InPosition(), post&blue.Mask())
	}
}

func TestWriteRead(t *testing.T) {
	assert := assert.New(t)

	status := NewRW[uint8](&Buffer[uint8]{})

	status.Write(0xa5)
	assert.Equal(uint8(0xa5), status.Read())
}

func TestSeedInitial(t *testing.T) {
	assert := assert.New(t)

	mem := &Buffer[uint8]{}
	mem.Store(1)

	// Seeded construction overwrites whatever the location held.
	NewRW[uint8](mem, 0)
	assert.Equal(uint8(0), mem.Load())

	mem.Store(1)
	NewWO[uint8](mem, 6)
	assert.Equal(uint8(6), mem.Load())

	// Unseeded construction performs no access at all.
	count := &countMem{val: 0xff}
	NewRW[uint8](count)
	assert.Equal(0, count.loads)
	assert.Equal(0, count.stores)
}

func TestWriteOnlyModify(t *testing.T) {
	assert := assert.New(t)

	_, dead, color := statusDescriptors()

	mem := &Buffer[uint8]{}
	mem.Store(0xff)

	wo := NewWO[uint8](mem)
	wo.Modify(Combine[uint8](dead.MustField(1), color.MustField(2)))

	// No readback exists: bits outside the combined mask become zero.
	assert.Equal(uint8(10), mem.Load())
}

func TestIsSet(t *testing.T) {
	assert := assert.New(t)

	on, dead, _ := statusDescriptors()

	status := NewRW[uint8](&Buffer[uint8]{}, 0x01)
	assert.True(status.IsSet(on))
	assert.False(status.IsSet(dead))
}

func TestMatches(t *testing.T) {
	assert := assert.New(t)

	on, dead, color := statusDescriptors()

	status := NewRW[uint8](&Buffer[uint8]{}, 10) // Dead=1, Color=Blue

	blue := color.MustField(2)
	assert.True(status.MatchesAll(blue))
	assert.True(status.MatchesAll(Combine[uint8](dead.MustField(1), blue)))
	assert.False(status.MatchesAll(color.MustField(3)))

	assert.True(status.MatchesAny(Combine[uint8](on.Set(), dead.Set())))
	assert.False(status.MatchesAny(on.Set()))
}

func TestSingleAccess(t *testing.T) {
	assert := assert.New(t)

	on, _, color := statusDescriptors()

	mem := &countMem{val: 10}
	status := NewRW[uint8](mem)

	table := [](struct {
		name   string
		op     func()
		loads  int
		stores int
	}){
		{"read", func() { status.Read() }, 1, 0},
		{"get_field", func() { status.GetField(color) }, 1, 0},
		{"is_set", func() { status.IsSet(on) }, 1, 0},
		{"matches_any", func() { status.MatchesAny(color.Set()) }, 1, 0},
		{"matches_all", func() { status.MatchesAll(color.Set()) }, 1, 0},
		{"extract", func() { status.Extract() }, 1, 0},
		{"modify", func() { status.Modify(on.Set()) }, 1, 1},
		{"write", func() { status.Write(0) }, 0, 1},
	}

	for _, entry := range table {
		mem.loads = 0
		mem.stores = 0
		entry.op()
		assert.Equal(entry.loads, mem.loads, entry.name)
		assert.Equal(entry.stores, mem.stores, entry.name)
	}
}

func TestReadOnly(t *testing.T) {
	assert := assert.New(t)

	_, _, color := statusDescriptors()

	mem := &Buffer[uint8]{}
	mem.Store(8)

	ro := NewRO[uint8](mem)
	assert.Equal(uint8(8), ro.Read())
	assert.Equal(uint8(2), ro.GetField(color).Val())
	assert.True(ro.MatchesAll(color.MustField(2)))
}

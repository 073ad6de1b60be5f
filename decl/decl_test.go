package decl

import (
	"errors"
	"testing"

	"github.com/ezrec/mmreg/reg"
	"github.com/stretchr/testify/assert"
)

func statusRegister() Register {
	return Register{
		Name:  "STATUS",
		Width: 8,
		Mode:  reg.MODE_RW,
		Fields: []Field{
			{Name: "On", Width: 1, Offset: 0},
			{Name: "Dead", Width: 1, Offset: 1},
			{Name: "Color", Width: 3, Offset: 2, Values: []Enum{
				{Name: "Red", Literal: 1},
				{Name: "Blue", Literal: 2},
				{Name: "Green", Literal: 3},
				{Name: "Yellow", Literal: 4},
			}},
		},
	}
}

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	m, err := Compile[uint8](statusRegister())
	assert.NoError(err)
	assert.Equal("STATUS", m.Name)
	assert.Equal(reg.MODE_RW, m.Mode)

	color, ok := m.Field("Color")
	assert.True(ok)
	assert.Equal(uint8(0x1c), color.Mask())
	assert.Equal(uint(2), color.Offset())

	blue, ok := m.Value("Color", "Blue")
	assert.True(ok)
	assert.Equal(uint8(2), blue.Val())
	assert.Equal(uint8(8), blue.InPosition())

	_, ok = m.Field("Missing")
	assert.False(ok)
	_, ok = m.Value("On", "Missing")
	assert.False(ok)
}

func TestCompileAgainstRegister(t *testing.T) {
	assert := assert.New(t)

	m := MustCompile[uint8](statusRegister())

	dead, _ := m.Field("Dead")
	blue, _ := m.Value("Color", "Blue")
	on, _ := m.Field("On")

	status := reg.NewRW[uint8](&reg.Buffer[uint8]{})
	status.Modify(reg.Combine[uint8](dead.Set(), blue, on.Clear()))
	assert.Equal(uint8(10), status.Read())
}

func TestCompileErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		mangle   func(r *Register)
		sentinel error
	}){
		{"width_mismatch", func(r *Register) { r.Width = 16 }, ErrWidthMismatch},
		{"dup_field", func(r *Register) {
			r.Fields = append(r.Fields, Field{Name: "On", Width: 1, Offset: 5})
		}, ErrFieldDuplicate},
		{"dup_value", func(r *Register) {
			r.Fields[2].Values = append(r.Fields[2].Values, Enum{Name: "Blue", Literal: 5})
		}, ErrValueDuplicate},
		{"bad_layout", func(r *Register) { r.Fields[2].Offset = 6 }, reg.ErrFieldExtent},
		{"zero_width", func(r *Register) { r.Fields[0].Width = 0 }, reg.ErrWidthZero},
	}

	for _, entry := range table {
		r := statusRegister()
		entry.mangle(&r)
		_, err := Compile[uint8](r)
		assert.ErrorIs(err, entry.sentinel, entry.name)
	}

	r := statusRegister()
	r.Fields[2].Values[0].Literal = 8 // Red too wide for 3 bits
	_, err := Compile[uint8](r)
	assert.Error(err)
	assert.True(errors.Is(err, ErrValueRange("Red")))

	assert.Panics(func() {
		bad := statusRegister()
		bad.Width = 0
		MustCompile[uint8](bad)
	})
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	m := MustCompile[uint8](statusRegister())

	defines := map[string]string{}
	for name, value := range m.Defines() {
		defines[name] = value
	}

	assert.Equal("0x1c", defines["STATUS_Color_MASK"])
	assert.Equal("2", defines["STATUS_Color_OFFSET"])
	assert.Equal("0x2", defines["STATUS_Color_Blue"])
	assert.Equal("0x1", defines["STATUS_On_MASK"])
	assert.Equal("0", defines["STATUS_On_OFFSET"])
}

func TestFieldsIterator(t *testing.T) {
	assert := assert.New(t)

	m := MustCompile[uint8](statusRegister())

	names := map[string]uint{}
	for name, d := range m.Fields() {
		names[name] = d.Width()
	}

	assert.Equal(map[string]uint{"On": 1, "Dead": 1, "Color": 3}, names)
}

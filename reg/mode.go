package reg

// Mode is a register access mode, fixed for a register's lifetime.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_RO = Mode(0) // ro
	MODE_WO = Mode(1) // wo
	MODE_RW = Mode(2) // rw
)

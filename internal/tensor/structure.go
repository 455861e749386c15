package tensor

// Type is the structural type of a matrix, decided by its size alone.
type Type int

// Structural types.
const (
	Operator Type = iota
	Ket
	Bra
)

// TypeOf classifies a rows x cols matrix. A single column with more than
// one row is a Ket, a single row with more than one column is a Bra, and
// everything else (1x1 and rectangular included) is an Operator.
func TypeOf(rows, cols int) Type {
	switch {
	case cols == 1 && rows > 1:
		return Ket
	case rows == 1 && cols > 1:
		return Bra
	default:
		return Operator
	}
}

// String returns a human-readable type name.
func (t Type) String() string {
	switch t {
	case Operator:
		return "oper"
	case Ket:
		return "ket"
	case Bra:
		return "bra"
	default:
		return "unknown"
	}
}

package named

import (
	"fmt"
	"slices"
	"strings"
)

// spinModes are the mode names TraceOutAllButSpins keeps.
var spinModes = []string{"Alice", "Bob", "Charlie", "alice", "bob", "charlie"}

// Ket2DM returns the density matrix of a ket (|v><v|) or bra (v^dagger v).
// The result is a State named by the vector's modes.
func Ket2DM(t *Tensor) (*Tensor, error) {
	raw, names, err := t.outer("ket2dm")
	if err != nil {
		return nil, err
	}
	return t.derive(raw, names, State)
}

// Fidelity returns the fidelity between a and b. Each operand must carry the
// same set of modes on both sides, and both operands the same set; b is
// permuted into a's mode order first.
func Fidelity(a, b *Tensor) (float64, error) {
	if !sameSet(a.names[0], a.names[1]) || !sameSet(b.names[0], b.names[1]) {
		return 0, fmt.Errorf("fidelity: %w: row and column modes differ", ErrTypeMismatch)
	}
	if !sameSet(a.names[0], b.names[0]) {
		return 0, fmt.Errorf("fidelity: %w: modes %v and %v differ", ErrTypeMismatch, a.names[0], b.names[0])
	}
	bp, err := b.PermuteAxes(a.names[0], a.names[1])
	if err != nil {
		return 0, fmt.Errorf("fidelity: %w", err)
	}
	f, err := a.backend.Fidelity(a.raw, bp.raw)
	if err != nil {
		return 0, fmt.Errorf("fidelity: %w", err)
	}
	return f, nil
}

// TraceOutLossModes traces out every mode whose name contains "loss".
// Without such modes t is returned as is.
func TraceOutLossModes(t *Tensor) (*Tensor, error) {
	var loss []string
	for _, name := range t.names[0] {
		if strings.Contains(name, "loss") {
			loss = append(loss, name)
		}
	}
	if len(loss) == 0 {
		return t, nil
	}
	return t.Ptrace(loss, false)
}

// TraceOutAllButSpins keeps only the spin modes (Alice, Bob, Charlie in
// either capitalization of the first letter).
func TraceOutAllButSpins(t *Tensor) (*Tensor, error) {
	var spins []string
	for _, name := range t.names[0] {
		if slices.Contains(spinModes, name) {
			spins = append(spins, name)
		}
	}
	return t.Ptrace(spins, true)
}

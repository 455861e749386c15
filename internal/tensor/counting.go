package tensor

import "sync"

// Verify that CountingBackend implements Backend.
var _ Backend = (*CountingBackend)(nil)

// CountingBackend wraps another Backend and records how many times each
// primitive was invoked. It is used by tests to check which code path the
// engine took (for example native square permutation versus coordinate remap).
type CountingBackend struct {
	Backend

	mu    sync.Mutex
	calls map[string]int
}

// NewCountingBackend wraps inner.
func NewCountingBackend(inner Backend) *CountingBackend {
	return &CountingBackend{Backend: inner, calls: make(map[string]int)}
}

// Calls returns the number of recorded invocations of the named primitive.
func (c *CountingBackend) Calls(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[op]
}

// Reset clears all counters.
func (c *CountingBackend) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = make(map[string]int)
}

func (c *CountingBackend) record(op string) {
	c.mu.Lock()
	c.calls[op]++
	c.mu.Unlock()
}

// Name returns the wrapped backend name with a suffix.
func (c *CountingBackend) Name() string {
	return c.Backend.Name() + "+counting"
}

// Kron records and delegates.
func (c *CountingBackend) Kron(ops ...*RawTensor) (*RawTensor, error) {
	c.record("Kron")
	return c.Backend.Kron(ops...)
}

// MatMul records and delegates.
func (c *CountingBackend) MatMul(a, b *RawTensor) (*RawTensor, error) {
	c.record("MatMul")
	return c.Backend.MatMul(a, b)
}

// Add records and delegates.
func (c *CountingBackend) Add(a, b *RawTensor) (*RawTensor, error) {
	c.record("Add")
	return c.Backend.Add(a, b)
}

// PermuteSquare records and delegates.
func (c *CountingBackend) PermuteSquare(a *RawTensor, order []int) (*RawTensor, error) {
	c.record("PermuteSquare")
	return c.Backend.PermuteSquare(a, order)
}

// CoordinateRemap records and delegates.
func (c *CountingBackend) CoordinateRemap(a *RawTensor, rowOrder, colOrder []int) (*RawTensor, error) {
	c.record("CoordinateRemap")
	return c.Backend.CoordinateRemap(a, rowOrder, colOrder)
}

// PartialTrace records and delegates.
func (c *CountingBackend) PartialTrace(a *RawTensor, keep []int) (*RawTensor, error) {
	c.record("PartialTrace")
	return c.Backend.PartialTrace(a, keep)
}

// Expm records and delegates.
func (c *CountingBackend) Expm(a *RawTensor) (*RawTensor, error) {
	c.record("Expm")
	return c.Backend.Expm(a)
}

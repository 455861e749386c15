package tensor

// Backend defines the numeric primitives the named-mode engine relies on.
// Backends own the storage representation and every numeric kernel; the
// engine above only decides which primitive to call and on which axes.
//
// Implementations must not mutate their inputs. Errors wrap the sentinels
// in errors.go.
//
// Implementations:
//   - internal/backend/cpu: pure Go on top of gonum
//   - CountingBackend: decorator recording calls (tests, diagnostics)
type Backend interface {
	// Construction
	Identity(dim int) (*RawTensor, error)          // dim x dim identity, dims ([dim],[dim])
	Basis(dim, index int) (*RawTensor, error)      // basis ket |index>, dims ([dim],[1])
	Kron(ops ...*RawTensor) (*RawTensor, error)    // Kronecker product, concatenating dims
	MatMul(a, b *RawTensor) (*RawTensor, error)    // a @ b, dims ([a.rows...],[b.cols...])
	Add(a, b *RawTensor) (*RawTensor, error)       // element-wise sum, dims must match
	Scale(a *RawTensor, c complex128) *RawTensor   // c * a
	Neg(a *RawTensor) *RawTensor                   // -a
	Adjoint(a *RawTensor) *RawTensor               // conjugate transpose, dims swapped
	Transpose(a *RawTensor) *RawTensor             // transpose, dims swapped
	Power(a *RawTensor, n int) (*RawTensor, error) // a^n for square a, n >= 0
	Expm(a *RawTensor) (*RawTensor, error)         // matrix exponential of square a

	// Axis structure
	PermuteSquare(a *RawTensor, order []int) (*RawTensor, error)                // same order on both sides, uniform dims only
	CoordinateRemap(a *RawTensor, rowOrder, colOrder []int) (*RawTensor, error) // independent order per side
	PartialTrace(a *RawTensor, keep []int) (*RawTensor, error)                  // trace out every axis not in keep

	// Scalars and predicates
	Norm(a *RawTensor) (float64, error)         // L2 for kets/bras, trace norm for operators
	Fidelity(a, b *RawTensor) (float64, error)  // Uhlmann fidelity
	Equal(a, b *RawTensor) bool                 // same dims, elements equal within tolerance
	IsHermitian(a *RawTensor) bool              // square and a == a^dagger within tolerance

	// Metadata
	Name() string
}

// Package named implements tensors whose axes are addressed by mode name.
//
// A Tensor wraps a backend RawTensor together with two ordered name lists,
// one per matrix side, and a Kind tag. Binary operations align operands by
// name: modes missing from one operand are padded with identity or basis
// fillers whose dimension is taken from the other operand, both operands are
// permuted into a common order, and only then is the backend primitive
// called.
//
// Row names (side 0) label the bra side and column names (side 1) the ket
// side. A ket of mode "A" with dimension d has dims ([d],[1]) and carries
// "A" on both sides.
//
// Every operation returns a new Tensor. Rename is the single exception: it
// edits the receiver's names in place.
package named

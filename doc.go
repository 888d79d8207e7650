// Package matrix is a dense, row-major float64 matrix engine for
// in-memory numeric pipelines — the storage layout, shape contracts and
// kernels (element-wise ops, matrix product, transpose) that downstream
// consumers such as neural-network layers build on.
//
// The single exported entity is Dense: an owned, mutable rectangular
// buffer with row and column counts, stored flat in row-major order
// (element (i,j) lives at offset i*cols+j). Every operation mutates the
// receiver in place and hands it back, so calls chain naturally:
//
//	m, _ := matrix.NewDense(2, 3)
//	m.Randomize().Scale(0.5)
//	if _, err := m.Add(bias); err != nil { ... }
//
// Guarantees:
//
//   - Safety: public indexers and kernels return sentinel errors
//     (matched via errors.Is), never panic on user input.
//   - Atomicity: fallible operations validate shapes before touching any
//     state — on error the receiver is exactly as it was.
//   - Determinism: fixed loop orders everywhere; the Mul kernel
//     accumulates each cell over strictly increasing k, so results are
//     bit-reproducible across runs and loop-order tweaks.
//   - Ownership: buffers are never aliased; Clone, Assign and SetData
//     all copy.
//
// The package is single-threaded by contract: no internal locking, and
// callers sharing one Dense across goroutines must serialize access.
package matrix

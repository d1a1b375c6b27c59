package wcnf

// PackedVecs is a dense, append-only two-level container: a flat payload
// plus an offset index, giving O(1) random access to the i-th sequence and
// cache-friendly iteration over all of them. Sequences are never mutated
// in place after Add; a pass that needs to prune or rewrite sequences
// builds a fresh PackedVecs and replaces the old one wholesale.
type PackedVecs[T any] struct {
	payload []T
	offsets []int // offsets[i] is the start of sequence i; len(offsets) == Len()+1
}

// NewPackedVecs returns an empty PackedVecs with capacity hints for the
// expected number of sequences and the expected total element count.
func NewPackedVecs[T any](nSeqs, nElems int) *PackedVecs[T] {
	pv := &PackedVecs[T]{
		payload: make([]T, 0, nElems),
		offsets: make([]int, 1, nSeqs+1),
	}
	pv.offsets[0] = 0
	return pv
}

// Add appends a new sequence and returns its index.
func (pv *PackedVecs[T]) Add(seq []T) int {
	pv.payload = append(pv.payload, seq...)
	pv.offsets = append(pv.offsets, len(pv.payload))
	return pv.Len() - 1
}

// Len returns the number of sequences stored.
func (pv *PackedVecs[T]) Len() int {
	return len(pv.offsets) - 1
}

// TotalLen returns the total number of elements across all sequences.
func (pv *PackedVecs[T]) TotalLen() int {
	return len(pv.payload)
}

// At returns a read-only view of the i-th sequence. The returned slice
// aliases the backing payload; callers must not retain it across a pass
// that rebuilds pv.
func (pv *PackedVecs[T]) At(i int) []T {
	return pv.payload[pv.offsets[i]:pv.offsets[i+1]]
}

// Each calls fn for every stored sequence in order, stopping early if fn
// returns false.
func (pv *PackedVecs[T]) Each(fn func(i int, seq []T) bool) {
	for i := 0; i < pv.Len(); i++ {
		if !fn(i, pv.At(i)) {
			return
		}
	}
}

// Filtered rebuilds pv keeping only the sequences for which keep returns
// true, in order. It returns the new PackedVecs and the list of surviving
// original indices (newIdx[j] is the original index of the j-th kept
// sequence).
func (pv *PackedVecs[T]) Filtered(keep func(i int, seq []T) bool) (*PackedVecs[T], []int) {
	out := NewPackedVecs[T](pv.Len(), pv.TotalLen())
	kept := make([]int, 0, pv.Len())
	for i := 0; i < pv.Len(); i++ {
		seq := pv.At(i)
		if keep(i, seq) {
			out.Add(seq)
			kept = append(kept, i)
		}
	}
	return out, kept
}

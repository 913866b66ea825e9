package ecscore

// sparsePage is one fixed-size chunk of a SparseSet's sparse table (spec
// §3, GLOSSARY "Page"). Pages are allocated lazily — no page exists until
// some entity whose index lies in it is inserted — so memory is bounded
// by the number of distinct pages touched, not by the largest index ever
// seen.
type sparsePage struct {
	cells []int32
}

func newSparsePage(size int) *sparsePage {
	p := &sparsePage{cells: make([]int32, size)}
	for i := range p.cells {
		p.cells[i] = tombstone
	}
	return p
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// pagedSparse owns the growable sequence of lazily-allocated pages and the
// address arithmetic that splits an entity index into (page, offset).
type pagedSparse struct {
	pageSize  int
	pageShift uint
	pageMask  int
	pages     []*sparsePage
}

func newPagedSparse(pageSize int) *pagedSparse {
	shift := 0
	for (1 << uint(shift)) < pageSize {
		shift++
	}
	return &pagedSparse{
		pageSize:  pageSize,
		pageShift: uint(shift),
		pageMask:  pageSize - 1,
	}
}

func (ps *pagedSparse) pageIndex(index uint64) int {
	return int(index >> ps.pageShift)
}

func (ps *pagedSparse) pageOffset(index uint64) int {
	return int(index) & ps.pageMask
}

// get returns the dense index stored for entity index idx, or tombstone
// if no page covers it yet or the cell was never written.
func (ps *pagedSparse) get(idx uint64) int32 {
	pi := ps.pageIndex(idx)
	if pi >= len(ps.pages) || ps.pages[pi] == nil {
		return tombstone
	}
	return ps.pages[pi].cells[ps.pageOffset(idx)]
}

// set writes a dense index into the sparse cell for idx, allocating the
// covering page on first touch.
func (ps *pagedSparse) set(idx uint64, denseIdx int32) {
	pi := ps.pageIndex(idx)
	if pi >= len(ps.pages) {
		grown := make([]*sparsePage, pi+1)
		copy(grown, ps.pages)
		ps.pages = grown
	}
	if ps.pages[pi] == nil {
		ps.pages[pi] = newSparsePage(ps.pageSize)
	}
	ps.pages[pi].cells[ps.pageOffset(idx)] = denseIdx
}

// unset writes the tombstone sentinel into the sparse cell for idx.
func (ps *pagedSparse) unset(idx uint64) {
	ps.set(idx, tombstone)
}

// clear drops every allocated page.
func (ps *pagedSparse) clear() {
	ps.pages = nil
}

// pageCount reports how many pages are currently allocated (non-nil),
// useful for tests and diagnostics that want to confirm laziness.
func (ps *pagedSparse) pageCount() int {
	n := 0
	for _, p := range ps.pages {
		if p != nil {
			n++
		}
	}
	return n
}

package api

import (
	"sync"

	"github.com/zeebo/errs/v2"

	"github.com/sarchlab/mcinst/instr"
)

// An InstRef packs a slot index (plus one, so that zero stays invalid) in its
// low 32 bits and the slot generation in its high 32 bits. Releasing a slot
// bumps its generation, which turns every outstanding ref to it stale.

func makeInstRef(idx, gen uint32) InstRef {
	return InstRef(uint64(gen)<<32 | (uint64(idx) + 1))
}

func (r InstRef) split() (idx, gen uint32, ok bool) {
	low := uint32(r)
	if low == 0 {
		return 0, 0, false
	}

	return low - 1, uint32(r >> 32), true
}

type slot struct {
	inst *instr.Inst
	gen  uint32
	live bool

	// root is the index of the owning slot; a root points at itself.
	root uint32

	// Only set on roots.
	borrows []uint32
	byInst  map[*instr.Inst]InstRef
}

// handleTable owns the mapping from refs to instructions.
type handleTable struct {
	lock  sync.RWMutex
	slots []slot
	free  []uint32
}

func (t *handleTable) alloc(inst *instr.Inst) uint32 {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot{gen: 1})
	}

	s := &t.slots[idx]
	s.inst = inst
	s.live = true
	s.root = idx

	return idx
}

func (t *handleTable) release(idx uint32) {
	s := &t.slots[idx]
	s.inst = nil
	s.live = false
	s.borrows = nil
	s.byInst = nil

	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}

	t.free = append(t.free, idx)
}

// lookup must be called with the lock held.
func (t *handleTable) lookup(ref InstRef) (uint32, error) {
	idx, gen, ok := ref.split()
	if !ok {
		return 0, errs.Errorf("%w: null handle", ErrInvalidHandle)
	}

	if idx >= uint32(len(t.slots)) {
		return 0, errs.Errorf("%w: %#x was never issued", ErrInvalidHandle, uint64(ref))
	}

	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return 0, errs.Errorf("%w: %#x is stale", ErrInvalidHandle, uint64(ref))
	}

	return idx, nil
}

// acquire registers inst as a new root.
func (t *handleTable) acquire(inst *instr.Inst) InstRef {
	t.lock.Lock()
	defer t.lock.Unlock()

	idx := t.alloc(inst)

	return makeInstRef(idx, t.slots[idx].gen)
}

// borrow returns a ref to inst, a nested instruction reachable from parent.
// The ref belongs to parent's root and is reused on later calls.
func (t *handleTable) borrow(parent InstRef, inst *instr.Inst) (InstRef, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	parentIdx, err := t.lookup(parent)
	if err != nil {
		return 0, err
	}

	rootIdx := t.slots[parentIdx].root
	if ref, ok := t.slots[rootIdx].byInst[inst]; ok {
		return ref, nil
	}

	idx := t.alloc(inst)
	t.slots[idx].root = rootIdx
	ref := makeInstRef(idx, t.slots[idx].gen)

	root := &t.slots[rootIdx]
	if root.byInst == nil {
		root.byInst = make(map[*instr.Inst]InstRef)
	}
	root.byInst[inst] = ref
	root.borrows = append(root.borrows, idx)

	return ref, nil
}

func (t *handleTable) get(ref InstRef) (*instr.Inst, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	idx, err := t.lookup(ref)
	if err != nil {
		return nil, err
	}

	return t.slots[idx].inst, nil
}

// dispose releases a root and every ref borrowed from it.
func (t *handleTable) dispose(ref InstRef) (released int, err error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	idx, err := t.lookup(ref)
	if err != nil {
		return 0, err
	}

	if t.slots[idx].root != idx {
		return 0, errs.Errorf("%w: %#x is borrowed and cannot be disposed",
			ErrInvalidHandle, uint64(ref))
	}

	borrows := t.slots[idx].borrows
	for _, b := range borrows {
		t.release(b)
	}
	t.release(idx)

	return len(borrows) + 1, nil
}

// numLive counts slots currently in use.
func (t *handleTable) numLive() int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return len(t.slots) - len(t.free)
}

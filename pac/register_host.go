//go:build !tinygo && !baremetal

package pac

import "golang.org/x/exp/constraints"

// Host shim: registers are plain memory with the method set of
// runtime/volatile, plus a write counter and a read hook for tests.

type register[T constraints.Unsigned] struct {
	Reg    T
	writes int
	onRead func()
}

type (
	Register8  = register[uint8]
	Register16 = register[uint16]
)

func (r *register[T]) Get() T {
	if r.onRead != nil {
		r.onRead()
	}
	return r.Reg
}

func (r *register[T]) Set(value T) {
	r.Reg = value
	r.writes++
}

func (r *register[T]) SetBits(value T)      { r.Set(r.Get() | value) }
func (r *register[T]) ClearBits(value T)    { r.Set(r.Get() &^ value) }
func (r *register[T]) HasBits(value T) bool { return r.Get()&value > 0 }

func (r *register[T]) ReplaceBits(value, mask T, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}

// Writes reports how many times the register has been written since the last Reset.
func (r *register[T]) Writes() int { return r.writes }

// OnRead installs fn to run before every Get. It lets tests model hardware
// that changes state between two accesses. Pass nil to remove it.
func (r *register[T]) OnRead(fn func()) { r.onRead = fn }

package serial

import "tinygo.org/x/drivers"

// Port joins a Tx and Rx into a drivers.UART so device drivers written
// against that interface can run over eUSCI_A1.
type Port struct {
	tx *Tx
	rx *Rx
}

var _ drivers.UART = (*Port)(nil)

func NewPort(tx *Tx, rx *Rx) *Port {
	return &Port{tx: tx, rx: rx}
}

// Write sends every byte of p, spinning while the transmit buffer is full.
func (p *Port) Write(b []byte) (int, error) {
	for _, c := range b {
		for p.tx.Write(c) != nil {
		}
	}
	return len(b), nil
}

// Read copies the bytes already received, up to len(b). It does not wait; it
// returns 0, nil when nothing is pending.
func (p *Port) Read(b []byte) (int, error) {
	n := 0
	for n < len(b) {
		c, err := p.rx.Read()
		if err != nil {
			break
		}
		b[n] = c
		n++
	}
	return n, nil
}

// Buffered returns the number of received bytes waiting. The hardware holds
// at most one.
func (p *Port) Buffered() int {
	if p.rx.Ready() {
		return 1
	}
	return 0
}

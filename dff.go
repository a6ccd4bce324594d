package bitsim

// A DFF is a D-type flip-flop: a single retained bit with a clock-driven
// update rule. When clk is Hi the stored bit takes the value of d; when
// clk is Lo the cell holds its previous value regardless of d.
//
// The complement output of the underlying latch is deliberately not
// exposed: the cell's public contract is the stored bit only.
type DFF struct {
	latch SRLatch
}

// NewDFF returns a flip-flop storing initial. Real hardware powers up in
// an indeterminate state, so initial is an explicit choice, typically Lo.
func NewDFF(initial Bit) (*DFF, error) {
	if err := checkBits("dff", initial); err != nil {
		return nil, err
	}
	return &DFF{latch: SRLatch{q: initial, qb: not(initial)}}, nil
}

// Update drives the cell with data bit d and clock clk and returns the
// new stored bit. The set/reset drive is
//
//	s = AND(d, clk)
//	r = AND(NOT(d), clk)
//
// and the underlying latch resolves from its retained pair. Seeding with
// the retained pair is what makes clk = Lo a true hold rather than a
// reset to a default.
func (d *DFF) Update(data, clk Bit) (Bit, error) {
	if err := checkBits("dff update", data, clk); err != nil {
		return Lo, err
	}
	s := and(data, clk)
	r := and(not(data), clk)
	q, _, err := d.latch.Resolve(s, r)
	if err != nil {
		return Lo, err
	}
	return q, nil
}

// Q returns the stored bit without clocking the cell.
func (d *DFF) Q() Bit { return d.latch.Q() }

package bitsim

import (
	"github.com/pkg/errors"
)

// DefaultSeed is the power-on value of the latch feedback wire (qb).
// A real latch powers up in a physically indeterminate state; Lo is an
// assumption, not a guarantee. Callers that care should seed explicitly.
const DefaultSeed = Lo

// maxResolveSteps caps the fixed-point iteration. The NAND latch
// equations over two-value logic settle within three iterations from any
// seed; the cap only exists to turn a defect into an error instead of a
// hang.
const maxResolveSteps = 4

// ResolveSR computes a mutually consistent (q, qb) pair for the SR-latch
// equations
//
//	q  = NAND(NOT(s), qb)
//	qb = NAND(NOT(r), q)
//
// by fixed-point iteration, seeding the feedback wire qb with seed. On
// success the returned pair is idempotent: resolving again with qb as the
// new seed yields the identical pair.
//
// For the forbidden input combination s = r = Hi the equations still
// settle, on q = qb = Hi; callers must not rely on that result.
func ResolveSR(s, r, seed Bit) (q, qb Bit, err error) {
	if err := checkBits("resolve", s, r, seed); err != nil {
		return Lo, Lo, err
	}
	return resolve(s, r, seed)
}

// resolve iterates the latch equations on pre-validated inputs until the
// (q, qb) pair repeats.
func resolve(s, r, seed Bit) (Bit, Bit, error) {
	ns, nr := not(s), not(r)
	var q Bit
	qb := seed
	for i := 0; i < maxResolveSteps; i++ {
		nq := nand(ns, qb)
		nqb := nand(nr, nq)
		if i > 0 && nq == q && nqb == qb {
			return q, qb, nil
		}
		q, qb = nq, nqb
	}
	return Lo, Lo, errors.Wrapf(ErrDivergentFeedback, "resolve: s=%d, r=%d, seed=%d", s, r, seed)
}

// An SRLatch is a set-reset latch with memory across calls: it retains
// its last resolved (q, qb) pair and seeds the next resolution with the
// retained qb, so driving it with s = r = Lo holds the previous state.
//
// The zero value is usable and seeds the first resolution with qb = Lo.
type SRLatch struct {
	q  Bit
	qb Bit
}

// NewSRLatch returns a latch whose feedback wire powers up at seed. The
// retained pair starts out self-consistent as (NOT(seed), seed).
func NewSRLatch(seed Bit) (*SRLatch, error) {
	if err := checkBits("latch", seed); err != nil {
		return nil, err
	}
	return &SRLatch{q: not(seed), qb: seed}, nil
}

// Resolve resolves the latch equations for (s, r), seeded with the
// retained qb. On success the new pair replaces the retained one; on
// error the retained pair is left untouched.
func (l *SRLatch) Resolve(s, r Bit) (q, qb Bit, err error) {
	if err := checkBits("latch resolve", s, r); err != nil {
		return Lo, Lo, err
	}
	q, qb, err = resolve(s, r, l.qb)
	if err != nil {
		return Lo, Lo, err
	}
	l.q, l.qb = q, qb
	return q, qb, nil
}

// Q returns the retained latch output.
func (l *SRLatch) Q() Bit { return l.q }

// QBar returns the retained complement output.
func (l *SRLatch) QBar() Bit { return l.qb }

/*
Package bitsim is a minimal gate-level digital-logic evaluation engine.

It provides a small library of combinational gates built on NAND as the
only primitive, an SR-latch resolver that computes a consistent fixed
point for the latch's mutually-recursive output equations, and a clocked
D flip-flop built on top of that resolver.

The latch equations

	q  = NAND(NOT(s), qb)
	qb = NAND(NOT(r), q)

each depend on the other's output, so a single evaluation pass is
ill-defined. ResolveSR makes the feedback explicit: it iterates the
equations from a seed value of the qb wire until the pair stops
changing, and fails with ErrDivergentFeedback if it ever does not
(which cannot happen for valid two-value inputs).

All evaluation is synchronous and performs no I/O. SRLatch and DFF
instances carry private state and are not safe for concurrent use;
distinct instances share nothing.
*/
package bitsim

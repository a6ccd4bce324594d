package bitsim

// Raw gate cores operating on pre-validated bits. nand is the only
// primitive; everything below it is a NAND composition, defined strictly
// in dependency order.

func nand(a, b Bit) Bit {
	if a == Hi && b == Hi {
		return Lo
	}
	return Hi
}

func not(a Bit) Bit { return nand(a, a) }

func and(a, b Bit) Bit { return not(nand(a, b)) }

func or(a, b Bit) Bit { return nand(not(a), not(b)) }

func nor(a, b Bit) Bit { return not(or(a, b)) }

func xor(a, b Bit) Bit {
	n := nand(a, b)
	return nand(nand(a, n), nand(b, n))
}

func xnor(a, b Bit) Bit { return not(xor(a, b)) }

// Nand returns NOT(a AND b), computed directly. It is the base case of
// the gate library: every other gate is derived from it.
//
//	Function: out = !(a && b)
func Nand(a, b Bit) (Bit, error) {
	if err := checkBits("nand", a, b); err != nil {
		return Lo, err
	}
	return nand(a, b), nil
}

// Not returns the complement of a.
//
//	Function: out = NAND(a, a)
func Not(a Bit) (Bit, error) {
	if err := checkBits("not", a); err != nil {
		return Lo, err
	}
	return not(a), nil
}

// And returns a AND b.
//
//	Function: out = NOT(NAND(a, b))
func And(a, b Bit) (Bit, error) {
	if err := checkBits("and", a, b); err != nil {
		return Lo, err
	}
	return and(a, b), nil
}

// Or returns a OR b.
//
//	Function: out = NAND(NOT(a), NOT(b))
func Or(a, b Bit) (Bit, error) {
	if err := checkBits("or", a, b); err != nil {
		return Lo, err
	}
	return or(a, b), nil
}

// Nor returns NOT(a OR b).
//
//	Function: out = NOT(OR(a, b))
func Nor(a, b Bit) (Bit, error) {
	if err := checkBits("nor", a, b); err != nil {
		return Lo, err
	}
	return nor(a, b), nil
}

// Xor returns a XOR b, built from four NANDs.
//
//	Function: n = NAND(a, b); out = NAND(NAND(a, n), NAND(b, n))
func Xor(a, b Bit) (Bit, error) {
	if err := checkBits("xor", a, b); err != nil {
		return Lo, err
	}
	return xor(a, b), nil
}

// Xnor returns NOT(a XOR b).
//
//	Function: out = NOT(XOR(a, b))
func Xnor(a, b Bit) (Bit, error) {
	if err := checkBits("xnor", a, b); err != nil {
		return Lo, err
	}
	return xnor(a, b), nil
}

package sat

import "fmt"

// Literal is an internal literal code packing a variable index and its
// polarity: the positive literal of variable v is 2v, the negative literal
// is 2v+1. Negation is a single XOR with 1.
type Literal int32

// PositiveLiteral returns the literal representing variable v (x_v).
func PositiveLiteral(v int) Literal {
	return Literal(2 * v)
}

// NegativeLiteral returns the literal representing the negation of
// variable v (¬x_v).
func NegativeLiteral(v int) Literal {
	return Literal(2*v + 1)
}

// Var returns the variable this literal refers to.
func (l Literal) Var() int {
	return int(l) / 2
}

// IsPositive reports whether l is the positive occurrence of its variable.
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Negate returns the opposite literal (¬l).
func (l Literal) Negate() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("x%d", l.Var())
	}
	return fmt.Sprintf("¬x%d", l.Var())
}

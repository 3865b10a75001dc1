package vector

// Pair is the product space A × B. Multi-argument differentiable functions
// take their arguments as a Pair and return per-argument cotangents as a Pair,
// in positional order.
type Pair[A Vector[A], B Vector[B]] struct {
	First  A
	Second B
}

// MakePair returns the pair (a, b).
func MakePair[A Vector[A], B Vector[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Add returns the component-wise sum.
func (p Pair[A, B]) Add(q Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Add(q.First), Second: p.Second.Add(q.Second)}
}

// Sub returns the component-wise difference.
func (p Pair[A, B]) Sub(q Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Sub(q.First), Second: p.Second.Sub(q.Second)}
}

// Scale scales both components.
func (p Pair[A, B]) Scale(s float64) Pair[A, B] {
	return Pair[A, B]{First: p.First.Scale(s), Second: p.Second.Scale(s)}
}

// Moved returns p + d.
func (p Pair[A, B]) Moved(d Pair[A, B]) Pair[A, B] { return p.Add(d) }

// TangentVector returns c. Pairs of self-dual spaces are self-dual.
func (p Pair[A, B]) TangentVector(c Pair[A, B]) Pair[A, B] { return c }

// Triple is the product space A × B × C.
type Triple[A Vector[A], B Vector[B], C Vector[C]] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple returns the triple (a, b, c).
func MakeTriple[A Vector[A], B Vector[B], C Vector[C]](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Add returns the component-wise sum.
func (t Triple[A, B, C]) Add(u Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{First: t.First.Add(u.First), Second: t.Second.Add(u.Second), Third: t.Third.Add(u.Third)}
}

// Sub returns the component-wise difference.
func (t Triple[A, B, C]) Sub(u Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{First: t.First.Sub(u.First), Second: t.Second.Sub(u.Second), Third: t.Third.Sub(u.Third)}
}

// Scale scales every component.
func (t Triple[A, B, C]) Scale(s float64) Triple[A, B, C] {
	return Triple[A, B, C]{First: t.First.Scale(s), Second: t.Second.Scale(s), Third: t.Third.Scale(s)}
}

// Moved returns t + d.
func (t Triple[A, B, C]) Moved(d Triple[A, B, C]) Triple[A, B, C] { return t.Add(d) }

// TangentVector returns c.
func (t Triple[A, B, C]) TangentVector(c Triple[A, B, C]) Triple[A, B, C] { return c }

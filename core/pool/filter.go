package pool

// Predicate decides whether an address is kept.
type Predicate func(Address) (bool, error)

// Filter returns the addresses of p accepted by keep, in their original
// order. p is not modified. The first predicate error aborts the scan.
func Filter(p Pool, keep Predicate) (Pool, error) {
	out := Pool{}
	for _, a := range p {
		ok, err := keep(a)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// FirstByte matches addresses whose first component equals v.
func FirstByte(v int) Predicate {
	return func(a Address) (bool, error) {
		n, err := a.Component(0)
		return err == nil && n == v, err
	}
}

// FirstTwoBytes matches addresses starting with v1.v2. The second component
// is only read when the first one matched.
func FirstTwoBytes(v1, v2 int) Predicate {
	return func(a Address) (bool, error) {
		n, err := a.Component(0)
		if err != nil || n != v1 {
			return false, err
		}
		n, err = a.Component(1)
		return err == nil && n == v2, err
	}
}

// AnyByte matches addresses holding v in any component, scanning left to
// right and stopping at the first match.
func AnyByte(v int) Predicate {
	return func(a Address) (bool, error) {
		for i := range a {
			n, err := a.Component(i)
			if err != nil {
				return false, err
			}
			if n == v {
				return true, nil
			}
		}
		return false, nil
	}
}

func FilterByFirstByte(p Pool, v int) (Pool, error) { return Filter(p, FirstByte(v)) }

func FilterByFirstTwoBytes(p Pool, v1, v2 int) (Pool, error) {
	return Filter(p, FirstTwoBytes(v1, v2))
}

func FilterByAnyByte(p Pool, v int) (Pool, error) { return Filter(p, AnyByte(v)) }

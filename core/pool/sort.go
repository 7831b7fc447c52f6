package pool

import "sort"

type keyed struct {
	key  Key
	addr Address
}

// Sort orders p in place, highest address first. Every key is computed
// before anything moves, so p is unchanged when an error is returned.
// Equal addresses keep their input order.
func Sort(p Pool) error {
	ks := make([]keyed, len(p))
	for i, a := range p {
		k, err := a.Key()
		if err != nil {
			return err
		}
		ks[i] = keyed{key: k, addr: a}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key.Compare(ks[j].key) > 0 })
	for i := range ks {
		p[i] = ks[i].addr
	}
	return nil
}

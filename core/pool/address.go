// core/pool/address.go
package pool

import (
	"strconv"
	"strings"

	"ipfilter-core/split"
)

// Width is the number of components a sortable address carries.
const Width = 4

// Address holds the dot-separated components of one record, verbatim.
type Address []string

// Pool is an ordered list of addresses.
type Pool []Address

// Key is the numeric view of an address used for ordering.
type Key [Width]int

// ParseLine keeps the first tab-separated field of line and splits it on dots.
func ParseLine(line string) Address {
	field := split.Split(line, '\t')[0]
	return Address(split.Split(field, '.'))
}

// Parse builds one address per line, in input order. Components are not
// interpreted here.
func Parse(lines []string) Pool {
	p := make(Pool, 0, len(lines))
	for _, ln := range lines {
		p = append(p, ParseLine(ln))
	}
	return p
}

// String renders the address by joining its components with dots.
func (a Address) String() string { return strings.Join(a, ".") }

// Component returns component i as an integer.
func (a Address) Component(i int) (int, error) {
	if i >= len(a) {
		return 0, &LengthError{Address: a, Want: i + 1}
	}
	n, err := strconv.Atoi(a[i])
	if err != nil {
		return 0, &ConversionError{Address: a, Index: i, Err: err}
	}
	return n, nil
}

// Key interprets the first Width components. Extra components are ignored.
func (a Address) Key() (Key, error) {
	var k Key
	if len(a) < Width {
		return k, &LengthError{Address: a, Want: Width}
	}
	for i := range k {
		n, err := a.Component(i)
		if err != nil {
			return k, err
		}
		k[i] = n
	}
	return k, nil
}

// Compare orders keys component by component, most significant first.
func (k Key) Compare(o Key) int {
	for i := range k {
		switch {
		case k[i] < o[i]:
			return -1
		case k[i] > o[i]:
			return 1
		}
	}
	return 0
}

// Strings renders every address of the pool.
func (p Pool) Strings() []string {
	out := make([]string, len(p))
	for i, a := range p {
		out[i] = a.String()
	}
	return out
}

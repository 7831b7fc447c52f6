// core/split/split.go
package split

import "strings"

// Split cuts s at every occurrence of sep. Empty segments are kept, so the
// result always has strings.Count(s, sep)+1 elements; "" yields [""].
func Split(s string, sep byte) []string {
	out := make([]string, 0, strings.Count(s, string(sep))+1)
	start := 0
	for {
		i := strings.IndexByte(s[start:], sep)
		if i < 0 {
			break
		}
		out = append(out, s[start:start+i])
		start += i + 1
	}
	return append(out, s[start:])
}

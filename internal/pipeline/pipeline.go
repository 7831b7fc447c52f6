// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"

	"ipfilter-core/pool"
	"ipfilter/pkg/api"
)

// Section names, in default output order.
const (
	SectionAll      = "all"
	SectionFirst    = "first"
	SectionFirstTwo = "first-two"
	SectionAny      = "any"
)

// DefaultSections lists every section in output order.
var DefaultSections = []string{SectionAll, SectionFirst, SectionFirstTwo, SectionAny}

// Plan selects the filter values and which sections a run emits.
type Plan struct {
	FirstByte int
	FirstTwo  [2]int
	AnyByte   int
	Sections  []string
}

// DefaultPlan mirrors the classic report: first byte 1, first two bytes
// 46.70, any byte 46.
func DefaultPlan() Plan {
	return Plan{
		FirstByte: 1,
		FirstTwo:  [2]int{46, 70},
		AnyByte:   46,
		Sections:  append([]string(nil), DefaultSections...),
	}
}

// Step computes one section from the sorted pool.
type Step struct {
	Name  string
	Title string
	Apply func(pool.Pool) (pool.Pool, error)
}

// Steps resolves the plan's section names into steps, keeping their order.
func (p Plan) Steps() ([]Step, error) {
	steps := make([]Step, 0, len(p.Sections))
	for _, name := range p.Sections {
		var st Step
		switch name {
		case SectionAll:
			st = Step{Title: "All IP", Apply: func(in pool.Pool) (pool.Pool, error) { return in, nil }}
		case SectionFirst:
			v := p.FirstByte
			st = Step{
				Title: fmt.Sprintf("Filtered by first byte = %d", v),
				Apply: func(in pool.Pool) (pool.Pool, error) { return pool.FilterByFirstByte(in, v) },
			}
		case SectionFirstTwo:
			v1, v2 := p.FirstTwo[0], p.FirstTwo[1]
			st = Step{
				Title: fmt.Sprintf("Filtered by first two bytes = %d, %d", v1, v2),
				Apply: func(in pool.Pool) (pool.Pool, error) { return pool.FilterByFirstTwoBytes(in, v1, v2) },
			}
		case SectionAny:
			v := p.AnyByte
			st = Step{
				Title: fmt.Sprintf("Filtered by any byte = %d", v),
				Apply: func(in pool.Pool) (pool.Pool, error) { return pool.FilterByAnyByte(in, v) },
			}
		default:
			return nil, fmt.Errorf("unknown section %q", name)
		}
		st.Name = name
		steps = append(steps, st)
	}
	return steps, nil
}

// ToAPISection converts a computed pool into its wire form.
func ToAPISection(name, title string, p pool.Pool) api.SectionV1 {
	return api.SectionV1{Name: name, Title: title, Count: len(p), Addresses: p.Strings()}
}

// Run parses and sorts lines, then computes the steps in order, calling emit
// after each one. The first error stops the run; sections already emitted
// stay emitted. Errors from emit are returned unchanged.
func Run(ctx context.Context, lines []string, steps []Step, emit func(api.SectionV1) error) error {
	ips := pool.Parse(lines)
	if err := pool.Sort(ips); err != nil {
		return fmt.Errorf("sort: %w", err)
	}
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := st.Apply(ips)
		if err != nil {
			return fmt.Errorf("filter %s: %w", st.Name, err)
		}
		if err := emit(ToAPISection(st.Name, st.Title, out)); err != nil {
			return err
		}
	}
	return nil
}

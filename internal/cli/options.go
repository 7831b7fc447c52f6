// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"ipfilter-core/split"
	"ipfilter/internal/cliutil"
	"ipfilter/internal/cmdutil"
	"ipfilter/internal/config"
	"ipfilter/internal/pipeline"
	"ipfilter/internal/version"
	"ipfilter/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Files   []string // "-" means stdin; empty means stdin
	EnvFile string

	// Filters
	FirstByte int
	FirstTwo  [2]int
	AnyByte   int
	Sections  []string

	// Output
	Output string
	Header bool // true unless --no-header

	// Diagnostics
	LogLevel string
	Quiet    bool

	Version bool
}

// Plan returns the pipeline plan described by the options.
func (o Options) Plan() pipeline.Plan {
	return pipeline.Plan{
		FirstByte: o.FirstByte,
		FirstTwo:  o.FirstTwo,
		AnyByte:   o.AnyByte,
		Sections:  o.Sections,
	}
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: sort and filter IPv4 address lists

Version: %s

Reads tab-separated records whose first field is a dotted IPv4 address
from the given files (or stdin) and prints the addresses in descending
order, followed by the first-byte, first-two-bytes and any-byte filters.
Every flag may also be set as %s<FLAG_NAME> in the environment or the
--env-file.

Usage of %s: [flags] [file ...]
`, name, version.Version, config.EnvPrefix, name)
		fs.PrintDefaults()
	}
	return fs
}

// flags that never come from the environment
var noEnv = []string{"env-file", "h", "v", "version"}

// ParseArgs registers and parses all flags, layers IPFILTER_* variables
// under them, and returns an Options struct. Positional arguments are
// input files and may be mixed with flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	def := pipeline.DefaultPlan()
	opt := Options{FirstTwo: def.FirstTwo}
	var help, noHeader bool

	// Input
	fs.StringVar(&opt.EnvFile, "env-file", config.DefaultEnvFile, "dotenv file with "+config.EnvPrefix+"* defaults")

	// Filters
	fs.IntVar(&opt.FirstByte, "first-byte", def.FirstByte, "first-byte filter value (0-255)")
	fs.Var((*pairValue)(&opt.FirstTwo), "first-two", "first-two-bytes filter values as A.B")
	fs.IntVar(&opt.AnyByte, "any-byte", def.AnyByte, "any-byte filter value (0-255)")
	sections := strings.Join(def.Sections, ",")
	fs.StringVar(&sections, "sections", sections, "comma-separated sections to print: "+strings.Join(pipeline.DefaultSections, ", "))

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: "+strings.Join(writers.Formats(), " | "))
	fs.BoolVar(&noHeader, "no-header", false, "suppress section headers in text output")

	// Diagnostics
	fs.StringVar(&opt.LogLevel, "log-level", "warn", "log level: "+strings.Join(cmdutil.LogLevels, " | "))
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	explicitEnvFile := false
	fs.Visit(func(f *flag.Flag) { explicitEnvFile = explicitEnvFile || f.Name == "env-file" })
	src, err := config.Load(opt.EnvFile, explicitEnvFile)
	if err != nil {
		return opt, err
	}
	if err := config.ApplyEnv(fs, src, noEnv...); err != nil {
		return opt, err
	}

	files, err := cliutil.ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.Files = files
	opt.Header = !noHeader
	opt.Sections = splitList(sections)

	// Validation
	for _, v := range []struct {
		name string
		val  int
	}{
		{"--first-byte", opt.FirstByte},
		{"--first-two", opt.FirstTwo[0]},
		{"--first-two", opt.FirstTwo[1]},
		{"--any-byte", opt.AnyByte},
	} {
		if v.val < 0 || v.val > 255 {
			return opt, fmt.Errorf("%s must be within 0-255, got %d", v.name, v.val)
		}
	}
	if len(opt.Sections) == 0 {
		return opt, errors.New("--sections must name at least one section")
	}
	if _, err := opt.Plan().Steps(); err != nil {
		return opt, fmt.Errorf("--sections: %v", err)
	}
	if _, ok := writers.SectionWriters[opt.Output]; !ok {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range split.Split(s, ',') {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// pairValue parses "A.B" into two integers.
type pairValue [2]int

func (p *pairValue) String() string { return fmt.Sprintf("%d.%d", p[0], p[1]) }

func (p *pairValue) Set(v string) error {
	parts := split.Split(strings.TrimSpace(v), '.')
	if len(parts) != 2 {
		return fmt.Errorf("want A.B, got %q", v)
	}
	for i, s := range parts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("want A.B, got %q", v)
		}
		p[i] = n
	}
	return nil
}

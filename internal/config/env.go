// internal/config/env.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every variable that can stand in for a flag.
const EnvPrefix = "IPFILTER_"

// DefaultEnvFile is read when present; a missing default file is not an error.
const DefaultEnvFile = ".env"

// Source looks up a configuration value by variable name.
type Source func(key string) (string, bool)

// Chain returns a Source that consults each source in order.
func Chain(sources ...Source) Source {
	return func(key string) (string, bool) {
		for _, s := range sources {
			if s == nil {
				continue
			}
			if v, ok := s(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

// MapSource serves values from m.
func MapSource(m map[string]string) Source {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// FileSource reads a dotenv file. When required is false a missing file
// yields an empty source.
func FileSource(path string, required bool) (Source, error) {
	if path == "" {
		return MapSource(nil), nil
	}
	m, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return MapSource(nil), nil
		}
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}
	return MapSource(m), nil
}

// Load layers the process environment over the dotenv file at path.
func Load(path string, required bool) (Source, error) {
	file, err := FileSource(path, required)
	if err != nil {
		return nil, err
	}
	return Chain(os.LookupEnv, file), nil
}

// EnvName maps a flag name to its variable, e.g. "first-byte" → "IPFILTER_FIRST_BYTE".
func EnvName(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// ApplyEnv sets every flag of fs that was not given on the command line and
// has a value in src. Flags named in skip are left alone.
func ApplyEnv(fs *flag.FlagSet, src Source, skip ...string) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range skip {
		set[name] = true
	}

	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if err != nil || set[f.Name] {
			return
		}
		key := EnvName(f.Name)
		v, ok := src(key)
		if !ok {
			return
		}
		if serr := fs.Set(f.Name, v); serr != nil {
			err = fmt.Errorf("%s=%q: %v", key, v, serr)
		}
	})
	return err
}

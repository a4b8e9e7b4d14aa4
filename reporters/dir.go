package reporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/config"
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
)

// Dir gives every reported pattern its own numbered directory holding
// its name, its record, its support and the lattice it was grown from.
type Dir struct {
	config *config.Config
	fmt    lattice.Formatter
	dir    string
	count  int
}

func NewDir(c *config.Config, fmt lattice.Formatter, dirname string) (*Dir, error) {
	patterns := c.OutputFile(dirname)
	err := os.MkdirAll(patterns, 0775)
	if err != nil {
		return nil, err
	}
	r := &Dir{
		config: c,
		fmt:    fmt,
		dir:    patterns,
	}
	return r, nil
}

func (r *Dir) Report(p lattice.Pattern) error {
	dir := filepath.Join(r.dir, fmt.Sprintf("%d", r.count))
	err := os.MkdirAll(dir, 0775)
	if err != nil {
		return err
	}
	r.count++
	name, err := os.Create(filepath.Join(dir, "pattern.name"))
	if err != nil {
		return err
	}
	defer name.Close()
	fmt.Fprintf(name, "%s\n", r.fmt.PatternName(p))
	pattern, err := os.Create(filepath.Join(dir, "pattern"+r.fmt.FileExt()))
	if err != nil {
		return err
	}
	defer pattern.Close()
	err = r.fmt.FormatPattern(pattern, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(pattern)
	support, err := os.Create(filepath.Join(dir, "support"))
	if err != nil {
		return err
	}
	defer support.Close()
	fmt.Fprintf(support, "%d\n", p.Support())
	rec, err := makeLatticeRecord(r.fmt, p)
	if err != nil {
		return err
	}
	lat, err := os.Create(filepath.Join(dir, "lattice.json"))
	if err != nil {
		return err
	}
	defer lat.Close()
	enc := json.NewEncoder(lat)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (r *Dir) Close() error {
	count, err := os.Create(filepath.Join(r.dir, "count"))
	if err != nil {
		return err
	}
	defer count.Close()
	fmt.Fprintf(count, "%d\n", r.count)
	return nil
}

package txgraph

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/config"
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
)

const (
	AccountSource          = "account"
	CardSource             = "card"
	AccountToAccountSource = "account_to_account"
	AccountToCardSource    = "account_to_card"
)

// Sources are read in this order. Vertices must be loaded before the
// transfers that reference them.
var Sources = []string{
	AccountSource,
	CardSource,
	AccountToAccountSource,
	AccountToCardSource,
}

type ErrorList []error

func (self ErrorList) Error() string {
	var s []string
	for _, err := range self {
		s = append(s, err.Error())
	}
	return "Errors [" + strings.Join(s, ", ") + "]"
}

// Dataset is a loaded transaction graph ready to be mined.
type Dataset struct {
	G      *Graph
	Names  *Names
	config *config.Config
}

func NewDataset(conf *config.Config, g *Graph) *Dataset {
	return &Dataset{
		G:      g,
		Names:  names(conf),
		config: conf,
	}
}

func names(conf *config.Config) *Names {
	if len(conf.Names) > 0 {
		return NewNames(conf.Names...)
	}
	return DefaultNames()
}

func (d *Dataset) Support() int {
	return d.config.Support
}

func (d *Dataset) Workers() int {
	return d.config.Workers()
}

func (d *Dataset) Close() error {
	return nil
}

type CsvLoader struct {
	config    *config.Config
	names     *Names
	errs      ErrorList
	malformed int
}

func NewCsvLoader(conf *config.Config) (lattice.Loader, error) {
	l := &CsvLoader{
		config: conf,
		names:  names(conf),
	}
	return l, nil
}

// Load builds the graph from whatever sources could be read. Nothing that
// goes wrong while reading is fatal: unreadable sources contribute
// nothing and bad records are skipped or get sentinel values.
func (l *CsvLoader) Load(input lattice.Input) (lattice.DataType, error) {
	g := NewGraph()
	l.errs = nil
	l.malformed = 0
	for _, source := range Sources {
		var count int
		var err error
		switch source {
		case AccountSource:
			count, err = l.loadSource(input, source, func(rec []string) error {
				return l.loadEntity(g, Account, rec)
			})
		case CardSource:
			count, err = l.loadSource(input, source, func(rec []string) error {
				return l.loadEntity(g, Card, rec)
			})
		case AccountToAccountSource:
			count, err = l.loadSource(input, source, func(rec []string) error {
				return l.loadTransfer(g, Account, rec)
			})
		case AccountToCardSource:
			count, err = l.loadSource(input, source, func(rec []string) error {
				return l.loadTransfer(g, Card, rec)
			})
		}
		if err != nil {
			errors.Logf("WARN", "could not read %v, it contributes nothing: %v", source, err)
			continue
		}
		errors.Logf("INFO", "read %d records from %v", count, source)
	}
	if len(l.errs) > 0 {
		errors.Logf("WARN", "%d records were rejected", len(l.errs))
		for i, err := range l.errs {
			if i >= 10 {
				errors.Logf("WARN", "... and %d more", len(l.errs)-i)
				break
			}
			errors.Logf("WARN", "%v", err)
		}
	}
	if l.malformed > 0 {
		errors.Logf("WARN", "%d malformed fields were replaced with %d", l.malformed, Sentinel)
	}
	errors.Logf("INFO", "graph construction completed: %v", g)
	return &Dataset{
		G:      g,
		Names:  l.names,
		config: l.config,
	}, nil
}

// Errors are the records rejected by the last Load.
func (l *CsvLoader) Errors() ErrorList {
	return l.errs
}

func (l *CsvLoader) loadSource(input lattice.Input, source string, load func([]string) error) (count int, err error) {
	in, closer, err := input(source)
	if err != nil {
		return 0, err
	}
	defer closer()
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if perr, ok := err.(*csv.ParseError); ok {
			l.errs = append(l.errs, errors.Errorf("%v: %v", source, perr))
			continue
		} else if err != nil {
			return count, err
		}
		count++
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		if err := load(rec); err != nil {
			l.errs = append(l.errs, errors.Errorf("%v line %d: %v", source, count, err))
		}
	}
	return count, nil
}

func (l *CsvLoader) loadEntity(g *Graph, kind Kind, rec []string) error {
	if len(rec) < 2 {
		return errors.Errorf("expected id,name got %v", rec)
	}
	id, err := parseId(rec[0], kind)
	if err != nil {
		return err
	}
	attrs := VertexAttrs{
		Kind: kind,
		Name: l.names.Code(strings.TrimSpace(rec[1])),
	}
	if !g.AddVertex(id, attrs) {
		return errors.Errorf("duplicate vertex id %v ignored", id)
	}
	return nil
}

func (l *CsvLoader) loadTransfer(g *Graph, targKind Kind, rec []string) error {
	if len(rec) < 7 {
		return errors.Errorf("expected at least 7 fields got %d", len(rec))
	}
	src, err := parseId(rec[0], Account)
	if err != nil {
		return err
	}
	targ, err := parseId(rec[1], targKind)
	if err != nil {
		return err
	}
	attrs := EdgeAttrs{
		Amount:   ParseAmount(rec[3]),
		Strategy: LastDigit(rec[4]),
		BusCode:  LastDigit(rec[6]),
	}
	if attrs.Amount == Sentinel {
		l.malformed++
	}
	if attrs.Strategy == Sentinel {
		l.malformed++
	}
	if attrs.BusCode == Sentinel {
		l.malformed++
	}
	_, err = g.AddEdge(src, targ, attrs)
	return err
}

func parseId(field string, kind Kind) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, errors.Errorf("bad %v id %q", kind, field)
	}
	if kind == Card {
		id += CardIdOffset
	}
	return id, nil
}

// ParseAmount reads a decimal amount and truncates it toward zero.
func ParseAmount(field string) int64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Sentinel
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return Sentinel
	}
	return int64(f)
}

// LastDigit is the integer value of the last character of the field.
func LastDigit(field string) int {
	field = strings.TrimSpace(field)
	if len(field) == 0 {
		return Sentinel
	}
	c := field[len(field)-1]
	if c < '0' || c > '9' {
		return Sentinel
	}
	return int(c - '0')
}

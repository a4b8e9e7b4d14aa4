package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/config"
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
	"github.com/YukiCheZ/risk-patterns-mining/miners"
	"github.com/YukiCheZ/risk-patterns-mining/stores/bytes_int"
)

// Unique passes a pattern on the first time its name is seen. Triangle
// rotations share a name so only one of them gets through.
type Unique struct {
	count     int
	fmtr      lattice.Formatter
	Seen      bytes_int.MultiMap
	Reporter  miners.Reporter
	histogram io.WriteCloser
}

func NewUnique(conf *config.Config, fmtr lattice.Formatter, reporter miners.Reporter, histogramName string) (*Unique, error) {
	seen, err := conf.BytesIntMultiMap("unique-seen")
	if err != nil {
		return nil, err
	}
	var histogram io.WriteCloser = nil
	if histogramName != "" {
		histogram, err = os.Create(conf.OutputFile(histogramName + ".csv"))
		if err != nil {
			seen.Delete()
			return nil, err
		}
	}
	u := &Unique{
		fmtr:      fmtr,
		Seen:      seen,
		Reporter:  reporter,
		histogram: histogram,
	}
	return u, nil
}

func (r *Unique) Report(p lattice.Pattern) error {
	r.count++
	label := []byte(r.fmtr.PatternName(p))
	if has, err := r.Seen.Has(label); err != nil {
		return err
	} else if has {
		var count int32
		err = bytes_int.Do(func() (bytes_int.Iterator, error) { return r.Seen.Find(label) }, func(_ []byte, c int32) error {
			count = c
			return nil
		})
		if err != nil {
			return err
		}
		err = r.Seen.Remove(label, func(_ int32) bool { return true })
		if err != nil {
			return err
		}
		return r.Seen.Add(label, count+1)
	} else {
		err = r.Seen.Add(label, 1)
		if err != nil {
			return err
		}
		return r.Reporter.Report(p)
	}
}

func (r *Unique) Close() error {
	if r.histogram != nil {
		err := bytes_int.Do(r.Seen.Iterate, func(k []byte, c int32) error {
			_, err := fmt.Fprintf(r.histogram, "%d, %.5g, %v\n", c, float64(c)/float64(r.count), string(k))
			return err
		})
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
		err = r.histogram.Close()
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
	}
	err := r.Seen.Delete()
	if err != nil {
		errors.Logf("ERROR", "%v", err)
	}
	return r.Reporter.Close()
}

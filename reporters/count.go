package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/config"
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
	"github.com/YukiCheZ/risk-patterns-mining/stats"
)

type Count struct {
	config   *config.Config
	count    int
	supports []float64
	filename string
}

func NewCount(c *config.Config, filename string) (*Count, error) {
	r := &Count{
		config:   c,
		filename: filename,
	}
	return r, nil
}

func (r *Count) Report(p lattice.Pattern) error {
	r.count++
	r.supports = append(r.supports, float64(p.Support()))
	return nil
}

func (r *Count) Close() error {
	errors.Logf("INFO", "counted %d patterns, mean support %.4g", r.count, stats.Mean(r.supports))
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "%v\n", r.count)
	err = f.Close()
	if perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	return nil
}

package reporters

import ()

import (
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
	"github.com/YukiCheZ/risk-patterns-mining/miners"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(p lattice.Pattern) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(p)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

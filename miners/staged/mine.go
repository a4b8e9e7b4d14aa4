package staged

import (
	"context"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/config"
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
	"github.com/YukiCheZ/risk-patterns-mining/miners"
	"github.com/YukiCheZ/risk-patterns-mining/types/txgraph"
)

// Miner runs the edge, walk and path stages over a transaction graph and
// hands every frequent pattern to the reporter.
type Miner struct {
	Config  *config.Config
	Catalog *txgraph.Catalog
	dt      lattice.DataType
	rptr    miners.Reporter
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config: conf,
	}
}

func (m *Miner) Mine(ctx context.Context, dt lattice.DataType, rptr miners.Reporter, fmtr lattice.Formatter) error {
	m.dt = dt
	m.rptr = rptr
	ds, ok := dt.(*txgraph.Dataset)
	if !ok {
		return errors.Errorf("staged miner can not mine %T", dt)
	}
	errors.Logf("INFO", "mining %v with support %d on %d workers", ds.G, dt.Support(), m.Config.Workers())
	cat, err := txgraph.Mine(ctx, ds.G, dt.Support(), m.Config.Workers())
	if err != nil {
		return err
	}
	m.Catalog = cat
	pats := cat.Patterns(m.Config.AllLevels)
	if m.Config.FoldRotations {
		pats = txgraph.FoldRotations(pats)
	}
	errors.Logf("INFO", "chains %d, triangles %d, reporting %d patterns",
		cat.F3.Chains.Len(), cat.F3.Triangles.Len(), len(pats))
	for _, p := range pats {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := rptr.Report(p); err != nil {
			return err
		}
	}
	return nil
}

func (m *Miner) Close() error {
	var errs []error
	if m.rptr != nil {
		if err := m.rptr.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if m.dt != nil {
		if err := m.dt.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return txgraph.ErrorList(errs)
	}
	return nil
}

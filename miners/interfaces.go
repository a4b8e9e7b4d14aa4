package miners

import (
	"context"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
)

// Note: the miner's Close function should close both reporter and the datatype that were passed into it.
type Miner interface {
	Mine(context.Context, lattice.DataType, Reporter, lattice.Formatter) error
	Close() error
}

type Reporter interface {
	Report(lattice.Pattern) error
	Close() error
}

package lattice

import (
	"io"
)

import (
	"github.com/timtadh/data-structures/types"
)

type Lattice struct {
	V []Pattern
	E []Edge
}

// Input opens one named source of a dataset. The closer must be called
// once the reader is exhausted.
type Input func(name string) (reader io.Reader, closer func(), err error)

type Loader interface {
	Load(input Input) (DataType, error)
}

type DataType interface {
	Support() int
	Close() error
}

type Pattern interface {
	types.Hashable
	Label() []byte
	Level() int
	Support() int
	Parents() ([]Pattern, error)
}

type Formatter interface {
	FileExt() string
	PatternName(Pattern) string
	FormatPattern(io.Writer, Pattern) error
}

type Edge struct {
	Src, Targ int
}

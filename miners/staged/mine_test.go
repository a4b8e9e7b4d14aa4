package staged

import (
	"context"
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/config"
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
	"github.com/YukiCheZ/risk-patterns-mining/types/txgraph"
)

type collector struct {
	patterns []lattice.Pattern
	closed   bool
}

func (c *collector) Report(p lattice.Pattern) error {
	c.patterns = append(c.patterns, p)
	return nil
}

func (c *collector) Close() error {
	c.closed = true
	return nil
}

type other struct{}

func (o other) Support() int { return 1 }
func (o other) Close() error { return nil }

// square is a -> b -> c -> d -> a repeated n times with distinct
// attributes on each hop: four open chains and no triangles.
func square(t *testing.T, conf *config.Config, n int) *txgraph.Dataset {
	g := txgraph.NewGraph()
	for i := 0; i < n; i++ {
		base := int64(4 * i)
		for j := int64(0); j < 4; j++ {
			g.AddVertex(base+j, txgraph.VertexAttrs{Kind: txgraph.Account, Name: int(j % 3)})
		}
		for j := int64(0); j < 4; j++ {
			_, err := g.AddEdge(base+j, base+(j+1)%4, txgraph.EdgeAttrs{Amount: 100 * (j + 1)})
			assert.Nil(t, err)
		}
	}
	return txgraph.NewDataset(conf, g)
}

func TestMineReportsChains(t *testing.T) {
	x := assert.New(t)
	conf := &config.Config{Support: 3, Parallelism: 2}
	rptr := &collector{}
	m := NewMiner(conf)
	x.Nil(m.Mine(context.Background(), square(t, conf, 3), rptr, txgraph.NewFormatter(nil)))
	x.Len(rptr.patterns, 4)
	for _, p := range rptr.patterns {
		x.Equal(txgraph.ChainPattern, p.(*txgraph.Pattern).Topology)
		x.Equal(3, p.Support())
	}
	x.Nil(m.Close())
	x.True(rptr.closed)
}

func TestMineAllLevels(t *testing.T) {
	x := assert.New(t)
	conf := &config.Config{Support: 3, AllLevels: true}
	rptr := &collector{}
	m := NewMiner(conf)
	x.Nil(m.Mine(context.Background(), square(t, conf, 3), rptr, txgraph.NewFormatter(nil)))
	x.Len(rptr.patterns, 4+4+4)
	x.Equal(1, rptr.patterns[0].Level())
	x.Equal(3, rptr.patterns[len(rptr.patterns)-1].Level())
	x.Nil(m.Close())
}

func TestMineFoldRotations(t *testing.T) {
	x := assert.New(t)
	conf := &config.Config{Support: 2, FoldRotations: true}
	g := txgraph.NewGraph()
	for i := int64(0); i < 2; i++ {
		a, b, c := 3*i, 3*i+1, 3*i+2
		g.AddVertex(a, txgraph.VertexAttrs{Name: 0})
		g.AddVertex(b, txgraph.VertexAttrs{Name: 1})
		g.AddVertex(c, txgraph.VertexAttrs{Name: 2})
		g.AddEdge(a, b, txgraph.EdgeAttrs{Amount: 1})
		g.AddEdge(b, c, txgraph.EdgeAttrs{Amount: 2})
		g.AddEdge(c, a, txgraph.EdgeAttrs{Amount: 3})
	}
	rptr := &collector{}
	m := NewMiner(conf)
	x.Nil(m.Mine(context.Background(), txgraph.NewDataset(conf, g), rptr, txgraph.NewFormatter(nil)))
	x.Len(rptr.patterns, 1)
	x.Equal(3, m.Catalog.F3.Triangles.Len())
}

func TestMineWrongType(t *testing.T) {
	x := assert.New(t)
	m := NewMiner(&config.Config{})
	rptr := &collector{}
	x.NotNil(m.Mine(context.Background(), other{}, rptr, txgraph.NewFormatter(nil)))
	x.Nil(m.Close())
	x.True(rptr.closed)
}

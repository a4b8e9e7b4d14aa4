package txgraph

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/stats"
)

// Frequent1 is the output of the single edge stage: the frequent
// signatures and the subgraph made of exactly their edges.
type Frequent1 struct {
	G       *Graph
	Index   *Buckets[Signature, *Edge]
	Support int
}

func FrequentEdges(g *Graph, support int) *Frequent1 {
	index := g.Index().Threshold(support)
	pruned := NewGraph()
	for _, sig := range index.Keys() {
		for _, e := range index.Get(sig) {
			pruned.AddVertex(e.Src, sig.Src)
			pruned.AddVertex(e.Targ, sig.Targ)
			pruned.insert(e)
		}
	}
	errors.Logf("INFO", "origin graph: vertices %d, edges %d, 1-edge patterns %d",
		g.VertexCount(), g.EdgeCount(), g.Index().Len())
	errors.Logf("INFO", "frequent 1-edge subgraph: vertices %d, edges %d, patterns %d (largest %d)",
		pruned.VertexCount(), pruned.EdgeCount(), index.Len(), largest(index.Sizes()))
	return &Frequent1{
		G:       pruned,
		Index:   index,
		Support: support,
	}
}

func largest(sizes []int) int {
	if len(sizes) == 0 {
		return 0
	}
	_, max := stats.Max(stats.Srange(len(sizes)), func(i int) float64 {
		return float64(sizes[i])
	})
	return int(max)
}

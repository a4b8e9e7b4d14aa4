package txgraph

import (
	"context"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Catalog is everything the three stages found frequent. Each stage only
// saw what the stage before it kept.
type Catalog struct {
	F1      *Frequent1
	F2      *Frequent2
	F3      *Frequent3
	Support int
}

func Mine(ctx context.Context, g *Graph, support, workers int) (*Catalog, error) {
	f1 := FrequentEdges(g, support)
	errors.Logf("DEBUG", "finished 1-edge stage")
	f2, err := FrequentWalks(ctx, f1, support, workers)
	if err != nil {
		return nil, err
	}
	errors.Logf("DEBUG", "finished 2-edge stage")
	f3, err := FrequentPaths(ctx, f1, f2, support, workers)
	if err != nil {
		return nil, err
	}
	errors.Logf("DEBUG", "finished 3-edge stage")
	return &Catalog{
		F1:      f1,
		F2:      f2,
		F3:      f3,
		Support: support,
	}, nil
}

func (c *Catalog) edge(sig Signature) *Pattern {
	return &Pattern{
		Topology: EdgePattern,
		Sigs:     []Signature{sig},
		support:  c.F1.Index.Count(sig),
		catalog:  c,
	}
}

func (c *Catalog) walk(key Walk2Key) *Pattern {
	return &Pattern{
		Topology: WalkPattern,
		Sigs:     []Signature{key.First, key.Second},
		support:  c.F2.Index.Count(key),
		catalog:  c,
	}
}

func (c *Catalog) path(topo Topology, key Walk3Key, support int) *Pattern {
	return &Pattern{
		Topology: topo,
		Sigs:     key.Sigs(),
		support:  support,
		catalog:  c,
	}
}

func (c *Catalog) Edges() []*Pattern {
	pats := make([]*Pattern, 0, c.F1.Index.Len())
	for _, sig := range c.F1.Index.Keys() {
		pats = append(pats, c.edge(sig))
	}
	return pats
}

func (c *Catalog) Walks() []*Pattern {
	pats := make([]*Pattern, 0, c.F2.Index.Len())
	for _, key := range c.F2.Index.Keys() {
		pats = append(pats, c.walk(key))
	}
	return pats
}

func (c *Catalog) Chains() []*Pattern {
	pats := make([]*Pattern, 0, c.F3.Chains.Len())
	for _, key := range c.F3.Chains.Keys() {
		pats = append(pats, c.path(ChainPattern, key, c.F3.Chains.Get(key)))
	}
	return pats
}

func (c *Catalog) Triangles() []*Pattern {
	pats := make([]*Pattern, 0, c.F3.Triangles.Len())
	for _, key := range c.F3.Triangles.Keys() {
		pats = append(pats, c.path(TrianglePattern, key, c.F3.Triangles.Get(key)))
	}
	return pats
}

// Patterns lists the three edge chains then the triangles. With
// allLevels the single edges and two edge walks come first.
func (c *Catalog) Patterns(allLevels bool) []*Pattern {
	pats := make([]*Pattern, 0, c.F3.Chains.Len()+c.F3.Triangles.Len())
	if allLevels {
		pats = append(pats, c.Edges()...)
		pats = append(pats, c.Walks()...)
	}
	pats = append(pats, c.Chains()...)
	pats = append(pats, c.Triangles()...)
	return pats
}

package txgraph

import (
	"bytes"
	"context"
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

func mine(t *testing.T, g *Graph, support, workers int) *Catalog {
	c, err := Mine(context.Background(), g, support, workers)
	assert.Nil(t, err)
	return c
}

func TestFanIn(t *testing.T) {
	x := assert.New(t)
	c := mine(t, fanIn(t), 2, 1)
	x.Equal(1, c.F1.Index.Len())
	sig := c.F1.Index.Keys()[0]
	x.Equal(6, c.F1.Index.Count(sig))
	x.Equal(3, c.F1.G.VertexCount())
	x.Equal(6, c.F1.G.EdgeCount())
	x.Equal(0, c.F2.Index.Len())
	x.Equal(0, c.F3.Chains.Len())
	x.Equal(0, c.F3.Triangles.Len())
	x.Empty(c.Patterns(false))
	x.Len(c.Patterns(true), 1)
}

func TestTriangles(t *testing.T) {
	x := assert.New(t)
	ab, bc, ca := triangleSigs()
	c := mine(t, triangles(t, 10), 10, 1)
	x.Equal(3, c.F1.Index.Len())
	x.Equal([]Walk2Key{{ab, bc}, {bc, ca}, {ca, ab}}, c.F2.Index.Keys())
	for _, key := range c.F2.Index.Keys() {
		x.Equal(10, c.F2.Index.Count(key))
	}
	x.Equal(0, c.F3.Chains.Len())
	x.Equal(10, c.F3.Triangles.Get(Walk3Key{ab, bc, ca}))
	x.Equal([]Walk3Key{{ab, bc, ca}, {bc, ca, ab}, {ca, ab, bc}}, c.F3.Triangles.Keys())
	for _, key := range c.F3.Triangles.Keys() {
		x.Equal(10, c.F3.Triangles.Get(key))
	}
	x.Len(FoldRotations(c.Triangles()), 1)
}

func TestTrianglesBelowSupport(t *testing.T) {
	x := assert.New(t)
	c := mine(t, triangles(t, 10), 11, 1)
	x.Equal(0, c.F1.Index.Len())
	x.Equal(0, c.F1.G.VertexCount())
	x.Equal(0, c.F2.Index.Len())
	x.Equal(0, c.F3.Triangles.Len())
	x.Empty(c.Patterns(true))
}

func TestChains(t *testing.T) {
	x := assert.New(t)
	c := mine(t, paths(t, 4), 4, 1)
	x.Equal(3, c.F1.Index.Len())
	x.Equal(2, c.F2.Index.Len())
	x.Equal(1, c.F3.Chains.Len())
	x.Equal(0, c.F3.Triangles.Len())
	key := c.F3.Chains.Keys()[0]
	x.Equal(4, c.F3.Chains.Get(key))
	x.Equal(int64(10), key.First.Edge.Amount)
	x.Equal(int64(20), key.Second.Edge.Amount)
	x.Equal(int64(30), key.Third.Edge.Amount)
}

func TestSupportZeroKeepsEverything(t *testing.T) {
	x := assert.New(t)
	g := mixed(t)
	c := mine(t, g, 0, 1)
	x.Equal(g.Index().Len(), c.F1.Index.Len())
	x.Equal(g.EdgeCount(), c.F1.G.EdgeCount())
	x.Equal(g.VertexCount(), c.F1.G.VertexCount())
	x.True(c.F2.Index.Len() > 0)
	x.True(c.F3.Chains.Len() > 0)
}

func TestSupportAboveLargestBucket(t *testing.T) {
	x := assert.New(t)
	g := mixed(t)
	c := mine(t, g, g.EdgeCount()+1, 4)
	x.Equal(0, c.F1.Index.Len())
	x.Equal(0, c.F2.Index.Len())
	x.Equal(0, c.F3.Chains.Len())
	x.Equal(0, c.F3.Triangles.Len())
}

func TestSupportConsistency(t *testing.T) {
	x := assert.New(t)
	support := 3
	c := mine(t, mixed(t), support, 1)
	for _, sig := range c.F1.Index.Keys() {
		x.True(c.F1.Index.Count(sig) >= support)
	}
	for _, key := range c.F2.Index.Keys() {
		walks := c.F2.Index.Get(key)
		x.True(len(walks) >= support)
		seen := make(map[string]bool)
		for _, w := range walks {
			seen[string(w.Label())] = true
		}
		x.Equal(len(walks), len(seen))
	}
	for _, key := range c.F3.Chains.Keys() {
		x.True(c.F3.Chains.Get(key) >= support)
	}
	for _, key := range c.F3.Triangles.Keys() {
		x.True(c.F3.Triangles.Get(key) >= support)
	}
}

func TestWalkSelfSimilarityExcluded(t *testing.T) {
	x := assert.New(t)
	g := NewGraph()
	account(t, g, 1, 0)
	account(t, g, 2, 0)
	account(t, g, 3, 0)
	transfer(t, g, 1, 2, 5)
	transfer(t, g, 2, 3, 5)
	c := mine(t, g, 1, 1)
	x.Equal(1, c.F1.Index.Len())
	x.Equal(0, c.F2.Index.Len())
}

func TestPathSelfSimilarityExcluded(t *testing.T) {
	x := assert.New(t)
	g := NewGraph()
	account(t, g, 1, 0)
	account(t, g, 2, 1)
	account(t, g, 3, 0)
	account(t, g, 4, 1)
	transfer(t, g, 1, 2, 5)
	transfer(t, g, 2, 3, 7)
	transfer(t, g, 3, 4, 5)
	c := mine(t, g, 1, 1)
	x.Equal(2, c.F1.Index.Len())
	x.Equal(2, c.F2.Index.Len())
	x.Equal(0, c.F3.Chains.Len())
	x.Equal(0, c.F3.Triangles.Len())
	for _, key := range c.F2.Index.Keys() {
		x.NotEqual(key.First, key.Second)
	}
}

func TestNoBacktrack(t *testing.T) {
	x := assert.New(t)
	g := NewGraph()
	account(t, g, 1, 0)
	account(t, g, 2, 1)
	transfer(t, g, 1, 2, 5)
	transfer(t, g, 2, 1, 7)
	c := mine(t, g, 1, 1)
	x.Equal(2, c.F1.Index.Len())
	x.Equal(0, c.F2.Index.Len())
}

func TestPathNoBacktrack(t *testing.T) {
	x := assert.New(t)
	g := NewGraph()
	account(t, g, 1, 0)
	account(t, g, 2, 1)
	account(t, g, 3, 2)
	account(t, g, 4, 0)
	transfer(t, g, 1, 2, 10)
	transfer(t, g, 2, 3, 20)
	transfer(t, g, 3, 2, 30)
	transfer(t, g, 3, 4, 40)
	// 5 -> 6 -> 7 makes the walk (2 -> 3, 3 -> 2) frequent on its own.
	account(t, g, 5, 1)
	account(t, g, 6, 2)
	account(t, g, 7, 1)
	transfer(t, g, 5, 6, 20)
	transfer(t, g, 6, 7, 30)

	sig := func(src, targ int, amt int64) Signature {
		return Signature{
			Src:  VertexAttrs{Kind: Account, Name: src},
			Edge: EdgeAttrs{Amount: amt, Strategy: 1, BusCode: 2},
			Targ: VertexAttrs{Kind: Account, Name: targ},
		}
	}
	s12, s23, s32, s34 := sig(0, 1, 10), sig(1, 2, 20), sig(2, 1, 30), sig(2, 0, 40)

	c := mine(t, g, 1, 1)
	x.True(c.F2.Index.Has(Walk2Key{s23, s32}))
	x.True(c.F2.Index.Has(Walk2Key{s23, s34}))
	x.False(c.F3.Chains.Has(Walk3Key{s12, s23, s32}))
	x.Equal([]Walk3Key{{s12, s23, s34}}, c.F3.Chains.Keys())
	x.Equal(1, c.F3.Chains.Get(Walk3Key{s12, s23, s34}))
	x.Equal(0, c.F3.Triangles.Len())
}

func TestClassify(t *testing.T) {
	x := assert.New(t)
	ab, bc, ca := triangleSigs()
	other := ab
	other.Edge.Amount = 999
	f2 := &Frequent2{Index: NewBuckets[Walk2Key, Walk2]()}
	f2.Index.Add(Walk2Key{ab, bc}, Walk2{})
	f2.Index.Add(Walk2Key{bc, ca}, Walk2{})
	f2.Index.Add(Walk2Key{bc, ab}, Walk2{})
	key := Walk2Key{ab, bc}

	x.Equal(Rejected, classify(f2, key, other, 1, 4))
	x.Equal(Rejected, classify(f2, key, ab, 1, 4))
	x.Equal(ChainPattern, classify(f2, key, ca, 1, 4))
	x.Equal(Rejected, classify(f2, key, ca, 1, 1))
	f2.Index.Add(Walk2Key{ca, ab}, Walk2{})
	x.Equal(TrianglePattern, classify(f2, key, ca, 1, 1))
	x.Equal(ChainPattern, classify(f2, key, ca, 1, 4))

	missing := ca
	missing.Edge.Amount = 1
	x.Equal(Rejected, classify(f2, key, missing, 1, 1))
}

func TestTopologyPartition(t *testing.T) {
	x := assert.New(t)
	c := mine(t, mixed(t), 2, 1)
	total := 0
	for _, key := range c.F2.Index.Keys() {
		for _, w := range c.F2.Index.Get(key) {
			v1, v2, v3id := w.Vertices()
			v3 := c.F1.G.V[v3id]
			for _, nbr := range v3.Neighbors() {
				if nbr.Targ == v2 {
					continue
				}
				for _, e3 := range nbr.Edges {
					s3 := EdgeSignature(v3, e3, c.F1.G.V[nbr.Targ])
					topo := classify(c.F2, key, s3, v1, nbr.Targ)
					x.Contains([]Topology{Rejected, ChainPattern, TrianglePattern}, topo)
					if nbr.Targ == v1 {
						x.NotEqual(ChainPattern, topo)
					} else {
						x.NotEqual(TrianglePattern, topo)
					}
					total++
				}
			}
		}
	}
	x.True(total > 0)
}

func format(t *testing.T, c *Catalog) []byte {
	var buf bytes.Buffer
	f := NewFormatter(nil)
	for _, p := range c.Patterns(true) {
		assert.Nil(t, f.FormatPattern(&buf, p))
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

func TestIdempotentAcrossWorkers(t *testing.T) {
	x := assert.New(t)
	for _, support := range []int{1, 2, 3} {
		expected := format(t, mine(t, mixed(t), support, 1))
		x.NotEmpty(expected)
		x.Equal(expected, format(t, mine(t, mixed(t), support, 1)))
		for _, workers := range []int{2, 3, 8, 64} {
			x.Equal(expected, format(t, mine(t, mixed(t), support, workers)), "support %d workers %d", support, workers)
		}
	}
}

func TestMineCancelled(t *testing.T) {
	x := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Mine(ctx, mixed(t), 1, 4)
	x.NotNil(err)
}

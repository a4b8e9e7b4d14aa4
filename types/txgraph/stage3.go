package txgraph

import (
	"context"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type Topology uint8

const (
	Rejected Topology = iota
	EdgePattern
	WalkPattern
	ChainPattern
	TrianglePattern
)

func (t Topology) String() string {
	switch t {
	case EdgePattern:
		return "edge"
	case WalkPattern:
		return "walk"
	case ChainPattern:
		return "chain"
	case TrianglePattern:
		return "triangle"
	default:
		return "rejected"
	}
}

// Frequent3 holds the supports of the frequent three edge patterns, open
// chains over four vertices and closed triangles over three, counted
// separately.
type Frequent3 struct {
	Chains    *Counts[Walk3Key]
	Triangles *Counts[Walk3Key]
	Support   int
}

type walk3Counts struct {
	chains, triangles *Counts[Walk3Key]
}

func FrequentPaths(ctx context.Context, f1 *Frequent1, f2 *Frequent2, support, workers int) (*Frequent3, error) {
	keys := f2.Index.Keys()
	parts := make([]walk3Counts, len(keys))
	n, err := fanOut(ctx, workers, len(keys), func(ctx context.Context, shard, lo, hi int) error {
		part := walk3Counts{
			chains:    NewCounts[Walk3Key](),
			triangles: NewCounts[Walk3Key](),
		}
		for _, key := range keys[lo:hi] {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, w := range f2.Index.Get(key) {
				extendPath(f1.G, f2, key, w, part)
			}
		}
		parts[shard] = part
		return nil
	})
	if err != nil {
		return nil, err
	}
	chains := NewCounts[Walk3Key]()
	triangles := NewCounts[Walk3Key]()
	for _, part := range parts[:n] {
		chains.Extend(part.chains)
		triangles.Extend(part.triangles)
	}
	f3 := &Frequent3{
		Chains:    chains.Threshold(support),
		Triangles: triangles.Threshold(support),
		Support:   support,
	}
	errors.Logf("INFO", "3-edge chains: candidates %d, frequent patterns %d", chains.Len(), f3.Chains.Len())
	errors.Logf("INFO", "3-edge triangles: candidates %d, frequent patterns %d", triangles.Len(), f3.Triangles.Len())
	return f3, nil
}

func extendPath(g *Graph, f2 *Frequent2, key Walk2Key, w Walk2, counts walk3Counts) {
	v1, v2, v3id := w.Vertices()
	v3 := g.V[v3id]
	for _, nbr := range v3.Neighbors() {
		if nbr.Targ == v2 {
			continue
		}
		v4 := g.V[nbr.Targ]
		for _, e3 := range nbr.Edges {
			s3 := EdgeSignature(v3, e3, v4)
			switch classify(f2, key, s3, v1, nbr.Targ) {
			case ChainPattern:
				counts.chains.Inc(Walk3Key{key.First, key.Second, s3})
			case TrianglePattern:
				counts.triangles.Inc(Walk3Key{key.First, key.Second, s3})
			}
		}
	}
}

// classify decides what the walk key followed by an edge with signature
// s3 ending at v4 becomes. Both two edge sub-walks must be frequent and
// the third edge may not repeat the first edge's signature. A walk that
// returns to v1 is a triangle only if the walk closing it, third edge
// then first edge, is frequent as well.
func classify(f2 *Frequent2, key Walk2Key, s3 Signature, v1, v4 int64) Topology {
	if !f2.Has(Walk2Key{key.Second, s3}) {
		return Rejected
	}
	if key.First == s3 {
		return Rejected
	}
	if v4 != v1 {
		return ChainPattern
	}
	if f2.Has(Walk2Key{s3, key.First}) {
		return TrianglePattern
	}
	return Rejected
}

package txgraph

import (
	"context"
	"encoding/binary"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Walk2 is one concrete occurrence of a two edge walk v1 -> v2 -> v3.
type Walk2 struct {
	E1, E2 *Edge
}

func (w Walk2) Vertices() (v1, v2, v3 int64) {
	return w.E1.Src, w.E1.Targ, w.E2.Targ
}

// Label identifies the occurrence by its edge ids.
func (w Walk2) Label() []byte {
	label := make([]byte, 8)
	binary.BigEndian.PutUint32(label[0:4], uint32(w.E1.Id))
	binary.BigEndian.PutUint32(label[4:8], uint32(w.E2.Id))
	return label
}

type Frequent2 struct {
	Index   *Buckets[Walk2Key, Walk2]
	Support int
}

func (f *Frequent2) Has(key Walk2Key) bool {
	return f.Index.Has(key)
}

// FrequentWalks extends every frequent edge occurrence by one hop through
// the pruned subgraph. The second hop may not return to the first vertex
// and may not repeat the signature of the first edge.
func FrequentWalks(ctx context.Context, f1 *Frequent1, support, workers int) (*Frequent2, error) {
	sigs := f1.Index.Keys()
	parts := make([]*Buckets[Walk2Key, Walk2], len(sigs))
	n, err := fanOut(ctx, workers, len(sigs), func(ctx context.Context, shard, lo, hi int) error {
		walks := NewBuckets[Walk2Key, Walk2]()
		for _, s1 := range sigs[lo:hi] {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, e1 := range f1.Index.Get(s1) {
				extendWalk(f1.G, s1, e1, walks)
			}
		}
		parts[shard] = walks
		return nil
	})
	if err != nil {
		return nil, err
	}
	all := NewBuckets[Walk2Key, Walk2]()
	for _, part := range parts[:n] {
		all.Extend(part)
	}
	index := all.Threshold(support)
	errors.Logf("INFO", "2-edge walks: candidates %d, occurrences %d, frequent patterns %d (largest %d)",
		all.Len(), all.Size(), index.Len(), largest(index.Sizes()))
	return &Frequent2{
		Index:   index,
		Support: support,
	}, nil
}

func extendWalk(g *Graph, s1 Signature, e1 *Edge, walks *Buckets[Walk2Key, Walk2]) {
	v2 := g.V[e1.Targ]
	for _, nbr := range v2.Neighbors() {
		if nbr.Targ == e1.Src {
			continue
		}
		v3 := g.V[nbr.Targ]
		for _, e2 := range nbr.Edges {
			s2 := EdgeSignature(v2, e2, v3)
			if s1 == s2 {
				continue
			}
			walks.Add(Walk2Key{s1, s2}, Walk2{e1, e2})
		}
	}
}

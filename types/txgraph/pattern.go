package txgraph

import (
	"bytes"
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
)

// Pattern is a frequent pattern of the catalog: a single edge, a two
// edge walk, an open three edge chain or a closed triangle.
type Pattern struct {
	Topology Topology
	Sigs     []Signature
	support  int
	catalog  *Catalog
}

type PatternEdge struct {
	Src, Targ int
	Attrs     EdgeAttrs
}

func (p *Pattern) Support() int {
	return p.support
}

func (p *Pattern) Level() int {
	return len(p.Sigs)
}

func (p *Pattern) Label() []byte {
	label := make([]byte, 1, 1+len(p.Sigs)*sigLabelSize)
	label[0] = byte(p.Topology)
	for _, sig := range p.Sigs {
		label = sig.appendLabel(label)
	}
	return label
}

func (p *Pattern) Equals(o types.Equatable) bool {
	a := types.ByteSlice(p.Label())
	switch b := o.(type) {
	case *Pattern:
		return a.Equals(types.ByteSlice(b.Label()))
	default:
		return false
	}
}

func (p *Pattern) Less(o types.Sortable) bool {
	a := types.ByteSlice(p.Label())
	switch b := o.(type) {
	case *Pattern:
		return a.Less(types.ByteSlice(b.Label()))
	default:
		return false
	}
}

func (p *Pattern) Hash() int {
	return types.ByteSlice(p.Label()).Hash()
}

// Parents are the sub-walks this pattern was grown from.
func (p *Pattern) Parents() ([]lattice.Pattern, error) {
	if p.catalog == nil {
		return nil, nil
	}
	c := p.catalog
	parents := make([]lattice.Pattern, 0, len(p.Sigs))
	switch p.Topology {
	case EdgePattern:
	case WalkPattern:
		for _, sig := range p.Sigs {
			parents = append(parents, c.edge(sig))
		}
	case ChainPattern:
		parents = append(parents, c.walk(Walk2Key{p.Sigs[0], p.Sigs[1]}))
		parents = append(parents, c.walk(Walk2Key{p.Sigs[1], p.Sigs[2]}))
	case TrianglePattern:
		parents = append(parents, c.walk(Walk2Key{p.Sigs[0], p.Sigs[1]}))
		parents = append(parents, c.walk(Walk2Key{p.Sigs[1], p.Sigs[2]}))
		parents = append(parents, c.walk(Walk2Key{p.Sigs[2], p.Sigs[0]}))
	default:
		return nil, errors.Errorf("unknown topology %v", p.Topology)
	}
	return parents, nil
}

// Rotations lists the triangle started at each of its edges. Any other
// topology only has itself.
func (p *Pattern) Rotations() []*Pattern {
	if p.Topology != TrianglePattern {
		return []*Pattern{p}
	}
	rots := make([]*Pattern, 0, len(p.Sigs))
	for i := range p.Sigs {
		sigs := make([]Signature, 0, len(p.Sigs))
		sigs = append(sigs, p.Sigs[i:]...)
		sigs = append(sigs, p.Sigs[:i]...)
		rots = append(rots, &Pattern{
			Topology: p.Topology,
			Sigs:     sigs,
			support:  p.support,
			catalog:  p.catalog,
		})
	}
	return rots
}

// Canonical is the rotation with the smallest label.
func (p *Pattern) Canonical() *Pattern {
	var min *Pattern
	var minLabel []byte
	for _, rot := range p.Rotations() {
		label := rot.Label()
		if min == nil || bytes.Compare(label, minLabel) < 0 {
			min = rot
			minLabel = label
		}
	}
	return min
}

// FoldRotations keeps the first pattern seen of each rotation class.
func FoldRotations(pats []*Pattern) []*Pattern {
	labels := set.NewSortedSet(len(pats))
	folded := make([]*Pattern, 0, len(pats))
	for _, p := range pats {
		label := types.ByteSlice(p.Canonical().Label())
		if !labels.Has(label) {
			labels.Add(label)
			folded = append(folded, p)
		}
	}
	return folded
}

// Vertices are the pattern's nodes in walk order. A triangle has one
// fewer node than edges since its walk ends where it started.
func (p *Pattern) Vertices() []VertexAttrs {
	if len(p.Sigs) == 0 {
		return nil
	}
	verts := make([]VertexAttrs, 0, len(p.Sigs)+1)
	verts = append(verts, p.Sigs[0].Src)
	for _, sig := range p.Sigs {
		verts = append(verts, sig.Targ)
	}
	if p.Topology == TrianglePattern {
		verts = verts[:len(verts)-1]
	}
	return verts
}

func (p *Pattern) Edges() []PatternEdge {
	n := len(p.Vertices())
	edges := make([]PatternEdge, 0, len(p.Sigs))
	for i, sig := range p.Sigs {
		edges = append(edges, PatternEdge{
			Src:   i,
			Targ:  (i + 1) % n,
			Attrs: sig.Edge,
		})
	}
	return edges
}

func (p *Pattern) String() string {
	sigs := make([]string, 0, len(p.Sigs))
	for _, sig := range p.Sigs {
		sigs = append(sigs, sig.String())
	}
	return fmt.Sprintf("%v(support=%d) %s", p.Topology, p.support, strings.Join(sigs, " "))
}

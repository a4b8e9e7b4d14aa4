package txgraph

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type Edge struct {
	Id        int
	Src, Targ int64
	Attrs     EdgeAttrs
}

func (e *Edge) String() string {
	return fmt.Sprintf("%d:(%d)-[%v]->(%d)", e.Id, e.Src, e.Attrs, e.Targ)
}

type Vertex struct {
	Id    int64
	Attrs VertexAttrs
	targs []int64
	adj   map[int64][]*Edge
}

type Neighbor struct {
	Targ  int64
	Edges []*Edge
}

// Neighbors lists the outgoing edges grouped by target, targets in the
// order their first edge was added.
func (v *Vertex) Neighbors() []Neighbor {
	nbrs := make([]Neighbor, 0, len(v.targs))
	for _, targ := range v.targs {
		nbrs = append(nbrs, Neighbor{Targ: targ, Edges: v.adj[targ]})
	}
	return nbrs
}

func (v *Vertex) EdgesTo(targ int64) []*Edge {
	return v.adj[targ]
}

func (v *Vertex) OutDegree() int {
	deg := 0
	for _, edges := range v.adj {
		deg += len(edges)
	}
	return deg
}

// Graph is a directed multigraph of accounts and cards. Every edge is
// owned by its source vertex and is also filed in the signature index.
type Graph struct {
	V        map[int64]*Vertex
	vids     []int64
	edges    int
	nextEdge int
	index    *Buckets[Signature, *Edge]
}

func NewGraph() *Graph {
	return &Graph{
		V:     make(map[int64]*Vertex),
		index: NewBuckets[Signature, *Edge](),
	}
}

// AddVertex inserts the vertex if the id is new. A repeated id is
// ignored and the first attributes stay in place.
func (g *Graph) AddVertex(id int64, attrs VertexAttrs) bool {
	if _, has := g.V[id]; has {
		return false
	}
	g.V[id] = &Vertex{
		Id:    id,
		Attrs: attrs,
		adj:   make(map[int64][]*Edge),
	}
	g.vids = append(g.vids, id)
	return true
}

func (g *Graph) AddEdge(src, targ int64, attrs EdgeAttrs) (*Edge, error) {
	if _, has := g.V[src]; !has {
		return nil, errors.Errorf("unknown src id %v", src)
	} else if _, has := g.V[targ]; !has {
		return nil, errors.Errorf("unknown targ id %v", targ)
	}
	e := &Edge{
		Id:    g.nextEdge,
		Src:   src,
		Targ:  targ,
		Attrs: attrs,
	}
	g.nextEdge++
	g.insert(e)
	return e, nil
}

// insert files an existing edge, keeping its id. Both endpoints must
// already be present.
func (g *Graph) insert(e *Edge) {
	u := g.V[e.Src]
	v := g.V[e.Targ]
	if _, has := u.adj[e.Targ]; !has {
		u.targs = append(u.targs, e.Targ)
	}
	u.adj[e.Targ] = append(u.adj[e.Targ], e)
	g.edges++
	if e.Id >= g.nextEdge {
		g.nextEdge = e.Id + 1
	}
	g.index.Add(EdgeSignature(u, e, v), e)
}

func (g *Graph) Vertex(id int64) (*Vertex, bool) {
	v, has := g.V[id]
	return v, has
}

func (g *Graph) Neighbors(id int64) []Neighbor {
	v, has := g.V[id]
	if !has {
		return nil
	}
	return v.Neighbors()
}

func (g *Graph) Signature(e *Edge) Signature {
	return EdgeSignature(g.V[e.Src], e, g.V[e.Targ])
}

// Vertices returns the vertex ids in insertion order.
func (g *Graph) Vertices() []int64 {
	return g.vids
}

func (g *Graph) VertexCount() int {
	return len(g.V)
}

func (g *Graph) EdgeCount() int {
	return g.edges
}

// Index maps every 1-edge signature to the edges carrying it.
func (g *Graph) Index() *Buckets[Signature, *Edge] {
	return g.index
}

func (g *Graph) String() string {
	return fmt.Sprintf("Graph{V: %d, E: %d, signatures: %d}", g.VertexCount(), g.EdgeCount(), g.index.Len())
}

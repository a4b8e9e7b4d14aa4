package txgraph

import (
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

func account(t *testing.T, g *Graph, id int64, name int) {
	assert.True(t, g.AddVertex(id, VertexAttrs{Kind: Account, Name: name}))
}

func transfer(t *testing.T, g *Graph, src, targ int64, amt int64) *Edge {
	e, err := g.AddEdge(src, targ, EdgeAttrs{Amount: amt, Strategy: 1, BusCode: 2})
	assert.Nil(t, err)
	return e
}

// fanIn has accounts 1 and 2 each send three identical transfers to 3.
func fanIn(t *testing.T) *Graph {
	g := NewGraph()
	account(t, g, 1, 0)
	account(t, g, 2, 0)
	account(t, g, 3, 1)
	for i := 0; i < 3; i++ {
		transfer(t, g, 1, 3, 500)
		transfer(t, g, 2, 3, 500)
	}
	return g
}

// triangles builds n disjoint copies of a -> b -> c -> a with the same
// attributes on each hop.
func triangles(t *testing.T, n int) *Graph {
	g := NewGraph()
	for i := 0; i < n; i++ {
		a, b, c := int64(3*i+1), int64(3*i+2), int64(3*i+3)
		account(t, g, a, 0)
		account(t, g, b, 1)
		account(t, g, c, 2)
		transfer(t, g, a, b, 100)
		transfer(t, g, b, c, 200)
		transfer(t, g, c, a, 300)
	}
	return g
}

func triangleSigs() (ab, bc, ca Signature) {
	a := VertexAttrs{Kind: Account, Name: 0}
	b := VertexAttrs{Kind: Account, Name: 1}
	c := VertexAttrs{Kind: Account, Name: 2}
	ab = Signature{Src: a, Edge: EdgeAttrs{Amount: 100, Strategy: 1, BusCode: 2}, Targ: b}
	bc = Signature{Src: b, Edge: EdgeAttrs{Amount: 200, Strategy: 1, BusCode: 2}, Targ: c}
	ca = Signature{Src: c, Edge: EdgeAttrs{Amount: 300, Strategy: 1, BusCode: 2}, Targ: a}
	return ab, bc, ca
}

// paths builds n disjoint copies of the open chain 1 -> 2 -> 3 -> 4.
func paths(t *testing.T, n int) *Graph {
	g := NewGraph()
	for i := 0; i < n; i++ {
		base := int64(4 * i)
		for j := int64(1); j <= 4; j++ {
			account(t, g, base+j, int(j%3))
		}
		transfer(t, g, base+1, base+2, 10)
		transfer(t, g, base+2, base+3, 20)
		transfer(t, g, base+3, base+4, 30)
	}
	return g
}

// mixed is a denser graph with repeated attributes, chains and cycles.
func mixed(t *testing.T) *Graph {
	g := NewGraph()
	for i := int64(0); i < 30; i++ {
		account(t, g, i, int(i%3))
	}
	amts := []int64{10, 20, 30}
	for i := int64(0); i < 30; i++ {
		transfer(t, g, i, (i+1)%30, amts[i%3])
		transfer(t, g, i, (i+7)%30, amts[(i+1)%3])
		if i%2 == 0 {
			transfer(t, g, i, (i+13)%30, amts[i%3])
		}
	}
	return g
}

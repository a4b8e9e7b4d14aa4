package txgraph

import (
	"encoding/binary"
	"fmt"
)

// Signature is the attribute-only identity of a single edge. Two edges
// with structurally identical endpoint and edge attributes share a
// Signature regardless of which vertices they connect.
type Signature struct {
	Src  VertexAttrs
	Edge EdgeAttrs
	Targ VertexAttrs
}

const sigLabelSize = 5 + 16 + 5

func EdgeSignature(src *Vertex, e *Edge, targ *Vertex) Signature {
	return Signature{
		Src:  src.Attrs,
		Edge: e.Attrs,
		Targ: targ.Attrs,
	}
}

func (s Signature) appendLabel(label []byte) []byte {
	var buf [sigLabelSize]byte
	buf[0] = byte(s.Src.Kind)
	binary.BigEndian.PutUint32(buf[1:5], uint32(int32(s.Src.Name)))
	binary.BigEndian.PutUint64(buf[5:13], uint64(s.Edge.Amount))
	binary.BigEndian.PutUint32(buf[13:17], uint32(int32(s.Edge.Strategy)))
	binary.BigEndian.PutUint32(buf[17:21], uint32(int32(s.Edge.BusCode)))
	buf[21] = byte(s.Targ.Kind)
	binary.BigEndian.PutUint32(buf[22:26], uint32(int32(s.Targ.Name)))
	return append(label, buf[:]...)
}

func (s Signature) Label() []byte {
	return s.appendLabel(make([]byte, 0, sigLabelSize))
}

func (s Signature) String() string {
	return fmt.Sprintf("(%v)-[%v]->(%v)", s.Src, s.Edge, s.Targ)
}

// Walk2Key identifies a directed walk of two edges. The order of the
// signatures is the walk direction: {a, b} and {b, a} are different keys.
type Walk2Key struct {
	First, Second Signature
}

func (k Walk2Key) Label() []byte {
	label := make([]byte, 0, 2*sigLabelSize)
	label = k.First.appendLabel(label)
	return k.Second.appendLabel(label)
}

func (k Walk2Key) String() string {
	return fmt.Sprintf("%v %v", k.First, k.Second)
}

type Walk3Key struct {
	First, Second, Third Signature
}

func (k Walk3Key) Label() []byte {
	label := make([]byte, 0, 3*sigLabelSize)
	label = k.First.appendLabel(label)
	label = k.Second.appendLabel(label)
	return k.Third.appendLabel(label)
}

func (k Walk3Key) String() string {
	return fmt.Sprintf("%v %v %v", k.First, k.Second, k.Third)
}

func (k Walk3Key) Sigs() []Signature {
	return []Signature{k.First, k.Second, k.Third}
}

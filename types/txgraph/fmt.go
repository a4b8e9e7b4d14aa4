package txgraph

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"strconv"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
)

type NodeRecord struct {
	NodeId string `json:"node_id"`
	Name   string `json:"name"`
}

type EdgeRecord struct {
	SrcId    string `json:"source_node_id"`
	TargId   string `json:"target_node_id"`
	Amt      string `json:"amt"`
	Strategy string `json:"strategy_name"`
	BusCode  string `json:"buscode"`
}

type Record struct {
	Frequency int          `json:"frequency"`
	Nodes     []NodeRecord `json:"nodes"`
	Edges     []EdgeRecord `json:"edges"`
}

type Formatter struct {
	names *Names
}

func NewFormatter(names *Names) *Formatter {
	if names == nil {
		names = DefaultNames()
	}
	return &Formatter{names: names}
}

func (f *Formatter) FileExt() string {
	return ".json"
}

// PatternName names a pattern independently of which triangle edge its
// walk started on.
func (f *Formatter) PatternName(node lattice.Pattern) string {
	switch p := node.(type) {
	case *Pattern:
		c := p.Canonical()
		return c.Topology.String() + "-" + hex.EncodeToString(c.Label()[1:])
	default:
		panic(errors.Errorf("unknown pattern type %T %v", node, node))
	}
}

func (f *Formatter) Record(p *Pattern) *Record {
	verts := p.Vertices()
	rec := &Record{
		Frequency: p.Support(),
		Nodes:     make([]NodeRecord, 0, len(verts)),
		Edges:     make([]EdgeRecord, 0, len(p.Sigs)),
	}
	for i, v := range verts {
		rec.Nodes = append(rec.Nodes, NodeRecord{
			NodeId: strconv.Itoa(i),
			Name:   f.names.Label(v.Name),
		})
	}
	for _, e := range p.Edges() {
		rec.Edges = append(rec.Edges, EdgeRecord{
			SrcId:    strconv.Itoa(e.Src),
			TargId:   strconv.Itoa(e.Targ),
			Amt:      strconv.FormatInt(e.Attrs.Amount, 10),
			Strategy: strconv.Itoa(e.Attrs.Strategy),
			BusCode:  strconv.Itoa(e.Attrs.BusCode),
		})
	}
	return rec
}

// FormatPattern writes the pattern's record as one indented JSON value
// without a trailing newline, ready to sit inside a JSON array.
func (f *Formatter) FormatPattern(w io.Writer, node lattice.Pattern) error {
	p, ok := node.(*Pattern)
	if !ok {
		return errors.Errorf("unknown pattern type %T %v", node, node)
	}
	data, err := json.MarshalIndent(f.Record(p), "  ", "  ")
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  "); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

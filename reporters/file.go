package reporters

import (
	"encoding/json"
	"io"
	"os"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/config"
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
)

// File writes the reported patterns as one JSON array. When a lattice
// name is given it also writes, one JSON object per line, the lattice of
// sub-patterns each reported pattern was grown from.
type File struct {
	config   *config.Config
	fmtr     lattice.Formatter
	patterns io.WriteCloser
	lattices io.WriteCloser
	count    int
}

type latticeNode struct {
	Name    string `json:"name"`
	Level   int    `json:"level"`
	Support int    `json:"support"`
}

type latticeEdge struct {
	Src  int `json:"src"`
	Targ int `json:"targ"`
}

type latticeRecord struct {
	Pattern string        `json:"pattern"`
	Nodes   []latticeNode `json:"nodes"`
	Edges   []latticeEdge `json:"edges"`
}

func NewFile(c *config.Config, fmtr lattice.Formatter, patternsFilename, latticeFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	var lattices io.WriteCloser
	if latticeFilename != "" {
		lattices, err = os.Create(c.OutputFile(latticeFilename + ".jsonl"))
		if err != nil {
			patterns.Close()
			return nil, err
		}
	}
	r := &File{
		config:   c,
		fmtr:     fmtr,
		patterns: patterns,
		lattices: lattices,
	}
	return r, nil
}

func (r *File) Report(p lattice.Pattern) error {
	sep := ",\n"
	if r.count == 0 {
		sep = "[\n"
	}
	if _, err := io.WriteString(r.patterns, sep); err != nil {
		return err
	}
	if err := r.fmtr.FormatPattern(r.patterns, p); err != nil {
		return err
	}
	r.count++
	if r.lattices != nil {
		return r.writeLattice(p)
	}
	return nil
}

func (r *File) writeLattice(p lattice.Pattern) error {
	rec, err := makeLatticeRecord(r.fmtr, p)
	if err != nil {
		return err
	}
	return json.NewEncoder(r.lattices).Encode(rec)
}

func makeLatticeRecord(fmtr lattice.Formatter, p lattice.Pattern) (*latticeRecord, error) {
	l, err := lattice.MakeLattice(p)
	if err != nil {
		return nil, err
	}
	rec := &latticeRecord{
		Pattern: fmtr.PatternName(p),
		Nodes:   make([]latticeNode, 0, len(l.V)),
		Edges:   make([]latticeEdge, 0, len(l.E)),
	}
	for _, v := range l.V {
		rec.Nodes = append(rec.Nodes, latticeNode{
			Name:    fmtr.PatternName(v),
			Level:   v.Level(),
			Support: v.Support(),
		})
	}
	for _, e := range l.E {
		rec.Edges = append(rec.Edges, latticeEdge{Src: e.Src, Targ: e.Targ})
	}
	return rec, nil
}

func (r *File) Close() error {
	end := "\n]\n"
	if r.count == 0 {
		end = "[]\n"
	}
	if _, err := io.WriteString(r.patterns, end); err != nil {
		r.patterns.Close()
		return err
	}
	err := r.patterns.Close()
	if err != nil {
		return err
	}
	if r.lattices != nil {
		return r.lattices.Close()
	}
	return nil
}

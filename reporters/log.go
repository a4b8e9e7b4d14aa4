package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
)

type Log struct {
	fmtr   lattice.Formatter
	level  string
	prefix string
	count  int
}

func NewLog(fmtr lattice.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) Report(p lattice.Pattern) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v", lr.prefix, lr.count, p)
	} else {
		errors.Logf(lr.level, "%v %v", lr.count, p)
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}

package txgraph

import (
	"fmt"
)

// CardIdOffset moves card identifiers out of the account identifier range.
const CardIdOffset = 800000

// Sentinel is substituted for any field that could not be parsed.
const Sentinel = -1

type Kind uint8

const (
	Account Kind = iota
	Card
)

func (k Kind) String() string {
	switch k {
	case Account:
		return "account"
	case Card:
		return "card"
	default:
		return fmt.Sprintf("kind-[%d]", uint8(k))
	}
}

type VertexAttrs struct {
	Kind Kind
	Name int
}

func (a VertexAttrs) String() string {
	return fmt.Sprintf("%v:%d", a.Kind, a.Name)
}

type EdgeAttrs struct {
	Amount   int64
	Strategy int
	BusCode  int
}

func (a EdgeAttrs) String() string {
	return fmt.Sprintf("amt=%d strategy=%d buscode=%d", a.Amount, a.Strategy, a.BusCode)
}

// Names is the fixed mapping between entity name labels and their codes.
type Names struct {
	codes  map[string]int
	labels []string
}

func NewNames(labels ...string) *Names {
	n := &Names{
		codes:  make(map[string]int, len(labels)),
		labels: make([]string, 0, len(labels)),
	}
	for _, label := range labels {
		if _, has := n.codes[label]; has {
			continue
		}
		n.codes[label] = len(n.labels)
		n.labels = append(n.labels, label)
	}
	return n
}

func DefaultNames() *Names {
	return NewNames("Jobs", "Mike", "John")
}

func (n *Names) Code(label string) int {
	if code, has := n.codes[label]; has {
		return code
	}
	return Sentinel
}

func (n *Names) Label(code int) string {
	if code < 0 || code >= len(n.labels) {
		return "Unknown"
	}
	return n.labels[code]
}

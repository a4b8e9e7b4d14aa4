package lattice

// MakeLattice collects p and every sub-pattern reachable through Parents.
// The vertices are ordered smallest level first and an edge (i, j) says
// V[i] is a parent of V[j].
func MakeLattice(p Pattern) (*Lattice, error) {
	pop := func(queue []Pattern) (Pattern, []Pattern) {
		n := queue[0]
		copy(queue[0:len(queue)-1], queue[1:len(queue)])
		queue = queue[0 : len(queue)-1]
		return n, queue
	}
	queue := make([]Pattern, 0, 10)
	queue = append(queue, p)
	queued := make(map[string]bool)
	queued[string(p.Label())] = true
	rlattice := make([]Pattern, 0, 10)
	parentsOf := make(map[string][]Pattern)
	for len(queue) > 0 {
		var n Pattern
		n, queue = pop(queue)
		rlattice = append(rlattice, n)
		parents, err := n.Parents()
		if err != nil {
			return nil, err
		}
		parentsOf[string(n.Label())] = parents
		for _, parent := range parents {
			l := string(parent.Label())
			if !queued[l] {
				queue = append(queue, parent)
				queued[l] = true
			}
		}
	}
	lattice := make([]Pattern, 0, len(rlattice))
	labels := make(map[string]int, len(rlattice))
	for i := len(rlattice) - 1; i >= 0; i-- {
		lattice = append(lattice, rlattice[i])
		labels[string(rlattice[i].Label())] = len(lattice) - 1
	}
	edges := make([]Edge, 0, len(lattice)*2)
	for j, n := range lattice {
		for _, parent := range parentsOf[string(n.Label())] {
			if i, has := labels[string(parent.Label())]; has {
				edges = append(edges, Edge{Src: i, Targ: j})
			}
		}
	}
	return &Lattice{lattice, edges}, nil
}

package molecule

import "sort"

// perceiveRings is Pass 1: compute the Smallest Set of Smallest Rings
// (SSSR) and annotate IsInRing / SmallestRingSize.
//
// The algorithm: for each bond, suppress it and find the shortest
// alternative path between its endpoints by BFS; the path plus the
// suppressed bond is a candidate cycle. The candidate set is then
// reduced to a minimal cycle basis via Gaussian elimination over GF(2)
// on bond-incidence vectors, with shorter candidates tried first so
// they win as basis pivots whenever they are independent.
func perceiveRings(m *AnnotatedMolecule) error {
	n := len(m.Atoms)
	if n == 0 {
		return nil
	}

	components := countComponents(n, m.Bonds)
	cyclomatic := len(m.Bonds) - n + components
	if cyclomatic <= 0 {
		return nil
	}

	adj := buildNeighborAtomBond(n, m.Bonds)
	candidates := collectRingCandidates(m, adj)
	candidates = dedupRingCandidates(candidates)

	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].atoms) != len(candidates[j].atoms) {
			return len(candidates[i].atoms) < len(candidates[j].atoms)
		}
		return lexLessInts(candidates[i].atoms, candidates[j].atoms)
	})

	numBonds := len(m.Bonds)
	basis := make(map[int][]bool)
	var rings []ringCandidate
	for _, c := range candidates {
		if len(rings) >= cyclomatic {
			break
		}
		cur := make([]bool, numBonds)
		for _, bid := range c.bonds {
			cur[bid] = true
		}
		for {
			p := firstSetBit(cur)
			if p == -1 {
				break // linearly dependent on the existing basis: not a new independent ring
			}
			row, ok := basis[p]
			if !ok {
				basis[p] = cur
				rings = append(rings, c)
				break
			}
			cur = xorVec(cur, row)
		}
	}

	m.Rings = make([]map[int]struct{}, 0, len(rings))
	for _, r := range rings {
		set := make(map[int]struct{}, len(r.atoms))
		for _, a := range r.atoms {
			set[a] = struct{}{}
		}
		m.Rings = append(m.Rings, set)
	}

	for i := range m.Atoms {
		m.Atoms[i].IsInRing = false
		m.Atoms[i].SmallestRingSize = 0
	}
	for _, ring := range m.Rings {
		size := len(ring)
		for atomID := range ring {
			a := &m.Atoms[atomID]
			a.IsInRing = true
			if a.SmallestRingSize == 0 || size < a.SmallestRingSize {
				a.SmallestRingSize = size
			}
		}
	}
	return nil
}

type ringCandidate struct {
	atoms []int // sorted, unique
	bonds []int // sorted, unique
}

type neighborEdge struct {
	atom, bond int
}

func buildNeighborAtomBond(n int, bonds []AnnotatedBond) [][]neighborEdge {
	adj := make([][]neighborEdge, n)
	for _, b := range bonds {
		adj[b.A] = append(adj[b.A], neighborEdge{b.B, b.ID})
		adj[b.B] = append(adj[b.B], neighborEdge{b.A, b.ID})
	}
	for i := range adj {
		sort.Slice(adj[i], func(x, y int) bool { return adj[i][x].atom < adj[i][y].atom })
	}
	return adj
}

func countComponents(n int, bonds []AnnotatedBond) int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, b := range bonds {
		union(b.A, b.B)
	}
	roots := make(map[int]struct{})
	for i := range parent {
		roots[find(i)] = struct{}{}
	}
	return len(roots)
}

// collectRingCandidates builds one candidate cycle per bond (when a
// detour exists), enumerating bonds in ascending id order for
// determinism.
func collectRingCandidates(m *AnnotatedMolecule, adj [][]neighborEdge) []ringCandidate {
	var candidates []ringCandidate
	for _, e := range m.Bonds {
		atoms, bonds, ok := shortestPathExcluding(adj, e.A, e.B, e.ID, len(m.Atoms))
		if !ok {
			continue
		}
		bonds = append(bonds, e.ID)
		sort.Ints(atoms)
		sort.Ints(bonds)
		candidates = append(candidates, ringCandidate{atoms: atoms, bonds: bonds})
	}
	return candidates
}

// shortestPathExcluding runs BFS from start to target over adj,
// ignoring the bond with id excludeBond, using reusable scratch
// buffers sized to n. It returns the full atom path (both endpoints
// included) and the bond ids traversed.
func shortestPathExcluding(adj [][]neighborEdge, start, target, excludeBond, n int) (atoms, bonds []int, ok bool) {
	visited := make([]bool, n)
	viaBond := make([]int, n)
	viaAtom := make([]int, n)
	for i := range viaAtom {
		viaAtom[i] = -1
	}
	queue := make([]int, 0, n)
	queue = append(queue, start)
	visited[start] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == target {
			break
		}
		for _, ne := range adj[cur] {
			if ne.bond == excludeBond || visited[ne.atom] {
				continue
			}
			visited[ne.atom] = true
			viaAtom[ne.atom] = cur
			viaBond[ne.atom] = ne.bond
			queue = append(queue, ne.atom)
		}
	}
	if !visited[target] {
		return nil, nil, false
	}

	cur := target
	for cur != start {
		atoms = append(atoms, cur)
		bonds = append(bonds, viaBond[cur])
		cur = viaAtom[cur]
	}
	atoms = append(atoms, start)
	return atoms, bonds, true
}

func dedupRingCandidates(in []ringCandidate) []ringCandidate {
	seen := make(map[string]struct{}, len(in))
	out := make([]ringCandidate, 0, len(in))
	for _, c := range in {
		key := intsKey(c.atoms)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func intsKey(xs []int) string {
	var sb []byte
	for i, x := range xs {
		if i > 0 {
			sb = append(sb, ',')
		}
		sb = appendInt(sb, x)
	}
	return string(sb)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func lexLessInts(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func firstSetBit(vec []bool) int {
	for i, v := range vec {
		if v {
			return i
		}
	}
	return -1
}

func xorVec(a, b []bool) []bool {
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] != b[i]
	}
	return out
}

package schema

import "log"

// SortTablesByFKCount orders tables so that every table comes after the tables it
// references. Cycles are broken by picking the table with the fewest unresolved
// dependencies, preferring tables that take part in the cycle.
func SortTablesByFKCount(tables []*Table) []*Table {
	byName := make(map[string]*Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}

	sorted := make([]*Table, 0, len(tables))
	processed := make(map[string]bool)

	for len(sorted) < len(tables) {
		added := false

		// Pass 1: tables whose dependencies are all placed, in input order.
		for _, t := range tables {
			if processed[t.Name] || !depsSatisfied(t, processed, byName) {
				continue
			}
			sorted = append(sorted, t)
			processed[t.Name] = true
			added = true
		}
		if added {
			continue
		}

		// Pass 2: cycle. Place the best scoring table and try again.
		var best *Table
		bestScore := 0
		for _, t := range tables {
			if processed[t.Name] {
				continue
			}
			score := -100 * unresolved(t, processed, byName)
			if inCycle(t, processed, byName) {
				score += 500
			}
			if best == nil || score > bestScore || (score == bestScore && t.Name < best.Name) {
				best, bestScore = t, score
			}
		}
		sorted = append(sorted, best)
		processed[best.Name] = true
		log.Printf("[Sort] Breaking circular dependency: %s (Score: %d)", best.Name, bestScore)
	}

	return sorted
}

// depsSatisfied ignores references to tables outside the input set.
func depsSatisfied(t *Table, processed map[string]bool, byName map[string]*Table) bool {
	return unresolved(t, processed, byName) == 0
}

func unresolved(t *Table, processed map[string]bool, byName map[string]*Table) int {
	n := 0
	for _, dep := range t.Dependencies {
		if _, known := byName[dep]; known && dep != t.Name && !processed[dep] {
			n++
		}
	}
	return n
}

// inCycle reports whether one of t's pending dependencies depends back on t.
func inCycle(t *Table, processed map[string]bool, byName map[string]*Table) bool {
	for _, dep := range t.Dependencies {
		if processed[dep] {
			continue
		}
		cand, ok := byName[dep]
		if !ok {
			continue
		}
		for _, back := range cand.Dependencies {
			if back == t.Name {
				return true
			}
		}
	}
	return false
}

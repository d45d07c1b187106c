package internal

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The dependency graph is implicit: edges live as sheet-level maps keyed by
// Position rather than as pointers between Cells. This keeps edges valid
// independent of a Cell's lifetime — in particular, ClearCell can delete a
// *Cell from the sheet's storage without leaving any other cell holding a
// dangling reference to it.

// checkCycle performs a DFS over the existing `referenced` edges starting
// from each position in refs, as if from is about to acquire refs as its
// outgoing edges. It reports ErrCircularDependency if the traversal would
// ever reach from itself. Positions in refs that don't yet have any outgoing
// edges are trivially leaves.
func (s *Sheet) checkCycle(from Position, refs []Position) error {
	visited := make(map[Position]struct{})

	var visit func(p Position) error
	visit = func(p Position) error {
		if p == from {
			return fmt.Errorf("%w: %s", ErrCircularDependency, from)
		}
		if _, ok := visited[p]; ok {
			return nil
		}
		visited[p] = struct{}{}
		for next := range s.referenced[p] {
			if err := visit(next); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range refs {
		if err := visit(r); err != nil {
			return err
		}
	}
	return nil
}

// invalidateTransitive clears the cached value of pos and of every cell
// reachable from it via reversed `dependents` edges. It is idempotent and
// terminates because the graph is acyclic.
func (s *Sheet) invalidateTransitive(pos Position) {
	visited := make(map[Position]struct{})

	var walk func(p Position)
	walk = func(p Position) {
		if _, ok := visited[p]; ok {
			return
		}
		visited[p] = struct{}{}
		if cell, ok := s.cells[p]; ok {
			cell.invalidate()
		}
		for dep := range s.dependents[p] {
			walk(dep)
		}
	}
	walk(pos)
}

// rewireReferences replaces pos's outgoing `referenced` edges with newRefs,
// updating the inverse `dependents` edges accordingly. Any position in
// newRefs without a backing Cell is auto-vivified as Empty, so GetCell
// returns a handle for it; the edge itself lives in the sheet-level maps.
func (s *Sheet) rewireReferences(pos Position, newRefs []Position) {
	for old := range s.referenced[pos] {
		if set, ok := s.dependents[old]; ok {
			delete(set, pos)
			if len(set) == 0 {
				delete(s.dependents, old)
			}
		}
	}

	if len(newRefs) == 0 {
		delete(s.referenced, pos)
		return
	}

	newSet := make(map[Position]struct{}, len(newRefs))
	for _, ref := range newRefs {
		newSet[ref] = struct{}{}
		s.getOrCreateCell(ref)
		if s.dependents[ref] == nil {
			s.dependents[ref] = make(map[Position]struct{})
		}
		s.dependents[ref][pos] = struct{}{}
	}
	s.referenced[pos] = newSet
}

// sortedReferenced returns pos's outgoing edges as a sorted, deduplicated
// slice, per Cell.GetReferencedCells.
func (s *Sheet) sortedReferenced(pos Position) []Position {
	set := s.referenced[pos]
	if len(set) == 0 {
		return nil
	}
	positions := maps.Keys(set)
	slices.SortFunc(positions, func(a, b Position) bool { return a.Less(b) })
	return positions
}

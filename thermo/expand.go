package thermo

import "sort"

// ExpandPD decomposes entries into maximal chemical subsystems and
// builds one PhaseDiagram per subsystem.
//
// Entries are visited by descending element count (ties broken by
// chemsys string); each entry whose chemical system is not yet covered
// by an earlier subsystem spawns a new diagram over every entry
// contained in that system. Overlapping subsystems therefore share
// entries; callers deduplicate by entry identity.
//
// The result maps the canonical chemsys key ("Mn-O-Y") to its diagram.
// Iterate via sorted keys for deterministic behavior.
func ExpandPD(entries []Entry) (map[string]*PhaseDiagram, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.Slice(ordered, func(i, j int) bool {
		ei, ej := ordered[i].Composition().Elements(), ordered[j].Composition().Elements()
		if len(ei) != len(ej) {
			return len(ei) > len(ej)
		}
		return ChemsysKey(ei) < ChemsysKey(ej)
	})

	out := make(map[string]*PhaseDiagram)
	var systems [][]string // element sets of already-built subsystems, in creation order
	for _, e := range ordered {
		elems := e.Composition().Elements()
		if coveredBy(elems, systems) {
			continue
		}

		var members []Entry
		for _, cand := range entries {
			if subsetOf(cand.Composition().Elements(), elems) {
				members = append(members, cand)
			}
		}
		pd, err := NewPhaseDiagram(members)
		if err != nil {
			return nil, err
		}
		out[ChemsysKey(elems)] = pd
		systems = append(systems, elems)
	}
	return out, nil
}

// coveredBy reports whether elems is a subset of any known subsystem.
func coveredBy(elems []string, systems [][]string) bool {
	for _, sys := range systems {
		if subsetOf(elems, sys) {
			return true
		}
	}
	return false
}

// subsetOf reports whether every symbol of sub appears in super.
// Both slices must be sorted.
func subsetOf(sub, super []string) bool {
	i := 0
	for _, sym := range sub {
		for i < len(super) && super[i] < sym {
			i++
		}
		if i >= len(super) || super[i] != sym {
			return false
		}
		i++
	}
	return true
}

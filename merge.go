package fsa

// mergeInto copies the part of source reachable from its initial state into target's namespace and returns
// the mapping from source states to target states. States are visited breadth first; each newly discovered
// state gets the first id >= startOffset that is not used in target, so copied states never collide with
// target's own states, including its initial and final states. Unreachable source states are dropped.
//
// If anchor is not nil, source's initial state is mapped onto *anchor instead of a fresh id. This is the only
// way a copied state lands on an id target already uses.
//
// Final states are not copied as final; callers read the mapping to decide where accepting lands.
func mergeInto(target, source *Automaton, startOffset State, anchor *State) map[State]State {
	mapping := make(map[State]State, source.NumStates())
	candidate := startOffset

	assign := func(s State) State {
		candidate = target.nextFree(candidate)
		target.states.Set(uint(candidate))
		mapping[s] = candidate
		candidate++
		return mapping[s]
	}

	if anchor != nil {
		mapping[source.initial] = *anchor
	} else {
		assign(source.initial)
	}

	workList := []State{source.initial}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		from := mapping[s]
		for _, t := range source.TransitionsFrom(s) {
			to, seen := mapping[t.Dest]
			if !seen {
				to = assign(t.Dest)
				workList = append(workList, t.Dest)
			}
			target.addEdge(from, t.Symbol, to)
		}
	}

	if candidate > target.next {
		target.next = candidate
	}
	return mapping
}

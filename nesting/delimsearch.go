package nesting

// searchOpen iterates configs in declaration order, running each open
// pattern against line starting at from, and keeps a running "best"
// match per the priority rule of §4.2: candidate M replaces best B iff
// B.Config.Comp(B, M) == false. The asymmetry (comp is asked only on the
// currently-held candidate) is load-bearing: ordering in configs breaks
// ties the default comparator leaves undetermined.
func searchOpen(line string, from int, configs []*Config) *Match {
	var best *Match
	for _, cfg := range configs {
		m := cfg.Open.Exec(line, from)
		if m == nil {
			continue
		}
		m.Config = cfg
		m.Role = RoleOpen
		m.OriginalIndex = m.Index
		m.AbsoluteIndex = from + m.Index
		if best == nil {
			best = m
			continue
		}
		if !best.Config.Comp(best, m) {
			best = m
		}
	}
	return best
}

// searchClose runs cfg's own close pattern (§4.1: absent close means
// closeAtSOL, a zero-width match that only succeeds at start of line).
func searchClose(line string, from int, cfg *Config, atSOL bool) *Match {
	if cfg.Close == closeAtSOL {
		if !atSOL {
			return nil
		}
		m := &Match{Index: 0, Length: 0, Groups: []string{""}, Text: ""}
		m.Config = cfg
		m.Role = RoleClose
		m.OriginalIndex = 0
		m.AbsoluteIndex = from
		return m
	}
	m := cfg.Close.Exec(line, from)
	if m == nil {
		return nil
	}
	m.Config = cfg
	m.Role = RoleClose
	m.OriginalIndex = m.Index
	m.AbsoluteIndex = from + m.Index
	return m
}

// searchMaskOpen is searchOpen specialized to a mask list, used both to
// enter a mask and (recursively) to check whether an already-active
// mask's own nested masks should fire first (§4.5).
func searchMaskOpen(line string, from int, masks []*Config) *Match {
	return searchOpen(line, from, masks)
}

// winsAgainst reports whether candidate beats an already-held incumbent
// match (e.g. a pendingEnd), using the same asymmetric rule searchOpen
// uses: the incumbent is asked (as "this") whether it defends itself
// against the candidate (as "other"); candidate wins iff it does not
// (§4.2's closing remark that the comparator shape is reused when
// comparing a candidate open against a known close).
func winsAgainst(candidate, incumbent *Match) bool {
	if candidate == nil {
		return false
	}
	if incumbent == nil {
		return true
	}
	return !incumbent.Config.Comp(incumbent, candidate)
}

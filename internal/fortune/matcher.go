package fortune

import "iter"

// Pattern reports whether a fortune's text matches. *regexp.Regexp
// satisfies it, with case sensitivity fixed when the expression is compiled.
type Pattern interface {
	MatchString(s string) bool
}

// Group is a run of consecutive matching fortunes from one source.
type Group struct {
	Source string
	Texts  []string
}

// Filter lazily yields the fortunes matching pattern, grouped by source.
//
// Groups follow contiguous runs in store order, not distinct sources: if
// matches from "a" are interrupted by a match from "b", the later "a"
// matches start a new group. Each group is yielded once its run ends, and
// no further records are examined after the consumer stops iterating.
func Filter(store *Store, pattern Pattern) iter.Seq[Group] {
	return func(yield func(Group) bool) {
		if store == nil {
			return
		}

		var current *Group
		for _, f := range store.fortunes {
			if !pattern.MatchString(f.Text) {
				continue
			}
			if current != nil && current.Source == f.Source {
				current.Texts = append(current.Texts, f.Text)
				continue
			}
			if current != nil && !yield(*current) {
				return
			}
			current = &Group{Source: f.Source, Texts: []string{f.Text}}
		}

		if current != nil {
			yield(*current)
		}
	}
}

package fortune

import "math/rand/v2"

// Pick chooses one fortune uniformly at random and returns its text.
// It returns false when the store is empty.
//
// With a non-nil seed the choice is reproducible: the generator is PCG-DXSM
// seeded with (seed, seed) and the index is drawn with Rand.IntN, both of which
// have a fixed output stream across Go releases. Without a seed the runtime's
// randomly seeded generator is used.
func Pick(store *Store, seed *uint64) (string, bool) {
	n := store.Len()
	if n == 0 {
		return "", false
	}

	var i int
	if seed != nil {
		r := rand.New(rand.NewPCG(*seed, *seed))
		i = r.IntN(n)
	} else {
		i = rand.IntN(n)
	}

	return store.fortunes[i].Text, true
}

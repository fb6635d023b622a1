package word

// Substitution relabels slot letters: slot i becomes s[i].
// It is how a memoized result over {0..k-1} is instantiated on a concrete
// k-letter subset.
type Substitution []Letter

// SubsetSubstitution maps slots 0..|a|-1 onto the members of a in order.
func SubsetSubstitution(a Alphabet) Substitution {
	return Substitution(a.Letters())
}

// Skipping maps slots 0..n-2 onto {0..n-1} \ {missing}, preserving order.
func Skipping(n int, missing Letter) Substitution {
	s := make(Substitution, 0, n)
	for i := 0; i < n; i++ {
		if Letter(i) != missing {
			s = append(s, Letter(i))
		}
	}
	return s
}

// Apply returns a fresh word with every letter relabeled.
// Letters outside the substitution's domain are kept as they are.
func (s Substitution) Apply(w Word) Word {
	out := make(Word, len(w))
	for i, l := range w {
		if int(l) < len(s) {
			out[i] = s[l]
		} else {
			out[i] = l
		}
	}
	return out
}

// Image returns the alphabet the substitution maps onto.
func (s Substitution) Image() Alphabet {
	return Of(s...)
}

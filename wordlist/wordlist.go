// Package wordlist reads, writes and checks element lists: newline-delimited
// words, one per line, the identity written as "0".
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/katalvlaran/freeband/canon"
	"github.com/katalvlaran/freeband/monoid"
	"github.com/katalvlaran/freeband/word"
)

// ErrLine wraps every parse failure with its line number.
var ErrLine = errors.New("wordlist: bad line")

// Write writes one word per line.
func Write(w io.Writer, words []word.Word) error {
	bw := bufio.NewWriter(w)
	for _, x := range words {
		if _, err := bw.WriteString(x.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a list written by Write. Blank lines are skipped.
// Invalid symbols are reported as ErrLine wrapping word.ErrInvalidSymbol.
func Read(r io.Reader) ([]word.Word, error) {
	var out []word.Word
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if len(text) == 0 {
			continue
		}
		x, err := word.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrLine, line, err)
		}
		out = append(out, x)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Report is the outcome of Check.
type Report struct {
	// Words is the number of entries checked.
	Words int

	// Letters is the size of the union of all alphabets.
	Letters int

	// NonCanonical lists the entries that are not their own canonical form.
	NonCanonical []word.Word

	// Duplicates lists entries equivalent to an earlier entry.
	Duplicates []word.Word

	// Expected is Count(Letters), the size of a complete list.
	Expected *big.Int
}

// OK reports whether the list is exactly the monoid on Letters letters:
// all entries canonical, no class twice, none missing.
func (r Report) OK() bool {
	return len(r.NonCanonical) == 0 && len(r.Duplicates) == 0 &&
		r.Expected.Cmp(big.NewInt(int64(r.Words))) == 0
}

// Check verifies a list against the monoid its letters generate.
func Check(words []word.Word) Report {
	var letters word.Alphabet
	seen := make(map[string]bool, len(words))
	rep := Report{Words: len(words)}
	for _, x := range words {
		letters |= x.Alphabet()
		c := canon.Canonical(x)
		if !c.Equal(x) {
			rep.NonCanonical = append(rep.NonCanonical, x)
		}
		if seen[c.Key()] {
			rep.Duplicates = append(rep.Duplicates, x)
		}
		seen[c.Key()] = true
	}
	rep.Letters = letters.Len()
	rep.Expected = monoid.Count(rep.Letters)
	return rep
}

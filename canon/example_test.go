package canon_test

import (
	"fmt"

	"github.com/katalvlaran/freeband/canon"
	"github.com/katalvlaran/freeband/word"
)

// ExampleCanonicalize reduces the reference word and prints every rewrite.
func ExampleCanonicalize() {
	res, err := canon.Canonicalize(word.MustParse("ababcbcbab"), canon.WithTrace())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Word)
	for _, s := range res.Trace {
		fmt.Println(s)
	}
	// Output:
	// abcbab
	// remove (ab)(ab)@0
	// remove (bc)(bc)@1
}

// ExampleMultiply shows that ab and ba do not commute.
func ExampleMultiply() {
	ab, ba := word.MustParse("ab"), word.MustParse("ba")
	fmt.Println(canon.Multiply(ab, ba), canon.Multiply(ba, ab))
	fmt.Println(canon.Multiply(canon.Multiply(ab, ba), canon.Multiply(ba, ab)))
	// Output:
	// aba bab
	// ab
}

// ExampleEquivalent compares two square-free words with the same class.
func ExampleEquivalent() {
	fmt.Println(canon.Equivalent(word.MustParse("abcbabc"), word.MustParse("abc")))
	fmt.Println(canon.Equivalent(word.MustParse("abc"), word.MustParse("acb")))
	// Output:
	// true
	// false
}

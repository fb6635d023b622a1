package explore_test

import (
	"fmt"

	"github.com/katalvlaran/freeband/explore"
	"github.com/katalvlaran/freeband/word"
)

// ExampleExplore finds a shortest rewrite path for a square-free word,
// which has to grow before it can shrink.
func ExampleExplore() {
	start := word.MustParse("abcbabc")
	res, err := explore.Explore(start, explore.WithMaxLength(9))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Shortest(), res.Depth[word.MustParse("abc").Key()])
	// Output:
	// abc 3
}

// ExampleClasses lists the removal classes of short words over two letters.
func ExampleClasses() {
	cs, err := explore.Classes(2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range cs {
		fmt.Println(c.Rep, len(c.Members))
	}
	// Output:
	// 0 1
	// a 3
	// b 3
	// ab 3
	// ba 3
	// aba 1
	// bab 1
}

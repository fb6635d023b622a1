package explore_test

import (
	"testing"

	"github.com/katalvlaran/freeband/explore"
	"github.com/katalvlaran/freeband/word"
)

// BenchmarkExplore_Grow explores the 618 words within nine letters of abcbabc.
func BenchmarkExplore_Grow(b *testing.B) {
	start := word.MustParse("abcbabc")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = explore.Explore(start, explore.WithMaxLength(9))
	}
}

// BenchmarkClasses_ThreeLetters partitions the 3280 words of length ≤ 7.
func BenchmarkClasses_ThreeLetters(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = explore.Classes(3, 7)
	}
}

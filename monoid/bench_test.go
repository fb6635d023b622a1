package monoid_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/freeband/monoid"
)

// BenchmarkGenerate_Three measures a cold build of the 160 elements on three letters.
func BenchmarkGenerate_Three(b *testing.B) {
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = monoid.Generate(context.Background(), 3, monoid.WithWorkers(w))
			}
		})
	}
}

// BenchmarkGenerate_Warm measures assembly only, with every size memoized.
func BenchmarkGenerate_Warm(b *testing.B) {
	s := monoid.NewStore()
	_, _ = monoid.Generate(context.Background(), 3, monoid.WithStore(s))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = monoid.Generate(context.Background(), 3, monoid.WithStore(s))
	}
}

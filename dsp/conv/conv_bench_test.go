package conv

import (
	"fmt"
	"testing"

	"github.com/mr-sheg/orpl/internal/testutil"
)

func BenchmarkConvolve(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 2048)

	for _, kernelLen := range []int{9, 33, 65, 129} {
		kernel := testutil.DeterministicNoise(2, 1, kernelLen)

		b.Run(fmt.Sprintf("kernel=%d", kernelLen), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Convolve(signal, kernel)
			}
		})
	}
}

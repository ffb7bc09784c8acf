package ograph_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ssp/ograph"
	"github.com/katalvlaran/ssp/substrfree"
)

func randomInstance(n, length int, r *rand.Rand) []string {
	const alphabet = "ACGT"
	raw := make([]string, n)
	for i := range raw {
		b := make([]byte, length)
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		raw[i] = string(b)
	}

	return substrfree.EnsureSubstringFree(raw)
}

func BenchmarkGREEDY(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	strings := randomInstance(200, 12, r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ograph.GREEDY(strings); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTGREEDY(b *testing.B) {
	r := rand.New(rand.NewSource(2))
	strings := randomInstance(200, 12, r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ograph.TGREEDY(strings); err != nil {
			b.Fatal(err)
		}
	}
}

func ExampleGREEDY() {
	got, err := ograph.GREEDY([]string{"cde", "bcd", "ab"})
	if err != nil {
		panic(err)
	}
	fmt.Println(got)
	// Output: abcde
}

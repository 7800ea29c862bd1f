package identifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests

func TestGenerateLengthAndAlphabet(t *testing.T) {
	generator := NewGenerator()
	for i := 0; i < 1000; i++ {
		code, err := generator.Generate()
		assert.NoError(t, err)
		assert.Len(t, code, CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(CodeAlphabet, r), "unexpected symbol %q in code %q", r, code)
		}
	}
}

func TestGenerateSpread(t *testing.T) {
	generator := NewGenerator()
	codes := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := generator.Generate()
		assert.NoError(t, err)
		codes[code] = true
	}
	// collisions among 1000 draws from 62^6 codes are vanishingly unlikely
	assert.Len(t, codes, 1000)
}

// Benchmarks

func BenchmarkGenerate(b *testing.B) {
	generator := NewGenerator()
	for i := 0; i < b.N; i++ {
		code, err := generator.Generate()
		if err != nil || code == "" {
			b.Fatal("code generation failed")
		}
	}
}

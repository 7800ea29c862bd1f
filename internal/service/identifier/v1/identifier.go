// Package identifier provides functionality for generating short link codes.
package identifier

import (
	"crypto/rand"
	"math/big"

	"github.com/avdeyev/av_go_tiny_link/internal/service/identifier"
)

// CodeAlphabet is the 62-symbol alphabet short codes are drawn from.
const CodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodeLength is the fixed length of a short code.
const CodeLength = 6

// Check interface implementation explicitly
var (
	_ identifier.Generator = (*Generator)(nil)
)

// Generator draws each code character uniformly from CodeAlphabet using a
// cryptographic randomness source.
type Generator struct{}

// NewGenerator initializes a Generator object.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a CodeLength-character code sampled uniformly per character.
func (g *Generator) Generate() (string, error) {
	alphabetSize := big.NewInt(int64(len(CodeAlphabet)))
	code := make([]byte, CodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		code[i] = CodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

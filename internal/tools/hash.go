package tools

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm is a supported digest.
type Algorithm int

const (
	MD5 Algorithm = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512_224
	SHA512_256
	SHA512
	SHA3_256
	SHA3_512
	BLAKE2b_256
	BLAKE2b_512

	algorithmCount
)

var algorithms = [algorithmCount]struct {
	name string
	new  func() hash.Hash
}{
	MD5:         {"MD5", md5.New},
	SHA1:        {"SHA-1", sha1.New},
	SHA224:      {"SHA-224", sha256.New224},
	SHA256:      {"SHA-256", sha256.New},
	SHA384:      {"SHA-384", sha512.New384},
	SHA512_224:  {"SHA-512/224", sha512.New512_224},
	SHA512_256:  {"SHA-512/256", sha512.New512_256},
	SHA512:      {"SHA-512", sha512.New},
	SHA3_256:    {"SHA3-256", sha3.New256},
	SHA3_512:    {"SHA3-512", sha3.New512},
	BLAKE2b_256: {"BLAKE2b-256", newBlake2b256},
	BLAKE2b_512: {"BLAKE2b-512", newBlake2b512},
}

func newBlake2b256() hash.Hash {
	h, _ := blake2b.New256(nil) // only fails for keys over 64 bytes
	return h
}

func newBlake2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

// Algorithms lists every algorithm in selector order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, algorithmCount)
	for a := Algorithm(0); a < algorithmCount; a++ {
		out = append(out, a)
	}
	return out
}

// AlgorithmNames returns the selector labels.
func AlgorithmNames() []string {
	out := make([]string, 0, algorithmCount)
	for _, a := range Algorithms() {
		out = append(out, a.String())
	}
	return out
}

func (a Algorithm) String() string {
	if a < 0 || a >= algorithmCount {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithms[a].name
}

// Hash returns the lowercase hex digest of the UTF-8 bytes of input.
func Hash(input string, a Algorithm) (string, error) {
	return HashBytes([]byte(input), a)
}

// HashBytes returns the lowercase hex digest of data.
func HashBytes(data []byte, a Algorithm) (string, error) {
	if a < 0 || a >= algorithmCount {
		return "", fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	h := algorithms[a].new()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

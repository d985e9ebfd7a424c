package sig

import (
	"crypto"
	"fmt"

	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Hash digests data with hashAlg.
func Hash(data []byte, hashAlg crypto.Hash) (digest []byte, _ error) {
	if !hashAlg.Available() {
		return nil, fmt.Errorf("%w: hash %v not available", ErrCrypto, hashAlg)
	}
	h := hashAlg.New()
	_, err := h.Write(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	return h.Sum(nil), nil
}

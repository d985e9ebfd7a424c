package sig

import (
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
)

// Sign produces a signature over message with the given algorithm.
// - For the HMAC family key is the shared secret, used as-is.
// - For the RSA family key must be a PEM-encoded RSA private key.
func Sign(message, key []byte, alg Algorithm) ([]byte, error) {
	spec, err := alg.ToCrypto()
	if err != nil {
		return nil, err
	}
	switch spec.Family {
	case FamilyHMAC:
		return signHMAC(message, key, spec.Hash)
	case FamilyRSA:
		return signRSA(message, key, spec.Hash)
	default:
		return nil, fmt.Errorf("%w: no signer for %v", ErrUnsupportedAlgorithm, alg)
	}
}

func signHMAC(message, key []byte, hashAlg crypto.Hash) ([]byte, error) {
	if !hashAlg.Available() {
		return nil, fmt.Errorf("%w: hash %v not available", ErrCrypto, hashAlg)
	}
	mac := hmac.New(hashAlg.New, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

func signRSA(message, key []byte, hashAlg crypto.Hash) ([]byte, error) {
	privateKey, err := ParseRSAPrivateKey(key)
	if err != nil {
		return nil, err
	}
	digest, err := Hash(message, hashAlg)
	if err != nil {
		return nil, err
	}
	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, hashAlg, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: rsa sign: %v", ErrCrypto, err)
	}
	return signature, nil
}

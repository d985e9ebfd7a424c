package sig

import (
	"crypto"
	"crypto/hmac"
	"crypto/rsa"
	"errors"
	"fmt"
)

// Verify checks whether signature is valid for message under the given
// algorithm.
// - For the HMAC family key is the shared secret, used as-is.
// - For the RSA family key must be a PEM-encoded RSA public key.
// A well-formed signature that does not match yields (false, nil); a non-nil
// error means verification could not be attempted at all.
func Verify(signature, message, key []byte, alg Algorithm) (bool, error) {
	spec, err := alg.ToCrypto()
	if err != nil {
		return false, err
	}
	switch spec.Family {
	case FamilyHMAC:
		return verifyHMAC(signature, message, key, spec.Hash)
	case FamilyRSA:
		return verifyRSA(signature, message, key, spec.Hash)
	default:
		return false, fmt.Errorf("%w: no verifier for %v", ErrUnsupportedAlgorithm, alg)
	}
}

func verifyHMAC(signature, message, key []byte, hashAlg crypto.Hash) (bool, error) {
	expected, err := signHMAC(message, key, hashAlg)
	if err != nil {
		return false, err
	}
	// hmac.Equal compares in constant time.
	return hmac.Equal(signature, expected), nil
}

func verifyRSA(signature, message, key []byte, hashAlg crypto.Hash) (bool, error) {
	publicKey, err := ParseRSAPublicKey(key)
	if err != nil {
		return false, err
	}
	digest, err := Hash(message, hashAlg)
	if err != nil {
		return false, err
	}
	if err := rsa.VerifyPKCS1v15(publicKey, hashAlg, digest, signature); err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			return false, nil
		}
		return false, fmt.Errorf("%w: rsa verify: %v", ErrCrypto, err)
	}
	return true, nil
}

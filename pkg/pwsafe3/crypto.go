package pwsafe3

import (
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"hash"

	"golang.org/x/crypto/twofish"
)

// stretchedKeySize is the size, in bytes, of P', K, and L.
const stretchedKeySize = 32

// macState wraps the keyed-HMAC-SHA-256 state the TLV parser feeds during
// its single pass over the plaintext. Construction and finalization live
// here; the byte feeding itself is driven by the parser (see tlv.go),
// because the MAC covers only isolated payload bytes, not the framing
// around them.
type macState struct {
	h hash.Hash
}

// newMAC constructs a keyed HMAC-SHA-256 state using L.
func newMAC(l []byte) (*macState, error) {
	if len(l) != stretchedKeySize {
		return nil, newErr(ErrMacKeyRejected, nil)
	}
	return &macState{h: hmac.New(sha256.New, l)}, nil
}

func (m *macState) update(b []byte) {
	_, _ = m.h.Write(b)
}

func (m *macState) finalize() []byte {
	return m.h.Sum(nil)
}

// deriveStretchedKey implements the "P'" stretching procedure: SHA-256 of
// passphrase‖salt, then iter further rounds of SHA-256 over the digest.
// passphrase is zeroized in place before this function returns, success or
// failure.
func deriveStretchedKey(passphrase []byte, salt []byte, iter uint32) ([]byte, error) {
	defer zeroize(passphrase)

	if iter == 0 {
		return nil, newErr(ErrIterationsNotInitialized, nil)
	}

	h := sha256.New()
	h.Write(passphrase)
	h.Write(salt)
	r := h.Sum(nil)

	for i := uint32(0); i < iter; i++ {
		sum := sha256.Sum256(r)
		r = sum[:]
	}
	return r, nil
}

// verifyPassphrase reports whether SHA-256(stretched) matches the
// container's stored stretched-key hash.
func verifyPassphrase(stretched []byte, container *containerSlices) bool {
	sum := sha256.Sum256(stretched)
	return subtle.ConstantTimeCompare(sum[:], container.stretchedKeyHash) == 1
}

// ecbDecryptPair recovers a 256-bit key by Twofish-ECB-decrypting two
// independent 16-byte blocks with the stretched key and concatenating the
// results, per spec.md §4.2's K/L unwrap.
func ecbDecryptPair(stretched, block1, block2 []byte) ([]byte, error) {
	cipherBlock, err := twofish.NewCipher(stretched)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 2*blockSize)
	cipherBlock.Decrypt(out[:blockSize], block1)
	cipherBlock.Decrypt(out[blockSize:], block2)
	return out, nil
}

// unwrapK recovers the 256-bit data key from B1‖B2.
func unwrapK(container *containerSlices, stretched []byte) ([]byte, error) {
	return ecbDecryptPair(stretched, container.b1, container.b2)
}

// unwrapL recovers the 256-bit MAC key from B3‖B4.
func unwrapL(container *containerSlices, stretched []byte) ([]byte, error) {
	return ecbDecryptPair(stretched, container.b3, container.b4)
}

// decryptBody runs Twofish-CBC decryption over the container body using K
// and the container IV, producing a plaintext buffer of the same length.
func decryptBody(k, iv, body []byte) ([]byte, error) {
	if len(body)%blockSize != 0 {
		return nil, newErr(ErrFileTooSmall, nil)
	}
	cipherBlock, err := twofish.NewCipher(k)
	if err != nil {
		return nil, err
	}
	plaintext := make([]byte, len(body))
	cipher.NewCBCDecrypter(cipherBlock, iv).CryptBlocks(plaintext, body)
	return plaintext, nil
}

// zeroize overwrites b with zeros in place. Best-effort: it defends
// against the secret lingering in this buffer, not against copies the
// Go runtime may have made (e.g. during a prior growth of the backing
// array, or register/stack spills).
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

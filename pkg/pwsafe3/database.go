package pwsafe3

import (
	"crypto/subtle"
	"os"
	"strings"
)

// Record is one decrypted PWS3 entry: an ordered sequence of fields,
// terminated on the wire by an end-of-entry sentinel that is not itself
// emitted here. Records have no identity beyond their UUID field (§3),
// which may be absent.
type Record struct {
	Fields []Field
}

// Field looks up the first field of the given type on the record.
func (r *Record) Field(t FieldType) (Field, bool) {
	for _, f := range r.Fields {
		if f.Type == t {
			return f, true
		}
	}
	return Field{}, false
}

// Database is the fully decrypted, authenticated contents of a PWS3 file:
// an ordered header and an ordered sequence of records, both in file
// order. It is owned by the caller once Unlock returns.
type Database struct {
	Header  []HeaderField
	Records []*Record
}

// Handle is the byte-exact, still-encrypted view of a PWS3 file produced
// by Open. It holds no derived key material; Unlock performs all
// cryptography. A Handle must not be used from more than one goroutine
// concurrently.
type Handle struct {
	container *containerSlices
}

// Open reads path, validates the PWS3 container layout (tag, EOF
// sentinel, field boundaries), and returns a Handle. No cryptography runs
// here; a wrong passphrase is only detected by Unlock.
func Open(path string) (*Handle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newErr(ErrFileNotFound, err)
		}
		return nil, newErr(ErrFileReadError, err)
	}
	return OpenBytes(raw)
}

// OpenBytes validates raw PWS3 container bytes already read into memory.
func OpenBytes(raw []byte) (*Handle, error) {
	container, err := loadContainer(raw)
	if err != nil {
		return nil, err
	}
	return &Handle{container: container}, nil
}

// Unlock derives the data and MAC keys from passphrase, decrypts the
// container body, parses the plaintext into a Database, and verifies the
// authentication tag. The passphrase is trimmed of surrounding whitespace
// first (a usability accommodation for interactive input, not a format
// requirement) and its backing buffer is zeroized before this function
// returns, on every path.
//
// The Database is not exposed until the MAC check (step 6 of spec.md
// §4.3) succeeds: on InvalidSignature, any partially-built header/record
// data is discarded.
func (h *Handle) Unlock(passphrase string) (*Database, error) {
	pwBytes := []byte(strings.TrimSpace(passphrase))
	defer zeroize(pwBytes)

	if h.container.iter == 0 {
		return nil, newErr(ErrIterationsNotInitialized, nil)
	}

	stretched, err := deriveStretchedKey(append([]byte(nil), pwBytes...), h.container.salt, h.container.iter)
	if err != nil {
		return nil, err
	}
	defer zeroize(stretched)

	if !verifyPassphrase(stretched, h.container) {
		return nil, newErr(ErrInvalidKey, nil)
	}

	k, err := unwrapK(h.container, stretched)
	if err != nil {
		return nil, err
	}
	defer zeroize(k)

	l, err := unwrapL(h.container, stretched)
	if err != nil {
		return nil, err
	}
	defer zeroize(l)

	mac, err := newMAC(l)
	if err != nil {
		return nil, err
	}

	plaintext, err := decryptBody(k, h.container.iv, h.container.body)
	if err != nil {
		return nil, err
	}
	defer zeroize(plaintext)

	header, records, err := parsePlaintext(plaintext, mac)
	if err != nil {
		return nil, err
	}

	computed := mac.finalize()
	if subtle.ConstantTimeCompare(computed, h.container.storedMAC) != 1 {
		return nil, newErr(ErrInvalidSignature, nil)
	}

	return &Database{Header: header, Records: records}, nil
}

// UnlockFile is a convenience wrapper equivalent to Open(path) followed by
// Unlock(passphrase).
func UnlockFile(path, passphrase string) (*Database, error) {
	h, err := Open(path)
	if err != nil {
		return nil, err
	}
	return h.Unlock(passphrase)
}

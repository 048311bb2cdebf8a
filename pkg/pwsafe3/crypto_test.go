package pwsafe3

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/twofish"
)

// ecbEncryptPairForTest is the inverse of ecbDecryptPair, built directly
// from the cipher primitive rather than anything under test, so the round
// trip below is a real check rather than a tautology.
func ecbEncryptPairForTest(stretched, plain []byte) ([]byte, error) {
	c, err := twofish.NewCipher(stretched)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 2*blockSize)
	c.Encrypt(out[:blockSize], plain[:blockSize])
	c.Encrypt(out[blockSize:], plain[blockSize:])
	return out, nil
}

func TestDeriveStretchedKeyZeroIterations(t *testing.T) {
	_, err := deriveStretchedKey([]byte("pw"), fill(0, saltSize), 0)
	perr, ok := err.(*Error)
	if !ok || perr.Code != ErrIterationsNotInitialized {
		t.Fatalf("got %v, want ErrIterationsNotInitialized", err)
	}
}

func TestDeriveStretchedKeyZeroizesPassphrase(t *testing.T) {
	pw := []byte("super secret")
	_, err := deriveStretchedKey(pw, fill(0, saltSize), 10)
	if err != nil {
		t.Fatalf("deriveStretchedKey: %v", err)
	}
	if !bytes.Equal(pw, fill(0, len(pw))) {
		t.Errorf("passphrase buffer not zeroized: %x", pw)
	}
}

func TestDeriveStretchedKeyDeterministic(t *testing.T) {
	salt := fill(0x07, saltSize)
	a, err := deriveStretchedKey([]byte("same passphrase"), salt, 100)
	if err != nil {
		t.Fatal(err)
	}
	b, err := deriveStretchedKey([]byte("same passphrase"), salt, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("stretched key not deterministic: %x != %x", a, b)
	}
	if len(a) != stretchedKeySize {
		t.Errorf("stretched key len = %d, want %d", len(a), stretchedKeySize)
	}
}

func TestNewMACRejectsWrongKeySize(t *testing.T) {
	_, err := newMAC(fill(0, 16))
	perr, ok := err.(*Error)
	if !ok || perr.Code != ErrMacKeyRejected {
		t.Fatalf("got %v, want ErrMacKeyRejected", err)
	}
}

func TestECBDecryptPairRoundTrip(t *testing.T) {
	stretched := fill(0x5A, stretchedKeySize)
	k := fill(0xAB, 2*blockSize)

	b1b2, err := ecbEncryptPairForTest(stretched, k)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ecbDecryptPair(stretched, b1b2[:blockSize], b1b2[blockSize:])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, k) {
		t.Errorf("ecbDecryptPair round trip = %x, want %x", got, k)
	}
}

func TestDecryptBodyRejectsUnalignedLength(t *testing.T) {
	_, err := decryptBody(fill(0, stretchedKeySize), fill(0, ivSize), fill(0, 17))
	perr, ok := err.(*Error)
	if !ok || perr.Code != ErrFileTooSmall {
		t.Fatalf("got %v, want ErrFileTooSmall", err)
	}
}

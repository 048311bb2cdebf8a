package pwsafe3

import "bytes"

const (
	tagPWS3 = "PWS3"
	eofSentinel = "PWS3-EOFPWS3-EOF"

	saltSize   = 32
	iterSize   = 4
	keyHashSize = 32
	blockSize  = 16
	ivSize     = 16
	macSize    = 32

	// bodyStart is the fixed offset of the ciphertext body: tag + salt +
	// iter + key-hash + B1..B4 + IV.
	bodyStart = len(tagPWS3) + saltSize + iterSize + keyHashSize + 4*blockSize + ivSize
)

// containerSlices holds byte-exact references into the raw file contents,
// as laid out by spec.md §4.1. It is ephemeral: consumed by Open/Unlock and
// discarded once a Database has been produced.
type containerSlices struct {
	salt             []byte
	iter             uint32
	stretchedKeyHash []byte
	b1, b2, b3, b4   []byte
	iv               []byte
	body             []byte
	storedMAC        []byte
}

// loadContainer validates the PWS3 tag, locates the EOF sentinel, and
// slices out every fixed-layout field described in spec.md §4.1.
func loadContainer(raw []byte) (*containerSlices, error) {
	if len(raw) < len(tagPWS3) || !bytes.Equal(raw[:len(tagPWS3)], []byte(tagPWS3)) {
		return nil, newErr(ErrFileNotSupported, nil)
	}

	sentinelOffset := bytes.Index(raw, []byte(eofSentinel))
	if sentinelOffset < 0 {
		return nil, newErr(ErrEofSentinelMissing, nil)
	}
	if sentinelOffset < bodyStart {
		return nil, newErr(ErrEofPositionError, nil)
	}
	if len(raw) < sentinelOffset+len(eofSentinel)+macSize {
		return nil, newErr(ErrFileTooSmall, nil)
	}

	c := &containerSlices{}
	off := len(tagPWS3)
	c.salt, off = raw[off:off+saltSize], off+saltSize
	c.iter = leUint32(raw[off : off+iterSize])
	off += iterSize
	c.stretchedKeyHash, off = raw[off:off+keyHashSize], off+keyHashSize
	c.b1, off = raw[off:off+blockSize], off+blockSize
	c.b2, off = raw[off:off+blockSize], off+blockSize
	c.b3, off = raw[off:off+blockSize], off+blockSize
	c.b4, off = raw[off:off+blockSize], off+blockSize
	c.iv, off = raw[off:off+ivSize], off+ivSize

	c.body = raw[off:sentinelOffset]

	macStart := sentinelOffset + len(eofSentinel)
	c.storedMAC = raw[macStart : macStart+macSize]

	return c, nil
}

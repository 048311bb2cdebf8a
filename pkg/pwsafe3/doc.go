/*
Package pwsafe3 reads and decrypts Password Safe v3 ("PWS3") database files.

This consolidates the container decoder, the key-derivation/decryption
pipeline, and the block-aligned TLV parser that together turn a PWS3 file
and its passphrase into an in-memory, read-only Database.

# File Layout

A PWS3 file is the literal ASCII tag "PWS3" followed by a fixed-size
key-derivation header, a CBC-encrypted body, an EOF sentinel, and a MAC tag:

	offset 0   4 bytes   tag "PWS3"
	offset 4   32 bytes  salt
	offset 36  4 bytes   iter (u32 LE)
	offset 40  32 bytes  SHA-256(stretched key), for passphrase verification
	offset 72  16 bytes  B1 ) Twofish-ECB(stretched key) wrapped halves of K
	offset 88  16 bytes  B2 )
	offset 104 16 bytes  B3 ) Twofish-ECB(stretched key) wrapped halves of L
	offset 120 16 bytes  B4 )
	offset 136 16 bytes  IV, for CBC body decryption
	offset 152 ...       body, Twofish-CBC ciphertext, multiple of 16 bytes
	body end   16 bytes  literal sentinel "PWS3-EOFPWS3-EOF"
	+16        32 bytes  HMAC-SHA-256 tag, keyed by L, over the plaintext payload bytes

# Key Derivation

The stretched key P' is SHA-256(passphrase ‖ salt), iterated `iter` more
times. K (the data key) and L (the MAC key) are recovered by Twofish-ECB
decrypting B1‖B2 and B3‖B4 with P' as the key; K and L are independent.

# Plaintext Layout

The CBC-decrypted body is two concatenated block-aligned TLV streams: a
header block, then a sequence of records. Every element pads out to a
whole number of 16-byte blocks. The HMAC is computed over the concatenation of
every parsed element's payload bytes only — not its length prefix, type
byte, padding, or the 0xFF end-of-entry sentinels — and must match the
trailing 32-byte MAC tag for the Database to be considered valid.

# Scope

This package is read-only: there is no encoder, no support for PWS3
formats other than v3, and no incremental/streaming API — [Open] and
[Unlock] both require the whole file in memory. A single [Handle] must
not be used from more than one goroutine at a time; callers processing
many files concurrently should open one Handle per file.
*/
package pwsafe3

package pwsafe3

// Block-aligned TLV scanning, per spec.md §4.4.
//
// Every element is `length`(u32 LE) + `type`(1 byte) + `length` payload
// bytes, padded so the element's total on-disk footprint is a whole
// number of 16-byte blocks with a one-block minimum. The state machine is
// READ_LENGTH -> READ_TYPE -> READ_PAYLOAD -> ADVANCE_PADDING, looping
// back to READ_LENGTH until a short tail or an end-of-entry (type 0xFF)
// sends it to DONE.

const (
	lengthPrefixSize  = 4
	typeByteSize      = 1
	minPayloadForBlock = blockSize - lengthPrefixSize - typeByteSize // 11
)

// paddedEnd centralizes the single padding rule used at every TLV site
// (header scan, record scan, end-of-entry branch, mid-entry branch) --
// previously duplicated with minor divergences in the source this was
// ported from. start is the offset of the first payload byte; length is
// the element's declared payload length. Returns the post-padding cursor.
func paddedEnd(start, length int) int {
	end := start + length
	spare := length // end - start, by construction

	if spare <= minPayloadForBlock {
		// Short element: bring it up to the one-block minimum footprint
		// measured from start. spare == minPayloadForBlock lands here too
		// with a zero-byte adjustment, since such an element is already
		// block-aligned -- the length==11 short-circuit and this are the
		// same case.
		return end + (minPayloadForBlock - spare)
	}

	// Long element: round up to the next 16-byte boundary. An element
	// whose end already sits on a boundary needs no further padding --
	// gate on that explicitly rather than always adding one more block.
	if end%blockSize == 0 {
		return end
	}
	return ((end / blockSize) + 1) * blockSize
}

// tlvElement is one raw, type-decoded TLV element plus the cursor
// position after its padding.
type tlvElement struct {
	typeByte byte
	payload  []byte
	end      int
}

// scanOne reads a single TLV element starting at cur. ok is false when the
// remaining buffer is too short to hold another element (clean scan
// termination, not an error). err is non-nil only for a genuinely
// truncated element (its declared length runs past the end of buf).
func scanOne(buf []byte, cur int) (el tlvElement, ok bool, err error) {
	// READ_LENGTH / READ_TYPE: a minimal element occupies
	// lengthPrefixSize+typeByteSize+minPayloadForBlock = 16 bytes; the scan
	// stops once minPayloadForBlock (11) or fewer bytes remain.
	if cur+minPayloadForBlock >= len(buf) {
		return tlvElement{}, false, nil
	}

	length := int(leUint32(buf[cur : cur+lengthPrefixSize]))
	typeByte := buf[cur+lengthPrefixSize]
	payloadStart := cur + lengthPrefixSize + typeByteSize

	// READ_PAYLOAD
	payloadEnd := payloadStart + length
	if payloadEnd > len(buf) {
		return tlvElement{}, false, newErr(ErrUnexpectedEndOfPlaintext, nil)
	}
	payload := buf[payloadStart:payloadEnd]

	// ADVANCE_PADDING
	end := paddedEnd(payloadStart, length)

	return tlvElement{typeByte: typeByte, payload: payload, end: end}, true, nil
}

// scanHeader runs one TLV scan over buf starting at offset 0, decoding
// each element as a header field and feeding its payload bytes to mac.
// It stops at the end-of-entry sentinel or a short tail, returning the
// post-scan cursor.
func scanHeader(buf []byte, mac *macState) ([]HeaderField, int, error) {
	var fields []HeaderField
	cur := 0
	for {
		el, ok, err := scanOne(buf, cur)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return fields, cur, nil
		}
		if HeaderType(el.typeByte) == HeaderEndOfEntry {
			return fields, el.end, nil
		}

		mac.update(el.payload)
		field, err := decodeHeaderField(el.typeByte, el.payload)
		if err != nil {
			return nil, 0, err
		}
		fields = append(fields, field)
		cur = el.end
	}
}

// scanRecord runs one TLV scan over buf starting at offset start, decoding
// each element as a record field and feeding its payload bytes to mac. It
// stops at the end-of-entry sentinel or a short tail, returning the
// decoded fields and the post-scan absolute cursor.
func scanRecord(buf []byte, start int, mac *macState) ([]Field, int, error) {
	var fields []Field
	cur := start
	for {
		el, ok, err := scanOne(buf, cur)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return fields, cur, nil
		}
		if FieldType(el.typeByte) == FieldEndOfRecord {
			return fields, el.end, nil
		}

		mac.update(el.payload)
		field, err := decodeField(el.typeByte, el.payload)
		if err != nil {
			return nil, 0, err
		}
		fields = append(fields, field)
		cur = el.end
	}
}

// parsePlaintext runs the two-phase scan described in spec.md §4.4: one
// header scan, then repeated record scans until the cursor reaches the
// end of the buffer. Records with zero fields are dropped.
func parsePlaintext(plaintext []byte, mac *macState) ([]HeaderField, []*Record, error) {
	header, cur, err := scanHeader(plaintext, mac)
	if err != nil {
		return nil, nil, err
	}

	var records []*Record
	for cur < len(plaintext) {
		fields, end, err := scanRecord(plaintext, cur, mac)
		if err != nil {
			return nil, nil, err
		}
		if len(fields) > 0 {
			records = append(records, &Record{Fields: fields})
		}
		if end <= cur {
			// No progress was made (short tail with zero fields): stop to
			// avoid spinning forever on residual bytes.
			break
		}
		cur = end
	}

	return header, records, nil
}

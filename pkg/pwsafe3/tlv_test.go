package pwsafe3

import "testing"

func TestPaddedEnd(t *testing.T) {
	cases := []struct {
		name   string
		start  int
		length int
		want   int
	}{
		{"exact one block (length==11)", 5, 11, 16},
		{"short, needs padding", 5, 3, 16},
		{"short, zero length", 5, 0, 16},
		{"long, not aligned", 5, 20, 32},
		{"long, already aligned", 5, 27, 32}, // 5+27=32, already a block boundary
		{"long, two blocks over", 21, 27, 48},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := paddedEnd(c.start, c.length)
			if got != c.want {
				t.Errorf("paddedEnd(%d, %d) = %d, want %d", c.start, c.length, got, c.want)
			}
		})
	}
}

// appendElement encodes one TLV element (length, type, payload, padding)
// and appends it to buf, so the element starts at offset len(buf), which
// must be a multiple of 16.
func appendElement(buf []byte, typeByte byte, payload []byte) []byte {
	start := len(buf)
	length := len(payload)
	header := make([]byte, 5)
	header[0] = byte(length)
	header[1] = byte(length >> 8)
	header[2] = byte(length >> 16)
	header[3] = byte(length >> 24)
	header[4] = typeByte
	buf = append(buf, header...)
	buf = append(buf, payload...)
	end := paddedEnd(start+5, length)
	for len(buf) < end {
		buf = append(buf, 0)
	}
	return buf
}

func TestScanHeaderAndRecords(t *testing.T) {
	var buf []byte
	buf = appendElement(buf, byte(HeaderVersion), []byte{0x0E, 0x03})
	buf = appendElement(buf, byte(HeaderDatabaseName), []byte("vault"))
	buf = appendElement(buf, 0xFF, nil) // end of header

	recordStart := len(buf)
	buf = appendElement(buf, byte(FieldTitle), []byte("example.com"))
	buf = appendElement(buf, byte(FieldUsername), []byte("alice"))
	buf = appendElement(buf, 0xFF, nil) // end of record

	mac, err := newMAC(make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}
	header, cur, err := scanHeader(buf, mac)
	if err != nil {
		t.Fatalf("scanHeader: %v", err)
	}
	if len(header) != 2 {
		t.Fatalf("want 2 header fields, got %d", len(header))
	}
	if header[0].Type != HeaderVersion || header[0].U16 != 0x030E {
		t.Errorf("version field = %+v", header[0])
	}
	if header[1].Str != "vault" {
		t.Errorf("database name field = %+v", header[1])
	}
	if cur != recordStart {
		t.Errorf("post-header cursor = %d, want %d", cur, recordStart)
	}

	fields, end, err := scanRecord(buf, cur, mac)
	if err != nil {
		t.Fatalf("scanRecord: %v", err)
	}
	if len(fields) != 2 || fields[0].Str != "example.com" || fields[1].Str != "alice" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	if end != len(buf) {
		t.Errorf("post-record cursor = %d, want %d", end, len(buf))
	}
}

func TestParsePlaintextDropsEmptyRecords(t *testing.T) {
	var buf []byte
	buf = appendElement(buf, byte(HeaderVersion), []byte{0x0E, 0x03})
	buf = appendElement(buf, 0xFF, nil)

	// An empty record: just the end-of-record sentinel.
	buf = appendElement(buf, 0xFF, nil)

	buf = appendElement(buf, byte(FieldTitle), []byte("kept"))
	buf = appendElement(buf, 0xFF, nil)

	mac, _ := newMAC(make([]byte, 32))
	header, records, err := parsePlaintext(buf, mac)
	if err != nil {
		t.Fatalf("parsePlaintext: %v", err)
	}
	if len(header) != 1 {
		t.Fatalf("want 1 header field, got %d", len(header))
	}
	if len(records) != 1 {
		t.Fatalf("want 1 record (empty one dropped), got %d", len(records))
	}
	if title, _ := records[0].Title(); title != "kept" {
		t.Errorf("title = %q", title)
	}
}

func TestScanInvalidUTF8(t *testing.T) {
	var buf []byte
	buf = appendElement(buf, byte(HeaderDatabaseName), []byte{0xff, 0xfe, 0xfd})
	buf = appendElement(buf, 0xFF, nil)

	mac, _ := newMAC(make([]byte, 32))
	_, _, err := scanHeader(buf, mac)
	if err == nil {
		t.Fatal("expected invalid UTF-8 error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Code != ErrInvalidUtf8InStringField {
		t.Fatalf("got %v, want ErrInvalidUtf8InStringField", err)
	}
}

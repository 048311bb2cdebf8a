package pwsafe3

import "github.com/google/uuid"

// payloadShape classifies how a TLV element's payload bytes are
// interpreted, per spec.md §4.4's shape table.
type payloadShape int

const (
	shapeU16 payloadShape = iota
	shapeU32Timestamp
	shapeUUID
	shapeString
	shapeFixedBytes
	shapeByte
	shapeOpaque
)

// headerTypeInfo describes one well-known header type code.
type headerTypeInfo struct {
	name  string
	shape payloadShape
}

// HeaderType is a header TLV element's type byte, widened to uint16 so the
// out-of-byte-range HeaderOpaque sentinel fits.
type HeaderType uint16

const (
	HeaderVersion                     HeaderType = 0x00
	HeaderUUID                        HeaderType = 0x01
	HeaderNonDefaultPreferences       HeaderType = 0x02
	HeaderTreeDisplayStatus           HeaderType = 0x03
	HeaderTimestampLastSaved          HeaderType = 0x04
	HeaderWhoLastSaved                HeaderType = 0x05
	HeaderWhatLastSaved               HeaderType = 0x06
	HeaderLastSavedByUser             HeaderType = 0x07
	HeaderLastSavedOnHost             HeaderType = 0x08
	HeaderDatabaseName                HeaderType = 0x09
	HeaderDatabaseDescription         HeaderType = 0x0A
	HeaderDatabaseFilters             HeaderType = 0x0B
	HeaderReserved1                   HeaderType = 0x0C
	HeaderReserved2                   HeaderType = 0x0D
	HeaderReserved3                   HeaderType = 0x0E
	HeaderRecentlyUsedEntries         HeaderType = 0x0F
	HeaderNamedPasswordPolicy         HeaderType = 0x10
	HeaderEmptyGroups                 HeaderType = 0x11
	HeaderYubico                      HeaderType = 0x12
	HeaderLastMasterPwChangeTimestamp HeaderType = 0x13
	HeaderEndOfEntry                  HeaderType = 0xFF
	// HeaderOpaque is synthesized for any type code outside the table
	// above; the field is preserved with its raw payload rather than
	// rejected.
	HeaderOpaque HeaderType = 0x100 // out of byte range: never a real wire value
)

var headerTypeTable = map[HeaderType]headerTypeInfo{
	HeaderVersion:                     {"Version", shapeU16},
	HeaderUUID:                        {"UUID", shapeUUID},
	HeaderNonDefaultPreferences:       {"NonDefaultPreferences", shapeString},
	HeaderTreeDisplayStatus:           {"TreeDisplayStatus", shapeString},
	HeaderTimestampLastSaved:          {"TimestampLastSaved", shapeU32Timestamp},
	HeaderWhoLastSaved:                {"WhoLastSaved", shapeString},
	HeaderWhatLastSaved:               {"WhatLastSaved", shapeString},
	HeaderLastSavedByUser:             {"LastSavedByUser", shapeString},
	HeaderLastSavedOnHost:             {"LastSavedOnHost", shapeString},
	HeaderDatabaseName:                {"DatabaseName", shapeString},
	HeaderDatabaseDescription:         {"DatabaseDescription", shapeString},
	HeaderDatabaseFilters:             {"DatabaseFilters", shapeString},
	HeaderReserved1:                   {"Reserved1", shapeOpaque},
	HeaderReserved2:                   {"Reserved2", shapeOpaque},
	HeaderReserved3:                   {"Reserved3", shapeOpaque},
	HeaderRecentlyUsedEntries:         {"RecentlyUsedEntries", shapeString},
	HeaderNamedPasswordPolicy:         {"NamedPasswordPolicy", shapeString},
	HeaderEmptyGroups:                 {"EmptyGroups", shapeString},
	HeaderYubico:                      {"Yubico", shapeString},
	HeaderLastMasterPwChangeTimestamp: {"LastMasterPasswordChangeTimestamp", shapeU32Timestamp},
}

// HeaderField is one parsed header element.
type HeaderField struct {
	Type HeaderType
	Name string

	U16     uint16
	U32     uint32
	UUID    uuid.UUID
	Str     string
	Bytes   []byte // fixed-bytes, single-byte, or opaque payload
}

func decodeHeaderField(typeByte byte, payload []byte) (HeaderField, error) {
	t := HeaderType(typeByte)
	info, known := headerTypeTable[t]
	if !known {
		return HeaderField{Type: HeaderOpaque, Name: "Unknown", Bytes: append([]byte(nil), payload...)}, nil
	}

	f := HeaderField{Type: t, Name: info.name}
	switch info.shape {
	case shapeU16:
		if len(payload) < 2 {
			return HeaderField{}, newErr(ErrUnexpectedEndOfPlaintext, nil)
		}
		f.U16 = leUint16(payload)
	case shapeU32Timestamp:
		if len(payload) < 4 {
			return HeaderField{}, newErr(ErrUnexpectedEndOfPlaintext, nil)
		}
		f.U32 = leUint32(payload)
	case shapeUUID:
		u, err := decodeUUID(payload)
		if err != nil {
			return HeaderField{}, err
		}
		f.UUID = u
	case shapeString:
		s, err := decodeUTF8(payload)
		if err != nil {
			return HeaderField{}, err
		}
		f.Str = s
	default: // shapeOpaque and any fixed-bytes header type
		f.Bytes = append([]byte(nil), payload...)
	}
	return f, nil
}

// fieldTypeInfo describes one well-known record field type code.
type fieldTypeInfo struct {
	name  string
	shape payloadShape
}

// FieldType is a record TLV element's type byte, widened to uint16 so the
// out-of-byte-range FieldOpaque sentinel fits.
type FieldType uint16

const (
	FieldUUID                   FieldType = 0x01
	FieldGroup                  FieldType = 0x02
	FieldTitle                  FieldType = 0x03
	FieldUsername                FieldType = 0x04
	FieldNotes                   FieldType = 0x05
	FieldPassword                FieldType = 0x06
	FieldCreationTime            FieldType = 0x07
	FieldPasswordModTime         FieldType = 0x08
	FieldLastAccessTime          FieldType = 0x09
	FieldPasswordExpiryTime      FieldType = 0x0A
	FieldReserved1               FieldType = 0x0B
	FieldLastModTime             FieldType = 0x0C
	FieldURL                     FieldType = 0x0D
	FieldAutotype                FieldType = 0x0E
	FieldPasswordHistory         FieldType = 0x0F
	FieldPasswordPolicy          FieldType = 0x10
	FieldPasswordExpiryInterval  FieldType = 0x11
	FieldRunCommand              FieldType = 0x12
	FieldDoubleClickAction       FieldType = 0x13
	FieldEMailAddress            FieldType = 0x14
	FieldProtectedEntry          FieldType = 0x15
	FieldOwnSymbolsForPassword   FieldType = 0x16
	FieldShiftDoubleClickAction  FieldType = 0x17
	FieldPasswordPolicyName      FieldType = 0x18
	FieldEntryKeyboardShortcut   FieldType = 0x19
	FieldReserved2               FieldType = 0x1A
	FieldTwoFactorKey            FieldType = 0x1B
	FieldCreditCardNumber        FieldType = 0x1C
	FieldCreditCardExpiration    FieldType = 0x1D
	FieldCreditCardVerifValue    FieldType = 0x1E
	FieldCreditCardPin           FieldType = 0x1F
	FieldQRCode                  FieldType = 0x20
	FieldEndOfRecord             FieldType = 0xFF
	FieldOpaque                  FieldType = 0x100
)

var fieldTypeTable = map[FieldType]fieldTypeInfo{
	FieldUUID:                  {"UUID", shapeUUID},
	FieldGroup:                 {"Group", shapeString},
	FieldTitle:                 {"Title", shapeString},
	FieldUsername:              {"Username", shapeString},
	FieldNotes:                 {"Notes", shapeString},
	FieldPassword:              {"Password", shapeString},
	FieldCreationTime:          {"CreationTime", shapeU32Timestamp},
	FieldPasswordModTime:       {"PasswordModTime", shapeU32Timestamp},
	FieldLastAccessTime:        {"LastAccessTime", shapeU32Timestamp},
	FieldPasswordExpiryTime:    {"PasswordExpiryTime", shapeU32Timestamp},
	FieldReserved1:             {"Reserved1", shapeFixedBytes},
	FieldLastModTime:           {"LastModTime", shapeU32Timestamp},
	FieldURL:                   {"URL", shapeString},
	FieldAutotype:              {"Autotype", shapeString},
	FieldPasswordHistory:       {"PasswordHistory", shapeString},
	FieldPasswordPolicy:        {"PasswordPolicy", shapeString},
	FieldPasswordExpiryInterval: {"PasswordExpiryInterval", shapeFixedBytes},
	FieldRunCommand:            {"RunCommand", shapeString},
	FieldDoubleClickAction:     {"DoubleClickAction", shapeFixedBytes},
	FieldEMailAddress:          {"EMailAddress", shapeString},
	FieldProtectedEntry:        {"ProtectedEntry", shapeByte},
	FieldOwnSymbolsForPassword: {"OwnSymbolsForPassword", shapeString},
	FieldShiftDoubleClickAction: {"ShiftDoubleClickAction", shapeFixedBytes},
	FieldPasswordPolicyName:    {"PasswordPolicyName", shapeString},
	FieldEntryKeyboardShortcut: {"EntryKeyboardShortcut", shapeFixedBytes},
	FieldReserved2:             {"Reserved2", shapeUUID},
	FieldTwoFactorKey:          {"TwoFactorKey", shapeOpaque},
	FieldCreditCardNumber:      {"CreditCardNumber", shapeString},
	FieldCreditCardExpiration:  {"CreditCardExpiration", shapeString},
	FieldCreditCardVerifValue:  {"CreditCardVerifValue", shapeString},
	FieldCreditCardPin:         {"CreditCardPin", shapeString},
	FieldQRCode:                {"QRCode", shapeString},
}

// Field is one parsed record element.
type Field struct {
	Type FieldType
	Name string

	U32   uint32
	UUID  uuid.UUID
	Str   string
	Byte  byte
	Bytes []byte
}

func decodeField(typeByte byte, payload []byte) (Field, error) {
	t := FieldType(typeByte)
	info, known := fieldTypeTable[t]
	if !known {
		return Field{Type: FieldOpaque, Name: "Unknown", Bytes: append([]byte(nil), payload...)}, nil
	}

	f := Field{Type: t, Name: info.name}
	switch info.shape {
	case shapeU32Timestamp:
		if len(payload) < 4 {
			return Field{}, newErr(ErrUnexpectedEndOfPlaintext, nil)
		}
		f.U32 = leUint32(payload)
	case shapeUUID:
		u, err := decodeUUID(payload)
		if err != nil {
			return Field{}, err
		}
		f.UUID = u
	case shapeString:
		s, err := decodeUTF8(payload)
		if err != nil {
			return Field{}, err
		}
		f.Str = s
	case shapeByte:
		if len(payload) < 1 {
			return Field{}, newErr(ErrUnexpectedEndOfPlaintext, nil)
		}
		f.Byte = payload[0]
	default: // shapeFixedBytes, shapeOpaque
		f.Bytes = append([]byte(nil), payload...)
	}
	return f, nil
}

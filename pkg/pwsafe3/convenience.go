package pwsafe3

// The accessors in this file are caller-side conveniences over an already
// unlocked Database -- spec.md §1 places them outside the core's scope,
// but keeps them in the repository as the thin layer callers actually use.

// Groups returns the distinct Group field values across all records, in
// first-seen order.
func (db *Database) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, r := range db.Records {
		f, ok := r.Field(FieldGroup)
		if !ok || seen[f.Str] {
			continue
		}
		seen[f.Str] = true
		groups = append(groups, f.Str)
	}
	return groups
}

// ByGroup returns every record whose Group field equals name, in file
// order.
func (db *Database) ByGroup(name string) []*Record {
	var out []*Record
	for _, r := range db.Records {
		if f, ok := r.Field(FieldGroup); ok && f.Str == name {
			out = append(out, r)
		}
	}
	return out
}

// ByTitle returns every record whose Title field equals title.
func (db *Database) ByTitle(title string) []*Record {
	var out []*Record
	for _, r := range db.Records {
		if f, ok := r.Field(FieldTitle); ok && f.Str == title {
			out = append(out, r)
		}
	}
	return out
}

// ByUsername returns every record whose Username field equals username.
func (db *Database) ByUsername(username string) []*Record {
	var out []*Record
	for _, r := range db.Records {
		if f, ok := r.Field(FieldUsername); ok && f.Str == username {
			out = append(out, r)
		}
	}
	return out
}

// Title returns the record's Title field, if present.
func (r *Record) Title() (string, bool) {
	f, ok := r.Field(FieldTitle)
	return f.Str, ok
}

// Username returns the record's Username field, if present.
func (r *Record) Username() (string, bool) {
	f, ok := r.Field(FieldUsername)
	return f.Str, ok
}

// Password returns the record's Password field, if present.
func (r *Record) Password() (string, bool) {
	f, ok := r.Field(FieldPassword)
	return f.Str, ok
}

// Group returns the record's Group field, if present.
func (r *Record) Group() (string, bool) {
	f, ok := r.Field(FieldGroup)
	return f.Str, ok
}

// URL returns the record's URL field, if present.
func (r *Record) URL() (string, bool) {
	f, ok := r.Field(FieldURL)
	return f.Str, ok
}

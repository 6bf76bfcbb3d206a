package entity

// ID addresses a document. It is the decimal string taken from the URL and
// is kept verbatim, so "7" and "007" are different documents.
type ID string

// Valid reports whether id is one or more ASCII decimal digits.
func (id ID) Valid() bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// FileName is the on-disk name of the document, "<id>.json".
func (id ID) FileName() string {
	return string(id) + ".json"
}

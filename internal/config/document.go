package config

// Document is a parsed configuration file: the declared schema version plus
// the full settings mapping, including keys this build does not recognize.
// Unknown keys ride along unmodified through migration and write-back so a
// file shared with a newer minor release is not silently stripped.
type Document struct {
	Version  int
	Settings map[string]Value
}

// NewDocument returns an empty document stamped with the given version.
func NewDocument(version int) *Document {
	return &Document{Version: version, Settings: map[string]Value{}}
}

// Clone returns a deep copy. Migration mutates documents in place; callers
// that need the original (tests, dry runs) copy first.
func (d *Document) Clone() *Document {
	out := NewDocument(d.Version)
	for key, val := range d.Settings {
		out.Settings[key] = cloneValue(val)
	}
	return out
}

// Equal reports whether two documents have the same version and settings.
func (d *Document) Equal(other *Document) bool {
	if d.Version != other.Version || len(d.Settings) != len(other.Settings) {
		return false
	}
	for key, val := range d.Settings {
		otherVal, ok := other.Settings[key]
		if !ok || !val.Equal(otherVal) {
			return false
		}
	}
	return true
}

func cloneValue(v Value) Value {
	switch v.kind {
	case KindList:
		list := make([]Value, len(v.list))
		for i, item := range v.list {
			list[i] = cloneValue(item)
		}
		return ListValue(list...)
	case KindTable:
		table := make(map[string]Value, len(v.table))
		for key, item := range v.table {
			table[key] = cloneValue(item)
		}
		return TableValue(table)
	default:
		return v
	}
}

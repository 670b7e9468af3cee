package value

// Entry is a single column of a Row.
type Entry struct {
	Key   string
	Value Value
}

// Row is an ordered record of named columns.
type Row struct {
	keys   []string
	values map[string]Value
}

// NewRow builds a row from entries. A repeated key keeps its first position
// and takes the last value.
func NewRow(entries ...Entry) *Row {
	r := &Row{values: make(map[string]Value, len(entries))}
	for _, e := range entries {
		if _, ok := r.values[e.Key]; !ok {
			r.keys = append(r.keys, e.Key)
		}
		r.values[e.Key] = e.Value
	}
	return r
}

func (*Row) Kind() Kind { return KindRow }
func (*Row) sealed()    {}

func (r *Row) Len() int { return len(r.keys) }

func (r *Row) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the column names in insertion order.
func (r *Row) Keys() []string {
	return append([]string(nil), r.keys...)
}

func (r *Row) Entries() []Entry {
	entries := make([]Entry, len(r.keys))
	for i, k := range r.keys {
		entries[i] = Entry{Key: k, Value: r.values[k]}
	}
	return entries
}

// Table is an ordered sequence of row-values. Elements need not be rows.
type Table []Value

func (Table) Kind() Kind { return KindTable }
func (Table) sealed()    {}

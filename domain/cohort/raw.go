package cohort

// RawRow is one unprocessed source row keyed by source column name.
type RawRow map[string]string

// RawTable is a parsed but unenriched dataset: the shape every dataset
// source (file reader, database) hands to Enrich.
type RawTable struct {
	Headers []string
	Rows    []RawRow
}

// HasHeader reports whether the raw table carries the given source column.
func (r *RawTable) HasHeader(name string) bool {
	for _, h := range r.Headers {
		if h == name {
			return true
		}
	}
	return false
}

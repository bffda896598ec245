package record

import "encoding/json"

// StdDecoder is the general-purpose fallback for the field-extraction
// contract: a full JSON unmarshal with keyed access. Slower and allocating,
// but tolerant of escapes, reordered fields, and extra keys. Selected with
// `decoder: std`.
type StdDecoder struct{}

type rdnsRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Decode implements Decoder via encoding/json. The returned slices are
// owned copies, not views into line.
func (StdDecoder) Decode(line []byte) ([]byte, []byte, bool) {
	var rec rdnsRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, nil, false
	}
	return []byte(rec.Name), []byte(rec.Value), true
}

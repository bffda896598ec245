package record

// Scanner is a zero-copy parser for the fixed shape of an rDNS observation
// line: a flat JSON object of exactly four string fields in stable order
// (timestamp, name, type, value). It returns byte offsets instead of owned
// strings and performs no escape processing, so lines containing `\u`
// must be filtered out before they reach it.
//
// Field keys are never compared; the contract is positional. The 2nd and
// 4th values are the IP and hostname. This is a deliberate trade-off
// against a stable upstream schema.
type Scanner struct{}

// Scan parses one line and returns the spans of the name and value fields.
// Any deviation from the expected token sequence returns ok=false with no
// partial output.
func (Scanner) Scan(line []byte) (Record, bool) {
	c := cursor{buf: line}

	if !c.expect('{') {
		return Record{}, false
	}

	var spans [4]Span
	for i := 0; i < 4; i++ {
		if i > 0 && !c.expect(',') {
			return Record{}, false
		}
		if _, ok := c.str(); !ok { // key, discarded
			return Record{}, false
		}
		if !c.expect(':') {
			return Record{}, false
		}
		val, ok := c.str()
		if !ok {
			return Record{}, false
		}
		spans[i] = val
	}
	if !c.expect('}') {
		return Record{}, false
	}

	return Record{Name: spans[1], Value: spans[3]}, true
}

// Decode implements Decoder by slicing the scanned spans out of line.
func (s Scanner) Decode(line []byte) ([]byte, []byte, bool) {
	rec, ok := s.Scan(line)
	if !ok {
		return nil, nil, false
	}
	return rec.Name.Slice(line), rec.Value.Slice(line), true
}

// cursor is a single left-to-right scan position over one line.
type cursor struct {
	buf []byte
	pos int
}

// skipSpace advances past blanks, tabs, and line endings.
func (c *cursor) skipSpace() {
	for c.pos < len(c.buf) {
		switch c.buf[c.pos] {
		case ' ', '\t', '\n', '\r':
			c.pos++
		default:
			return
		}
	}
}

// expect consumes ch (after optional whitespace) or fails.
func (c *cursor) expect(ch byte) bool {
	c.skipSpace()
	if c.pos >= len(c.buf) || c.buf[c.pos] != ch {
		return false
	}
	c.pos++
	return true
}

// str consumes a quoted string and returns the span of its content.
// The content runs to the next '"'; escapes are not decoded, so an
// embedded escaped quote would end the token early.
func (c *cursor) str() (Span, bool) {
	if !c.expect('"') {
		return Span{}, false
	}
	start := c.pos
	for c.pos < len(c.buf) {
		if c.buf[c.pos] == '"' {
			span := Span{Start: start, End: c.pos}
			c.pos++
			return span, true
		}
		c.pos++
	}
	return Span{}, false // EOF inside the string
}

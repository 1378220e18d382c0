package searchindex

// VLQHexDecoder is a forward-only cursor over a VLQ-hex encoded string.
// Each character contributes 4 bits; character codes below 96 are
// continuation nibbles and codes 96 and above terminate the value being
// assembled. Bit 0 of the assembled value is the sign.
type VLQHexDecoder struct {
	s      string
	offset int
}

func NewVLQHexDecoder(s string) *VLQHexDecoder {
	return &VLQHexDecoder{s: s}
}

// Next decodes one signed integer and advances the cursor. ok is false once
// the stream is exhausted. A trailing run of continuation nibbles with no
// terminal nibble yields the partial value and then end of stream.
func (d *VLQHexDecoder) Next() (value int, ok bool) {
	if d.offset >= len(d.s) {
		return 0, false
	}

	var n uint32
	c := uint32(d.s[d.offset])

	for c < 96 && d.offset < len(d.s) {
		n = (n << 4) | (c & 15)
		d.offset++
		if d.offset >= len(d.s) {
			break
		}
		c = uint32(d.s[d.offset])
	}

	if c >= 96 && d.offset < len(d.s) {
		n = (n << 4) | (c & 15)
		d.offset++
	}

	if n&1 == 1 {
		return -int(n >> 1), true
	}
	return int(n >> 1), true
}

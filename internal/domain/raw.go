package domain

// RawBody carries a 2xx response body that was not JSON. The decoded
// value stays zero and RawText holds the body verbatim, so callers can
// still inspect what the API said instead of losing it. RawText is
// empty whenever decoding succeeded.
type RawBody struct {
	RawText string `json:"-"`
}

// SetRawText records the undecodable body.
func (r *RawBody) SetRawText(text string) { r.RawText = text }

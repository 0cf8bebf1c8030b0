package form

// Ticket identifies one submission issued from a record.
type Ticket struct {
	Seq   uint64 `json:"seq"`
	Edits uint64 `json:"edits"`
}

// Begin marks r as loading and issues a ticket for the request about to be
// sent.
func Begin(r Record) (Record, Ticket) {
	r.Seq++
	r = SetLoading(r)
	return r, Ticket{Seq: r.Seq, Edits: r.Edits}
}

// Current reports whether t is the latest submission issued from r.
func (t Ticket) Current(r Record) bool {
	return t.Seq == r.Seq
}

// Edited reports whether r was edited after t was issued.
func (t Ticket) Edited(r Record) bool {
	return r.Edits != t.Edits
}

// Complete applies the response to t. A response to a superseded submission
// is dropped and ok is false. Otherwise loading is cleared before apply runs.
func Complete(r Record, t Ticket, apply func(Record) Record) (Record, bool) {
	if !t.Current(r) {
		return r, false
	}
	r = SetNotLoading(r)
	if apply != nil {
		r = apply(r)
	}
	return r, true
}

package models

// Outcome classifies the caller-facing result of a mutation request.
// Queued is deliberately distinct from Success: a queued mutation is
// accepted but not yet durable against conflicts.
type Outcome string

// Mutation outcomes.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeQueued  Outcome = "queued"
	OutcomeFailure Outcome = "failure"
)

// MutationResult is returned to the caller for every mutation request.
type MutationResult struct {
	Outcome     Outcome `json:"outcome"`
	NoteID      string  `json:"note_id,omitempty"`
	OperationID string  `json:"operation_id,omitempty"` // set when Outcome is queued
	Message     string  `json:"message"`
}

// Queued reports whether the mutation was accepted into the queue.
func (r *MutationResult) Queued() bool { return r.Outcome == OutcomeQueued }

// BatchResult aggregates per-item results of a batch mutation.
type BatchResult struct {
	Results   []MutationResult `json:"results"`
	Succeeded int              `json:"succeeded"`
	Queued    int              `json:"queued"`
	Failed    int              `json:"failed"`
}

// Add appends an item result and updates the counters.
func (b *BatchResult) Add(r MutationResult) {
	b.Results = append(b.Results, r)
	switch r.Outcome {
	case OutcomeSuccess:
		b.Succeeded++
	case OutcomeQueued:
		b.Queued++
	case OutcomeFailure:
		b.Failed++
	}
}

// SyncReport summarizes a forced drain of the operation queue.
type SyncReport struct {
	Applied   int  `json:"applied"`
	Conflicts int  `json:"conflicts"`
	Failed    int  `json:"failed"`
	Pending   int  `json:"pending"` // operations still queued when the report was built
	Success   bool `json:"success"`
	TimedOut  bool `json:"timed_out"` // bounded wait exhausted; queue left intact
}

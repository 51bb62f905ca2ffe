package models

// BatchError records one failed item inside a batch operation.
type BatchError struct {
	DocumentID string
	Err        error
}

func (e BatchError) Error() string {
	return e.DocumentID + ": " + e.Err.Error()
}

// BatchSummary aggregates the outcome of a batch lifecycle operation.
// Batches never abort on the first failure; one bad item must not block
// cleanup of the rest.
type BatchSummary struct {
	Succeeded int
	Failed    int
	Errors    []BatchError
}

func (s *BatchSummary) addSuccess() { s.Succeeded++ }

func (s *BatchSummary) addFailure(id string, err error) {
	s.Failed++
	s.Errors = append(s.Errors, BatchError{DocumentID: id, Err: err})
}

// Record tallies a single item's outcome.
func (s *BatchSummary) Record(id string, err error) {
	if err != nil {
		s.addFailure(id, err)
		return
	}
	s.addSuccess()
}

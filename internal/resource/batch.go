package resource

// ImportBatch describes where a message sits in an import run. Remaining is
// the number of resources still to come after this batch; zero marks the tail.
type ImportBatch struct {
	FromSequence string `json:"fromSequence"`
	ToSequence   string `json:"toSequence"`
	Remaining    int    `json:"remaining"`
}

// ImportMessage is the envelope published for asynchronous ingestion.
type ImportMessage struct {
	Batch             ImportBatch     `json:"batch"`
	AccountSid        string          `json:"accountSid"`
	ImportedResources []*FlatResource `json:"importedResources"`
}

// IsTail reports whether this is the last message of the run.
func (m ImportMessage) IsTail() bool {
	return m.Batch.Remaining == 0
}

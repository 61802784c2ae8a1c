package shell

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/NikitaCOEUR/nucomplete/internal/completion"
)

// Record is one element of the serialized candidate array. Description is
// omitted, not emptied, when the candidate has no help; an empty Help is
// never written as "description": "".
type Record struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// EncodeCandidates serializes candidates in order. An empty list encodes
// as [] rather than null.
func EncodeCandidates(candidates []completion.Candidate) ([]byte, error) {
	records := make([]Record, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, Record{Value: c.Value, Description: c.Help})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode candidates: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCandidates parses the serialized array back into candidates
func DecodeCandidates(data []byte) ([]completion.Candidate, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}

	candidates := make([]completion.Candidate, 0, len(records))
	for _, r := range records {
		candidates = append(candidates, completion.Candidate{Value: r.Value, Help: r.Description})
	}
	return candidates, nil
}

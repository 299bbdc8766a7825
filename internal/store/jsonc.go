package store

import (
	"bytes"
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"

	"github.com/joss/agentcfg/internal/domain"
)

// Decode parses config file contents into an ordered document. Strict
// JSON is always tried first; only on failure does the lenient path
// run, which strips // and /* */ comments and trailing commas. Content
// that survives neither is a ParseError naming the file.
func Decode(path string, data []byte) (*domain.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.NewDocument(), nil
	}

	doc := domain.NewDocument()
	strictErr := json.Unmarshal(data, doc)
	if strictErr == nil {
		return doc, nil
	}

	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: strictErr}
	}
	doc = domain.NewDocument()
	if err := json.Unmarshal([]byte(repaired), doc); err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}
	return doc, nil
}

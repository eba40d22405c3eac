package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON defects in model output:
// missing quotes around keys, single quotes, unclosed brackets, trailing
// commas, stray markdown fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// UnmarshalLenient decodes near-JSON into target, trying strict JSON
// first, then repair, then Hjson (which tolerates unquoted keys and
// missing commas). Hosted inference endpoints occasionally return bodies
// that fail strict parsing but are recoverable.
func UnmarshalLenient(data []byte, target interface{}) error {
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(string(data)); err == nil {
		if err := json.Unmarshal([]byte(repaired), target); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unparseable response body: %w", err)
	}
	return nil
}

package export

import "encoding/json"

// encodeJSON serializes list-valued fields as JSON text. Empty lists are
// stored as NULL.
func encodeJSON[T any](values []T) (any, error) {
	if len(values) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// nullable turns an optional field into a SQL argument.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

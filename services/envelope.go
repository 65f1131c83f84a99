package services

import "encoding/json"

// unwrap returns the "data" member of a {"data": ...} envelope, or the body
// itself when there is no envelope.
func unwrap(body []byte) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return body
}

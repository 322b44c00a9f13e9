package agents

import "encoding/json"

// UnwrapEnvelope returns the payload nested under a "response" key when the
// provider wraps its body, otherwise the body itself.
func UnwrapEnvelope(body []byte) json.RawMessage {
	var envelope struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Response) > 0 && string(envelope.Response) != "null" {
		return envelope.Response
	}
	return body
}

// ExtractText pulls the free-text payload out of the webhook response shapes
// the providers use: {response: {response: "..."}}, {response: "..."}, a bare
// JSON string, or raw text. Structured payloads with no text field are
// returned re-serialized so callers can still embed them as prompt context.
func ExtractText(body []byte) string {
	var doubleWrapped struct {
		Response struct {
			Response string `json:"response"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &doubleWrapped); err == nil && doubleWrapped.Response.Response != "" {
		return doubleWrapped.Response.Response
	}

	var singleWrapped struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &singleWrapped); err == nil && singleWrapped.Response != "" {
		return singleWrapped.Response
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
		return plain
	}

	var structured struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && len(structured.Response) > 0 && string(structured.Response) != "null" {
		return string(structured.Response)
	}

	return string(body)
}

package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ListPayload is the data shape of collection responses.
type ListPayload[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

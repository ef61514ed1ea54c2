package services

import "fmt"

// RequestError marks a client input problem that should surface as a 4xx
// response. Everything else in the classification path degrades silently.
type RequestError struct {
	Status  int
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

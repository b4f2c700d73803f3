package connector

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

type Error struct {
	Code    int
	Message string
	Path    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("connector error, request path: %s, code: %d, message: %s", e.Path, e.Code, e.Message)
}

// Receive executes the request and decodes the raw JSON body into T.
// Non-2xx responses are turned into *Error with the body kept as the message.
func Receive[T any](r *resty.Request, path string, method string) (*T, error) {
	result := new(T)
	r.SetResult(result)
	resp, err := r.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &Error{
			Code:    resp.StatusCode(),
			Message: string(resp.Body()),
			Path:    path,
		}
	}
	return result, nil
}

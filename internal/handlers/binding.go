package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

var errEmptyBody = errors.New("empty request body")

// BindNestedOrFlat decodes the body into obj. A body wrapped in the resource
// key ({"colaborador": {...}}) and a flat body ({...}) are both accepted.
// The body is restored so later readers still see it.
func BindNestedOrFlat(c *gin.Context, key string, obj any) error {
	if c.Request.Body == nil {
		return errEmptyBody
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if len(bytes.TrimSpace(raw)) == 0 {
		return errEmptyBody
	}

	var envelope map[string]json.RawMessage
	if json.Unmarshal(raw, &envelope) == nil {
		if inner, ok := envelope[key]; ok {
			return json.Unmarshal(inner, obj)
		}
	}
	return json.Unmarshal(raw, obj)
}

// Package normalize folds the backend's response envelope variants into one
// canonical wrapper. The backend has gone through several envelope styles:
// some endpoints answer {success, data, message}, older ones answer a bare
// array or a bare object. Services call Wrap so their callers only ever see
// the wrapped form.
package normalize

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"traineeportal/pkg/portal"
	"traineeportal/pkg/tools/json"
)

type (
	// Envelope is the canonical wrapper every service returns.
	Envelope[T any] struct {
		Success bool   `json:"success"`
		Data    T      `json:"data"`
		Message string `json:"message,omitempty"`
	}
)

// Wrap decodes raw into the canonical envelope, tolerating the legacy shapes.
// A body already carrying a "success" field is read as the wrapper; a bare
// array or object becomes the data payload with Success true. When the data
// itself is an array but T is a struct, the array is nested under arrayKey
// before decoding. fixup, when non-nil, runs on the decoded data in every
// branch so services can coerce missing collections and recompute aggregates.
func Wrap[T any](raw []byte, arrayKey string, fixup func(*T)) (Envelope[T], error) {
	var env Envelope[T]

	parsed := gjson.ParseBytes(raw)
	var dataRaw []byte

	switch {
	case parsed.IsObject() && parsed.Get("success").Exists():
		env.Success = parsed.Get("success").Bool()
		env.Message = parsed.Get("message").String()
		if d := parsed.Get("data"); d.Exists() {
			dataRaw = []byte(d.Raw)
		}

	case parsed.IsArray() || parsed.IsObject():
		env.Success = true
		dataRaw = raw

	default:
		return env, portal.InvalidPayload(errUnexpectedShape)
	}

	if dataRaw != nil {
		if arrayKey != "" && gjson.ParseBytes(dataRaw).IsArray() {
			nested, err := sjson.SetRawBytes([]byte(`{}`), arrayKey, dataRaw)
			if err != nil {
				return env, portal.InvalidPayload(err)
			}
			dataRaw = nested
		}
		if err := json.Unmarshal(dataRaw, &env.Data); err != nil {
			return env, portal.InvalidPayload(err)
		}
	}

	if fixup != nil {
		fixup(&env.Data)
	}
	return env, nil
}

// Collection substitutes an empty slice for nil so callers never receive a
// null where the contract promises a collection.
func Collection[E any](s []E) []E {
	if s == nil {
		return []E{}
	}
	return s
}

type shapeError string

func (e shapeError) Error() string { return string(e) }

const errUnexpectedShape shapeError = "response is neither an object nor an array"

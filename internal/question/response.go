package question

import (
	"fmt"
	"math"
	"strconv"
)

// Response is the raw value a user supplied for a question. It is one of
// ScaleResponse, ChoiceResponse or TextResponse.
type Response interface {
	// Kind returns the answer kind this response variant belongs to.
	Kind() Kind

	// String renders the raw value for prompts and storage.
	String() string
}

// ScaleResponse is a 1-5 self rating.
type ScaleResponse struct {
	Value int
}

func (ScaleResponse) Kind() Kind { return KindScale }

func (r ScaleResponse) String() string { return strconv.Itoa(r.Value) }

// ChoiceResponse is the label of the selected option.
type ChoiceResponse struct {
	Label string
}

func (ChoiceResponse) Kind() Kind { return KindMultipleChoice }

func (r ChoiceResponse) String() string { return r.Label }

// TextResponse is a free-form answer.
type TextResponse struct {
	Text string
}

func (TextResponse) Kind() Kind { return KindText }

func (r TextResponse) String() string { return r.Text }

// TypeMismatchError is returned when a raw value does not have the
// primitive type required by the answer kind.
type TypeMismatchError struct {
	Kind Kind
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("answer kind %q cannot accept a %s value", e.Kind, e.Got)
}

// FromRaw converts a primitive caller value into a typed Response for the
// given kind. Scale answers accept any integer type and integral floats
// (JSON numbers decode as float64). Choice and text answers accept strings.
func FromRaw(kind Kind, raw any) (Response, error) {
	switch kind {
	case KindScale:
		switch v := raw.(type) {
		case int:
			return ScaleResponse{Value: v}, nil
		case int32:
			return ScaleResponse{Value: int(v)}, nil
		case int64:
			return ScaleResponse{Value: int(v)}, nil
		case float64:
			if v == math.Trunc(v) {
				return ScaleResponse{Value: int(v)}, nil
			}
			return nil, &TypeMismatchError{Kind: kind, Got: "non-integral number"}
		}
	case KindMultipleChoice:
		if s, ok := raw.(string); ok {
			return ChoiceResponse{Label: s}, nil
		}
	case KindText:
		if s, ok := raw.(string); ok {
			return TextResponse{Text: s}, nil
		}
	default:
		return nil, fmt.Errorf("unknown answer kind %q", kind)
	}
	return nil, &TypeMismatchError{Kind: kind, Got: fmt.Sprintf("%T", raw)}
}

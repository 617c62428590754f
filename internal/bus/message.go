package bus

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Code is the status code carried by every reply on the bus.
type Code int

const (
	CodeOK                Code = 1
	CodeGenericError      Code = -1
	CodeMsgJSONParseError Code = -2
	CodeNotFound          Code = -3
	CodeUserError         Code = -4
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeGenericError:
		return "generic_error"
	case CodeMsgJSONParseError:
		return "msg_json_parse_error"
	case CodeNotFound:
		return "not_found"
	case CodeUserError:
		return "user_error"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Message is a reply received on an inbox.
type Message struct {
	Data  string `json:"data"`
	Error string `json:"error"`
	Code  Code   `json:"code"`
}

var (
	ErrGeneric        = errors.New("bus: upstream error")
	ErrNotFound       = errors.New("bus: not found")
	ErrUserError      = errors.New("bus: user error")
	ErrTimeout        = errors.New("bus: request timed out")
	ErrMalformedReply = errors.New("bus: malformed reply")
)

// Error is a non-ok reply. It matches ErrNotFound, ErrUserError or ErrGeneric under errors.Is.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bus: %s", e.Code)
	}
	return fmt.Sprintf("bus: %s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == CodeNotFound
	case ErrUserError:
		return e.Code == CodeUserError
	case ErrGeneric:
		return e.Code != CodeNotFound && e.Code != CodeUserError
	}
	return false
}

// Err returns nil for ok replies and an *Error otherwise.
func (m Message) Err() error {
	if m.Code == CodeOK {
		return nil
	}
	return &Error{Code: m.Code, Message: m.Error}
}

// Decode unmarshals the plain JSON data of m into v.
func (m Message) Decode(v any) error {
	if err := json.Unmarshal([]byte(m.Data), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return nil
}

// DecodeGzipped unmarshals base64(gzip(json)) data of m into v.
func (m Message) DecodeGzipped(v any) error {
	raw, err := DecodeGzipped(m.Data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return nil
}

// envelope is what a request looks like on the wire.
type envelope struct {
	ReplyTo string `json:"reply_to"`
	Data    string `json:"data"`
}

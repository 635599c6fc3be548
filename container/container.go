// Package container binds a message and its password into the record that
// gets hidden in an image.
//
// The password is stored in clear next to the message. Anyone able to read
// the raw payload sees both, so the check in Unpack only gates honest readers.
package container

import (
	"errors"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

var (
	ErrMalformedPayload = errors.New("image does not contain a valid encoded message")
	ErrPasswordMismatch = errors.New("incorrect password")
)

const (
	passwordKey = "password"
	messageKey  = "message"
)

type record struct {
	Password string `json:"password"`
	Message  string `json:"message"`
}

// Pack serializes message and password as a JSON object with exactly the keys
// "password" and "message".
func Pack(message, password string) ([]byte, error) {
	return json.Marshal(record{Password: password, Message: message})
}

// PackBare packs a message with no password. Unpack accepts it with any password.
func PackBare(message string) ([]byte, error) {
	return Pack(message, "")
}

// Unpack decodes a packed record and returns its message if password matches
// the stored one. The comparison is a plain string equality.
func Unpack(data []byte, password string) (string, error) {
	rec, err := decode(data)
	if err != nil {
		return "", err
	}
	if rec.Password != "" && rec.Password != password {
		return "", ErrPasswordMismatch
	}
	return rec.Message, nil
}

func decode(data []byte) (*record, error) {
	if !utf8.Valid(data) {
		return nil, ErrMalformedPayload
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, ErrMalformedPayload
	}

	rec := &record{}
	if err := stringField(fields, passwordKey, &rec.Password); err != nil {
		return nil, err
	}
	if err := stringField(fields, messageKey, &rec.Message); err != nil {
		return nil, err
	}
	return rec, nil
}

// stringField leaves dst untouched when key is missing. A present key must
// hold a string; null counts as malformed.
func stringField(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil || value == nil {
		return ErrMalformedPayload
	}
	*dst = *value
	return nil
}

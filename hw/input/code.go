package input

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// A Code describes a host input event mapped to a paddle button. Only
// keyboard keys are supported, identified by their name.
type Code struct {
	Key string
}

// Name returns an user-friendly name for the input code.
func (mc Code) Name() string {
	return mc.Key
}

func (mc Code) MarshalText() ([]byte, error) {
	if mc.Key == "" {
		return []byte{}, nil
	}
	return []byte("key " + mc.Key), nil
}

func (mc *Code) UnmarshalText(text []byte) error {
	s := string(text)

	switch {
	case s == "":
		mc.Key = ""
	case strings.HasPrefix(s, "key"):
		str := ""
		if _, err := fmt.Sscanf(s, "key %s", &str); err != nil {
			return errors.Errorf("malformed key code: %s", s)
		}
		if !isKeyName(str) {
			return errors.Errorf("unrecognized key %q", str)
		}
		mc.Key = str
	default:
		return errors.Errorf("unrecognized input code: %s", s)
	}

	return nil
}

var namedKeys = map[string]bool{
	"Up": true, "Down": true, "Left": true, "Right": true,
	"Return": true, "Space": true, "Tab": true, "Backspace": true, "Escape": true,
	"LShift": true, "RShift": true, "LCtrl": true, "RCtrl": true, "LAlt": true, "RAlt": true,
}

func isKeyName(s string) bool {
	if len(s) == 1 {
		c := s[0]
		return ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
	}
	return namedKeys[s]
}

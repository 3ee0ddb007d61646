package lexer

import (
	"fmt"
)

// Policy tells the lexer what to do with characters that don't belong to any
// character class.
type Policy uint8

// Unrecognized character policies
const (
	WarnUnrecognized   Policy = iota // Skip the character and record a warning
	SkipUnrecognized                 // Skip the character silently
	RejectUnrecognized               // Stop with ErrUnrecognizedCharacter
)

var policyNames = map[Policy]string{
	WarnUnrecognized:   "warn",
	SkipUnrecognized:   "skip",
	RejectUnrecognized: "reject",
}

func (p Policy) String() string {
	if v, ok := policyNames[p]; ok {
		return v
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	for p, v := range policyNames {
		if v == name {
			return p, nil
		}
	}
	return WarnUnrecognized, fmt.Errorf("unknown policy %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (p Policy) MarshalText() ([]byte, error) {
	if _, ok := policyNames[p]; !ok {
		return nil, fmt.Errorf("unknown policy %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Options modify how the lexer deals with malformed input. The zero value is
// the default.
type Options struct {
	// Unrecognized is the policy for characters that match no class.
	Unrecognized Policy

	// AllowUnterminatedString makes a missing closing quote end the scan
	// without error, returning all the tokens produced before the quote.
	AllowUnterminatedString bool
}

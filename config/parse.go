// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBool accepts true/false, 1/0, yes/no and on/off in any case and fails
// on anything else.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%q: %w", s, ErrInvalidBool)
	}
}

// ParseInts parses a comma-separated list such as "2,2" or "[10, 5]".
func ParseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty list: %w", ErrInvalidList)
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrInvalidList)
		}
		out[i] = v
	}

	return out, nil
}

// boolValue is a flag.Value parsed with ParseBool.
type boolValue struct{ p *bool }

func (b boolValue) String() string {
	if b.p == nil {
		return ""
	}
	return strconv.FormatBool(*b.p)
}

func (b boolValue) Set(s string) error {
	v, err := ParseBool(s)
	if err != nil {
		return err
	}
	*b.p = v
	return nil
}

// intsValue is a flag.Value parsed with ParseInts.
type intsValue struct{ p *[]int }

func (l intsValue) String() string {
	if l.p == nil {
		return ""
	}
	parts := make([]string, len(*l.p))
	for i, v := range *l.p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l intsValue) Set(s string) error {
	v, err := ParseInts(s)
	if err != nil {
		return err
	}
	*l.p = v
	return nil
}

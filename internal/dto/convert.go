package dto

import "time"

const dateLayout = "2006-01-02"

// ParseDate accepts RFC3339 timestamps or bare dates. An empty string maps to
// the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}

// ParseDateRef is ParseDate for nullable columns: empty input maps to nil.
func ParseDateRef(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

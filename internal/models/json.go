package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice stores an ordered list of strings as a JSON column.
type StringSlice []string

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Section is one block of post body copy as stored in the content column.
type Section struct {
	Heading string   `json:"heading,omitempty"`
	Body    []string `json:"body"`
	Bullets []string `json:"bullets,omitempty"`
}

// SectionList stores the ordered post body sections as a JSON column.
type SectionList []Section

// Value implements driver.Valuer.
func (s SectionList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *SectionList) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
}

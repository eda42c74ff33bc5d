// Package session holds the signed-in user read from local storage.
package session

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Type string

const (
	Employee Type = "Employee"
	Admin    Type = "Admin"
)

// Session is the stored {"type", "email"} user record.
type Session struct {
	Type  Type   `yaml:"type" json:"type" validate:"required"`
	Email string `yaml:"email" json:"email" validate:"required,max=255,contains=@"`
}

var validate = validator.New()

func (s Session) IsEmployee() bool { return s.Type == Employee }

func (s Session) IsAdmin() bool { return s.Type == Admin }

// Parse decodes the stored user record. The record is JSON, which the YAML
// decoder reads as a flow mapping.
func Parse(data []byte) (Session, error) {
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return Session{}, fmt.Errorf("invalid session: %w", err)
	}
	return s, nil
}

// Load reads and parses the session file at path.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("read session file: %w", err)
	}
	return Parse(data)
}

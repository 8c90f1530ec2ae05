package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ServiceType categoriza um serviço do salão e marca as
// especialidades de uma profissional.
type ServiceType string

const (
	ServiceTypeHair    ServiceType = "HAIR"
	ServiceTypeLash    ServiceType = "LASH"
	ServiceTypeEyebrow ServiceType = "EYEBROW"
	ServiceTypeNail    ServiceType = "NAIL"
	ServiceTypeOther   ServiceType = "OTHER"
)

// Specialties é o conjunto de tipos de serviço que uma
// profissional atende. Persistido como JSON.
type Specialties []ServiceType

func (s Specialties) Contains(t ServiceType) bool {
	for _, sp := range s {
		if sp == t {
			return true
		}
	}
	return false
}

func (s Specialties) Value() (driver.Value, error) {
	if s == nil {
		s = Specialties{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Specialties) Scan(value any) error {
	if value == nil {
		*s = Specialties{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported specialties column type %T", value)
	}
}

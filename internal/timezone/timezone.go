package timezone

import "time"

// Fuso oficial do salão; todas as datas de agendamento e
// pagamento são interpretadas nele.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate interpreta "2006-01-02" no fuso do salão.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}

// ParseDateTime interpreta "2006-01-02T15:04:05" no fuso do salão.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04:05", s, Location())
}

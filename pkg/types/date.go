package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout формат календарной даты YYYY-MM-DD
const dateLayout = "2006-01-02"

// DateString календарная дата без компонента времени (например, "2025-10-15")
// Хранится и сериализуется как строка, в БД соответствует типу DATE
type DateString string

// NewDateString создает DateString из time.Time, отбрасывая время
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит дату из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("types: invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return DateString(s), nil
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	_, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return fmt.Errorf("types: invalid date %q, expected YYYY-MM-DD: %w", string(d), err)
	}
	return nil
}

// ToTime возвращает полночь даты в локальной тайм-зоне
// Начало смены неявно совпадает с полуночью её даты
func (d DateString) ToTime() (time.Time, error) {
	return time.ParseInLocation(dateLayout, string(d), time.Local)
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Before сравнивает даты лексикографически (формат YYYY-MM-DD это позволяет)
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// Scan реализует sql.Scanner: принимает DATE из БД
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDateString(v)
		return nil
	case []byte:
		parsed, err := NewDateStringFromString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := NewDateStringFromString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into DateString", src)
	}
}

// Value реализует driver.Valuer
func (d DateString) Value() (driver.Value, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

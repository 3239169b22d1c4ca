package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM (24-часовой)
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString время суток в формате "HH:MM" без привязки к дате
// Используется для временных слотов и времени работы
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero проверяет, что значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет корректность формата
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// Hour возвращает часы (0-23)
func (ts TimeString) Hour() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour(), nil
}

// Minute возвращает минуты (0-59)
func (ts TimeString) Minute() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Minute(), nil
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперёд
// Переход через полночь не поддерживается - время суток замкнуто в пределах одного дня
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore проверяет, что время строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// At совмещает время суток с датой в указанной локации
func (ts TimeString) At(date time.Time) (time.Time, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*ts = TimeString(v)
	case []byte:
		*ts = TimeString(v)
	case time.Time:
		*ts = NewTimeString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
	return nil
}

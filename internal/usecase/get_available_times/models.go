package get_available_times

import (
	"time"

	"github.com/josephken/RMS-ReservationService/pkg/types"
)

// Response модель ответа со списком доступных дат и времён
type Response struct {
	Days []DaySlots // Упорядочено по датам, начиная с первой доступной
}

// DaySlots доступные времена начала брони на одну дату
type DaySlots struct {
	Date  time.Time          // Дата (без времени)
	Times []types.TimeString // Целые часы, упорядочены по возрастанию
}

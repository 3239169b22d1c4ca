package get_available_times

import (
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	"github.com/josephken/RMS-ReservationService/pkg/types"
)

// firstCandidate определяет первый доступный момент начала брони
// Правила:
// - до открытия (с запасом на lead time) - первый слот 10:00 сегодня
// - после последнего доступного часа - первый слот 10:00 завтра
// - иначе следующий целый час с поправкой на lead time:
//   минута > 30 - пропускаем два часа, иначе один
//   (воспроизводит 30-минутный буфер без полной проверки каждого слота)
func firstCandidate(now time.Time) time.Time {
	lead := domain.MinNoticeMinutes * time.Minute
	opening := domain.OpeningTimeOn(now)
	lastStart := domain.LastReservationTimeOn(now)

	switch {
	case now.Before(opening.Add(-lead)):
		return opening
	case now.After(lastStart.Add(-lead)):
		return domain.OpeningTimeOn(now.AddDate(0, 0, 1))
	default:
		nextHour := now.Hour() + 1
		if now.Minute() > 30 {
			nextHour = now.Hour() + 2
		}
		return time.Date(now.Year(), now.Month(), now.Day(), nextHour, 0, 0, 0, now.Location())
	}
}

// generateDays генерирует последовательность (дата, времена) от первого
// доступного слота до конца окна предварительного бронирования (now + 2 недели)
// Первая дата может содержать неполный список времён; все последующие - полный
// день от открытия до последнего часа. Полный список строится один раз и
// разделяется всеми полными датами.
func generateDays(now time.Time) []DaySlots {
	first := firstCandidate(now)
	endDate := dateOnly(now.AddDate(0, 0, 7*domain.AdvanceWindowWeeks))

	days := make([]DaySlots, 0, 7*domain.AdvanceWindowWeeks+1)

	// Первая дата (может быть неполной)
	firstTimes := make([]types.TimeString, 0, domain.LastReservationHour-first.Hour()+1)
	for hour := first.Hour(); hour <= domain.LastReservationHour; hour++ {
		firstTimes = append(firstTimes, types.NewTimeString(
			time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)))
	}
	days = append(days, DaySlots{Date: dateOnly(first), Times: firstTimes})

	// Остальные даты - полный день
	fullDay := domain.FullDayTimes()
	for date := dateOnly(first).AddDate(0, 0, 1); !date.After(endDate); date = date.AddDate(0, 0, 1) {
		days = append(days, DaySlots{Date: date, Times: fullDay})
	}

	return days
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package notifyservice

import (
	"context"
	"time"
)

// dispatchTimeout максимальное время на доставку одного уведомления
const dispatchTimeout = 15 * time.Second

// Sender интерфейс отправителя уведомлений
type Sender interface {
	Send(ctx context.Context, event Event, notification *ReservationNotification) error
}

// Dispatcher асинхронный диспетчер уведомлений
// Отправка выполняется в отдельной горутине с собственным таймаутом:
// результат операции с бронью не зависит от доставки уведомления,
// ошибки доставки только логируются
type Dispatcher struct {
	sender Sender
	log    Logger
}

// NewDispatcher создает новый диспетчер уведомлений
func NewDispatcher(sender Sender, log Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		log:    log,
	}
}

// Dispatch отправляет уведомление fire-and-forget
// Контекст запроса намеренно не используется: уведомление должно уйти,
// даже если HTTP запрос уже завершился
func (d *Dispatcher) Dispatch(event Event, notification *ReservationNotification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := d.sender.Send(ctx, event, notification); err != nil {
			d.log.Error("Notification dispatch failed: event=%s, reservation_id=%d: %v",
				event, notification.ReservationID, err)
			return
		}

		d.log.Info("Notification dispatched: event=%s, reservation_id=%d",
			event, notification.ReservationID)
	}()
}

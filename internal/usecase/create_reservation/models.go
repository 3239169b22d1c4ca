package create_reservation

import "time"

// Request модель запроса на создание брони
type Request struct {
	UserID    int64     // ID пользователя-владельца брони
	TableID   int64     // ID столика
	Phone     string    // Контактный телефон
	Guests    int       // Размер компании (>= 1)
	StartTime time.Time // Время начала (целый час)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        int64     // ID созданной брони
	UserID    int64     // ID пользователя
	TableID   int64     // ID столика
	Status    string    // Статус брони (всегда CONFIRMED при создании)
	Phone     string    // Контактный телефон
	Guests    int       // Размер компании
	StartTime time.Time // Время начала
	EndTime   time.Time // Время окончания (= начало + 2 часа)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

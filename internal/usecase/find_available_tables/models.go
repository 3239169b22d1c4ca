package find_available_tables

import "time"

// Request модель запроса поиска свободных столиков
type Request struct {
	StartTime time.Time
	Guests    int
}

// TableInfo информация о свободном столике
type TableInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Floor    string `json:"floor"`
	Capacity int    `json:"capacity"`
}

// Response модель ответа поиска свободных столиков
type Response struct {
	Tables []TableInfo `json:"tables"`
}

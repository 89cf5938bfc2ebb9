package models

// CrimeRecord — криминальный инцидент из CSV-набора. Raw хранит исходные
// ячейки строки целиком для диагностики и не попадает в JSON.
type CrimeRecord struct {
	ID        string   `json:"id"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Category  string   `json:"category"`
	Raw       []string `json:"-"`
}

// CrimeStats — сводка по загруженному набору криминальных записей
type CrimeStats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
	Loaded     bool           `json:"loaded"`
}

// AreaFilter — круговая область для пространственных запросов
type AreaFilter struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
}

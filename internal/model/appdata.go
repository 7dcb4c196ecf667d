package model

// AppData is the aggregate of all four family collections. Each collection
// is independent: entries are unique by id within a collection, and stored
// order carries no meaning (display order is computed).
type AppData struct {
	Members []FamilyMember  `json:"members"`
	Todos   []TodoItem      `json:"todos"`
	Events  []CalendarEvent `json:"events"`
	Photos  []Photo         `json:"photos"`
}

package model

// Task is one to-do item. Identity is ID; two tasks never share an id
// within a session.
type Task struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

package note

import "time"

// ownerKey caches the full note list of one owner.
const ownerKey = "notes.%s"

type Note struct {
	Id        string    `json:"id"`
	UserId    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewNote struct {
	UserId  string
	Title   string
	Content string
}

package note

import "time"

type Note struct {
	Id        string    `json:"id" example:"f3b9a1c7-2d48-4c5b-8f0e-6d2a9c1b7e53"`
	UserId    string    `json:"userId" example:"8d3f9b1e-0f95-4a6b-9a1a-3a6f9d8e2c41"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note text"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Event is the envelope consumed from the messaging topic.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ImportNote is the payload of a "create" Event. Unlike NewNote it carries
// the owner explicitly, since queue messages have no authenticated caller.
type ImportNote struct {
	UserId  string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

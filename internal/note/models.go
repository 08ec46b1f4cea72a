package note

import "time"

// Note is the persistent record managed by this service. Title and
// content are free-form optional text. LastUpdatedAt is owned by the
// service layer and moves on every successful write, soft delete
// included. IsActive is the soft-delete flag: records are never
// physically removed, a delete only flips this to false.
type Note struct {
	ID            string    `json:"id" bson:"id"`
	Title         string    `json:"title" bson:"title"`
	Content       string    `json:"content" bson:"content"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" bson:"lastUpdatedAt"`
	IsActive      bool      `json:"isActive" bson:"isActive"`
}

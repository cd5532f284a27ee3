package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Director    string             `bson:"director" json:"director"`
	Year        int                `bson:"year" json:"year"`
	Description string             `bson:"description" json:"description"`
	Genre       string             `bson:"genre" json:"genre"`
	Comments    []Comment          `bson:"comments" json:"comments"`
}

// Comment is embedded in a movie document. UserID references a user by
// convention only; nothing in the store enforces it.
type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID  string             `bson:"user_id" json:"userId"`
	Comment string             `bson:"comment" json:"comment"`
}

package model

import "github.com/google/uuid"

// AuthorInput is the create-or-update payload for an author. A nil BookIDs
// leaves the author's books untouched; an empty slice removes them all.
type AuthorInput struct {
	ID        *uuid.UUID  `json:"id"`
	FirstName string      `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string      `json:"lastName" binding:"required,min=1,max=100"`
	Gender    Gender      `json:"gender" binding:"required,oneof=MALE FEMALE"`
	BookIDs   []uuid.UUID `json:"bookIds"`
}

func (in AuthorInput) ToEntity() Author {
	a := Author{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Gender:    in.Gender,
	}
	if in.ID != nil {
		a.ID = *in.ID
	}
	return a
}

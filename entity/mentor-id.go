package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentorID is the opaque mentor identifier. Its textual form is the hex
// encoding of a MongoDB ObjectID; nothing outside this file relies on that.
type MentorID string

func NewMentorID() MentorID {
	return MentorID(primitive.NewObjectID().Hex())
}

// ParseMentorID validates the textual identifier. An empty string is a
// validation error, anything else that is not a well-formed id is ErrMalformedID.
func ParseMentorID(s string) (MentorID, error) {
	if s == "" {
		return "", NewValidationError("id")
	}
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return "", ErrMalformedID
	}
	return MentorID(oid.Hex()), nil
}

func MentorIDFromObjectID(oid primitive.ObjectID) MentorID {
	return MentorID(oid.Hex())
}

func (id MentorID) ObjectID() (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, ErrMalformedID
	}
	return oid, nil
}

func (id MentorID) String() string {
	return string(id)
}

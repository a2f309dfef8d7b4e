package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// IsValidID reports whether s is a well-formed document identifier:
// a 24 character hexadecimal ObjectID.
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}

// ParseID converts s into an ObjectID. ok is false when s is not a valid identifier.
func ParseID(s string) (id primitive.ObjectID, ok bool) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is the typed view of an admins document used by the login flow.
// Admin documents may carry any other fields; those are kept in the raw Document.
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"` // bcrypt hash
}

// AdminFromDocument decodes the well-known admin fields out of a stored document.
// A password stored with a non-string type fails to decode.
func AdminFromDocument(doc Document) (Admin, error) {
	var admin Admin
	raw, err := bson.Marshal(doc)
	if err != nil {
		return admin, err
	}
	if err := bson.Unmarshal(raw, &admin); err != nil {
		return admin, err
	}
	return admin, nil
}

// PublicAdmin returns a copy of an admin document without the password hash.
func PublicAdmin(doc Document) Document {
	out := CloneDocument(doc)
	delete(out, "password")
	return out
}

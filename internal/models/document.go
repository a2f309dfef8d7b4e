package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Document is a schemaless record as stored in a collection.
type Document = bson.M

// CollectionName is one of the fixed set of collections the API serves.
type CollectionName string

const (
	Admins CollectionName = "admins"
	// Notifications keeps the historical collection spelling; clients address it as /notifections.
	Notifications CollectionName = "notifections"
	CarouselData  CollectionName = "carouseldata"
	AboutText     CollectionName = "about_text"
	BasicInfo     CollectionName = "basic_info"
)

// Collections lists every known collection.
var Collections = []CollectionName{Admins, Notifications, CarouselData, AboutText, BasicInfo}

// IDField is the key under which the store keeps a document's identifier.
const IDField = "_id"

// StripID removes a client supplied identifier so the store stays the only
// source of ids. The input document is modified in place and returned.
func StripID(doc Document) Document {
	delete(doc, IDField)
	return doc
}

// CloneDocument returns a shallow copy of doc.
func CloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// MissingFields reports the fields that are absent or hold a falsy value
// (null, "", false, 0).
func MissingFields(doc Document, fields ...string) []string {
	var missing []string
	for _, field := range fields {
		if !isTruthy(doc[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isTruthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case float64:
		return value != 0
	case int:
		return value != 0
	case int32:
		return value != 0
	case int64:
		return value != 0
	default:
		return true
	}
}

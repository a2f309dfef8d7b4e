package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(primitive.NewObjectID().Hex()))
	assert.True(t, IsValidID("65a1f0c2b4d3e2a1f0c2b4d3"))

	for _, s := range []string{"", "zzz", "65a1f0c2b4d3e2a1f0c2b4d", "65a1f0c2b4d3e2a1f0c2b4d3a", "65a1f0c2b4d3e2a1f0c2b4dg", "a@x.com"} {
		assert.False(t, IsValidID(s), "%q", s)
	}
}

func TestParseID(t *testing.T) {
	want := primitive.NewObjectID()
	got, ok := ParseID(want.Hex())
	require.True(t, ok)
	assert.Equal(t, want, got)

	got, ok = ParseID("nope")
	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func TestMissingFields(t *testing.T) {
	doc := Document{
		"name":   "X",
		"blank":  "",
		"null":   nil,
		"zero":   0.0,
		"off":    false,
		"nested": Document{},
		"count":  3.0,
	}

	assert.Empty(t, MissingFields(doc, "name", "nested", "count"))
	assert.Equal(t, []string{"blank", "null", "zero", "off", "absent"},
		MissingFields(doc, "blank", "null", "zero", "off", "absent"))
}

func TestStripAndClone(t *testing.T) {
	doc := Document{IDField: "x", "a": 1}
	clone := CloneDocument(doc)

	StripID(doc)
	assert.NotContains(t, doc, IDField)
	assert.Contains(t, clone, IDField)

	clone["a"] = 2
	assert.Equal(t, 1, doc["a"])
}

func TestAdminFromDocument(t *testing.T) {
	id := primitive.NewObjectID()
	admin, err := AdminFromDocument(Document{
		IDField:    id,
		"email":    "a@x.com",
		"password": "$2a$10$hash",
		"extra":    []string{"kept", "aside"},
	})
	require.NoError(t, err)
	assert.Equal(t, id, admin.ID)
	assert.Equal(t, "a@x.com", admin.Email)
	assert.Equal(t, "$2a$10$hash", admin.Password)

	_, err = AdminFromDocument(Document{"email": "a@x.com", "password": 42})
	assert.Error(t, err)
}

func TestPublicAdmin(t *testing.T) {
	doc := Document{"email": "a@x.com", "password": "$2a$10$hash"}
	public := PublicAdmin(doc)

	assert.NotContains(t, public, "password")
	assert.Equal(t, "a@x.com", public["email"])
	assert.Contains(t, doc, "password")
	assert.False(t, strings.Contains(public["email"].(string), "$2a$"))
}

func TestCollectionsAreKnown(t *testing.T) {
	assert.ElementsMatch(t, []CollectionName{
		"admins", "notifections", "carouseldata", "about_text", "basic_info",
	}, Collections)
}

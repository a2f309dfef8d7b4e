package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tum-backend/internal/database"
	"tum-backend/internal/models"
)

type operation uint8

const (
	opCreate operation = 1 << iota
	opList
	opGet
	opUpdate
	opDelete
)

// Resource describes one schemaless collection exposed over CRUD routes and
// the shape of the envelopes it answers with.
type Resource struct {
	Collection models.CollectionName
	Path       string

	Created  string
	Listed   string
	Fetched  string
	Updated  string
	Deleted  string
	NotFound string
	// Empty is the 404 message for an empty list. When unset an empty list is returned with 200.
	Empty string

	ListKey string
	ItemKey string
	// UpdatedKey echoes the applied fields under this key; when unset the update result is returned.
	UpdatedKey string
	// DeleteResult adds the delete result to the delete envelope.
	DeleteResult bool
	// Flagged marks the operations whose envelope carries "success": true.
	Flagged operation

	Required        []string
	RequiredMessage string
}

func (r Resource) envelope(op operation, message string) gin.H {
	body := gin.H{"message": message}
	if r.Flagged&op != 0 {
		body["success"] = true
	}
	return body
}

func (r Resource) route(method string, withID bool) string {
	if withID {
		return method + " " + r.Path + "/:id"
	}
	return method + " " + r.Path
}

func CreateDocument(d Deps, r Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := r.route(http.MethodPost, false)
		defer handlePanic(c, route)

		doc, ok := bindDocument(c, route)
		if !ok {
			return
		}
		if len(r.Required) > 0 && len(models.MissingFields(doc, r.Required...)) > 0 {
			respondWithError(c, http.StatusBadRequest, route, r.RequiredMessage)
			return
		}

		ctx, cancel := d.opContext(c)
		defer cancel()

		coll, ok := d.collection(ctx, c, route, r.Collection)
		if !ok {
			return
		}

		id, err := coll.Insert(ctx, doc)
		if err != nil {
			respondInternal(c, route, err)
			return
		}

		body := r.envelope(opCreate, r.Created)
		body["result"] = insertResult(id)
		c.JSON(http.StatusOK, body)
	}
}

func ListDocuments(d Deps, r Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := r.route(http.MethodGet, false)
		defer handlePanic(c, route)

		ctx, cancel := d.opContext(c)
		defer cancel()

		coll, ok := d.collection(ctx, c, route, r.Collection)
		if !ok {
			return
		}

		docs, err := coll.FindAll(ctx)
		if err != nil {
			respondInternal(c, route, err)
			return
		}
		if len(docs) == 0 && r.Empty != "" {
			respondWithError(c, http.StatusNotFound, route, r.Empty)
			return
		}

		body := r.envelope(opList, r.Listed)
		body[r.ListKey] = docs
		c.JSON(http.StatusOK, body)
	}
}

func GetDocument(d Deps, r Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := r.route(http.MethodGet, true)
		defer handlePanic(c, route)

		id, ok := parseID(c, route)
		if !ok {
			return
		}

		ctx, cancel := d.opContext(c)
		defer cancel()

		coll, ok := d.collection(ctx, c, route, r.Collection)
		if !ok {
			return
		}

		doc, err := coll.FindOne(ctx, models.Document{models.IDField: id})
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, r.NotFound)
			return
		}
		if err != nil {
			respondInternal(c, route, err)
			return
		}

		body := r.envelope(opGet, r.Fetched)
		body[r.ItemKey] = doc
		c.JSON(http.StatusOK, body)
	}
}

func UpdateDocument(d Deps, r Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := r.route(http.MethodPatch, true)
		defer handlePanic(c, route)

		id, ok := parseID(c, route)
		if !ok {
			return
		}

		fields, ok := bindDocument(c, route)
		if !ok {
			return
		}
		if len(fields) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "No fields to update")
			return
		}

		ctx, cancel := d.opContext(c)
		defer cancel()

		coll, ok := d.collection(ctx, c, route, r.Collection)
		if !ok {
			return
		}

		matched, err := coll.UpdateFields(ctx, id, fields)
		if err != nil {
			respondInternal(c, route, err)
			return
		}
		if matched == 0 {
			respondWithError(c, http.StatusNotFound, route, r.NotFound)
			return
		}

		body := r.envelope(opUpdate, r.Updated)
		if r.UpdatedKey != "" {
			body[r.UpdatedKey] = fields
		} else {
			body["result"] = updateResult(matched)
		}
		c.JSON(http.StatusOK, body)
	}
}

func DeleteDocument(d Deps, r Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := r.route(http.MethodDelete, true)
		defer handlePanic(c, route)

		id, ok := parseID(c, route)
		if !ok {
			return
		}

		ctx, cancel := d.opContext(c)
		defer cancel()

		coll, ok := d.collection(ctx, c, route, r.Collection)
		if !ok {
			return
		}

		deleted, err := coll.DeleteOne(ctx, id)
		if err != nil {
			respondInternal(c, route, err)
			return
		}
		if deleted == 0 {
			respondWithError(c, http.StatusNotFound, route, r.NotFound)
			return
		}

		body := r.envelope(opDelete, r.Deleted)
		if r.DeleteResult {
			body["result"] = deleteResult(deleted)
		}
		c.JSON(http.StatusOK, body)
	}
}

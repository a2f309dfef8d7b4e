package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tum-backend/internal/credentials"
	"tum-backend/internal/database"
	"tum-backend/internal/models"
)

const defaultTimeout = 5 * time.Second

// StoreSource yields the shared Store, connecting on first use.
type StoreSource interface {
	Store(ctx context.Context) (database.Store, error)
}

// Deps carries what every handler needs.
type Deps struct {
	Stores  StoreSource
	Hasher  *credentials.Hasher
	Timeout time.Duration
}

func (d Deps) opContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// collection resolves name on the shared store. On failure the response has
// already been written.
func (d Deps) collection(ctx context.Context, c *gin.Context, route string, name models.CollectionName) (database.Collection, bool) {
	store, err := d.Stores.Store(ctx)
	if err != nil {
		respondInternal(c, route, err)
		return nil, false
	}
	return store.Collection(name), true
}

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// respondInternal logs err and answers 500 without exposing the cause.
func respondInternal(c *gin.Context, route string, err error) {
	log.Printf("[%s] [ERROR] %v", route, err)
	respondWithError(c, http.StatusInternalServerError, route, "Server error")
}

// parseID applies the identifier guard to the :id route parameter.
func parseID(c *gin.Context, route string) (primitive.ObjectID, bool) {
	id, ok := models.ParseID(c.Param("id"))
	if !ok {
		respondWithError(c, http.StatusBadRequest, route, "Invalid ID format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindDocument decodes the request body as a JSON object. Client supplied ids are dropped.
func bindDocument(c *gin.Context, route string) (models.Document, bool) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		if err != nil {
			log.Printf("[%s] [ERROR] invalid body: %v", route, err)
		}
		respondWithError(c, http.StatusBadRequest, route, "Invalid request body")
		return nil, false
	}
	return models.StripID(doc), true
}

func respondValidationError(c *gin.Context, route string, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		log.Printf("[%s] returning error %d: validation failed %v", route, http.StatusBadRequest, details)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "validation failed",
			"details": details,
		})
		return
	}

	respondWithError(c, http.StatusBadRequest, route, "Invalid request body")
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func insertResult(id primitive.ObjectID) gin.H {
	return gin.H{"acknowledged": true, "insertedId": id}
}

func updateResult(matched int64) gin.H {
	return gin.H{"acknowledged": true, "matchedCount": matched}
}

func deleteResult(deleted int64) gin.H {
	return gin.H{"acknowledged": true, "deletedCount": deleted}
}

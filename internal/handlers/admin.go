package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tum-backend/internal/database"
	"tum-backend/internal/models"
)

const duplicateAdminMessage = "An admin with this email already exists"

/*
POST /admins
- Same email cannot be registered twice
- Password is stored as a bcrypt hash
*/
func CreateAdmin(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admins"
		defer handlePanic(c, route)

		doc, ok := bindDocument(c, route)
		if !ok {
			return
		}

		email, _ := doc["email"].(string)
		password, _ := doc["password"].(string)
		if strings.TrimSpace(email) == "" || password == "" {
			respondWithError(c, http.StatusBadRequest, route, "email and password are required")
			return
		}

		ctx, cancel := d.opContext(c)
		defer cancel()

		admins, ok := d.collection(ctx, c, route, models.Admins)
		if !ok {
			return
		}

		_, err := admins.FindOne(ctx, models.Document{"email": email})
		if err == nil {
			respondWithError(c, http.StatusBadRequest, route, duplicateAdminMessage)
			return
		}
		if !errors.Is(err, database.ErrNotFound) {
			respondInternal(c, route, err)
			return
		}

		hashed, err := d.Hasher.Hash(password)
		if err != nil {
			respondInternal(c, route, err)
			return
		}
		doc["password"] = hashed

		id, err := admins.Insert(ctx, doc)
		if errors.Is(err, database.ErrDuplicateKey) {
			respondWithError(c, http.StatusBadRequest, route, duplicateAdminMessage)
			return
		}
		if err != nil {
			respondInternal(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Admin created successfully",
			"email":   email,
			"result":  insertResult(id),
		})
	}
}

/*
GET /admins
- Empty list is a valid answer
*/
func GetAdmins(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admins"
		defer handlePanic(c, route)

		ctx, cancel := d.opContext(c)
		defer cancel()

		admins, ok := d.collection(ctx, c, route, models.Admins)
		if !ok {
			return
		}

		docs, err := admins.FindAll(ctx)
		if err != nil {
			respondInternal(c, route, err)
			return
		}

		out := make([]models.Document, 0, len(docs))
		for _, doc := range docs {
			out = append(out, models.PublicAdmin(doc))
		}
		c.JSON(http.StatusOK, out)
	}
}

/*
GET /admins/:email
*/
func GetAdminByEmail(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admins/:email"
		defer handlePanic(c, route)

		ctx, cancel := d.opContext(c)
		defer cancel()

		admins, ok := d.collection(ctx, c, route, models.Admins)
		if !ok {
			return
		}

		doc, err := admins.FindOne(ctx, models.Document{"email": c.Param("email")})
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "admins not found")
			return
		}
		if err != nil {
			respondInternal(c, route, err)
			return
		}

		c.JSON(http.StatusOK, models.PublicAdmin(doc))
	}
}

/*
DELETE /admins/:id
*/
func DeleteAdmin(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admins/:id"
		defer handlePanic(c, route)

		id, ok := parseID(c, route)
		if !ok {
			return
		}

		ctx, cancel := d.opContext(c)
		defer cancel()

		admins, ok := d.collection(ctx, c, route, models.Admins)
		if !ok {
			return
		}

		deleted, err := admins.DeleteOne(ctx, id)
		if err != nil {
			respondInternal(c, route, err)
			return
		}
		if deleted == 0 {
			respondWithError(c, http.StatusNotFound, route, "admin not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Admin deleted successfully",
			"result":  deleteResult(deleted),
		})
	}
}

/*
PATCH /admins/:id
- Body must carry "status"; every other field is ignored
*/
func UpdateAdminStatus(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admins/:id"
		defer handlePanic(c, route)

		id, ok := parseID(c, route)
		if !ok {
			return
		}

		doc, ok := bindDocument(c, route)
		if !ok {
			return
		}
		status, ok := doc["status"]
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "status is required")
			return
		}

		ctx, cancel := d.opContext(c)
		defer cancel()

		admins, ok := d.collection(ctx, c, route, models.Admins)
		if !ok {
			return
		}

		matched, err := admins.UpdateFields(ctx, id, models.Document{"status": status})
		if err != nil {
			respondInternal(c, route, err)
			return
		}
		if matched == 0 {
			respondWithError(c, http.StatusNotFound, route, "admins not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "admins status updated successfully",
			"result":  updateResult(matched),
		})
	}
}

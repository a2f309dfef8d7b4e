package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tum-backend/internal/database"
	"tum-backend/internal/models"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

/*
POST /admin-login
- No token is issued; success only echoes the email
*/
func AdminLogin(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin-login"
		defer handlePanic(c, route)

		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		ctx, cancel := d.opContext(c)
		defer cancel()

		admins, ok := d.collection(ctx, c, route, models.Admins)
		if !ok {
			return
		}

		doc, err := admins.FindOne(ctx, models.Document{"email": req.Email})
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(c, http.StatusBadRequest, route, "admin not found")
			return
		}
		if err != nil {
			respondInternal(c, route, err)
			return
		}

		// A stored password of the wrong type decodes with an error and never matches.
		admin, err := models.AdminFromDocument(doc)
		if err != nil || !d.Hasher.Verify(req.Password, admin.Password) {
			respondWithError(c, http.StatusBadRequest, route, "Invalid password")
			return
		}

		log.Println("[AUTH] [INFO] admin login succeeded:", req.Email)
		c.JSON(http.StatusOK, gin.H{
			"message": "success",
			"email":   req.Email,
		})
	}
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/nexlot/nexlot-backend/internal/models"
	"github.com/nexlot/nexlot-backend/internal/services"
	"gorm.io/gorm"
)

// UploadVerificationDocuments accepts a space owner's identity documents
// and opens (or refreshes) their pending verification request.
func UploadVerificationDocuments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		role := c.GetString("role")

		if role != string(models.RoleSpaceOwner) {
			c.JSON(403, gin.H{"error": "Only space owners require verification"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(400, gin.H{"error": "Multipart form required"})
			return
		}

		files := form.File["documents"]
		if len(files) == 0 {
			c.JSON(400, gin.H{"error": "At least one document is required"})
			return
		}

		var urls []string
		for _, file := range files {
			url, err := services.UploadImage(file, services.FolderDocuments)
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to upload document: " + err.Error()})
				return
			}
			urls = append(urls, url)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var request models.VerificationRequest
			result := tx.Where("owner_id = ? AND status = ?", userId, models.VerificationPending).
				First(&request)
			if result.Error != nil {
				request = models.VerificationRequest{
					OwnerID:   userId,
					Documents: urls,
					Status:    string(models.VerificationPending),
				}
				if err := tx.Create(&request).Error; err != nil {
					return err
				}
			} else {
				request.Documents = append(request.Documents, urls...)
				if err := tx.Save(&request).Error; err != nil {
					return err
				}
			}

			return tx.Model(&models.User{}).
				Where("id = ?", userId).
				Update("verification_status", models.VerificationPending).Error
		})
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to record verification request"})
			return
		}

		c.JSON(201, gin.H{
			"message":   "Documents uploaded. Verification in progress.",
			"documents": urls,
		})
	}
}

// GetVerificationRequests lists verification requests for the admin
// dashboard, pending ones first unless a status filter is given.
func GetVerificationRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Owner")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var requests []models.VerificationRequest
		if err := query.Order("created_at").Find(&requests).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch verification requests"})
			return
		}

		c.JSON(200, requests)
	}
}

// DecideVerification applies the admin's approve/reject verdict on an
// owner's documents and mirrors it onto the user profile.
func DecideVerification(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.Param("id")

		var input struct {
			Action string `json:"action" binding:"required,oneof=approve reject"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var request models.VerificationRequest
		if err := db.First(&request, requestId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Verification request not found"})
			return
		}

		if !request.CanBeDecided() {
			c.JSON(409, gin.H{"error": "Verification request has already been decided"})
			return
		}

		newStatus := models.VerificationRejected
		if input.Action == "approve" {
			newStatus = models.VerificationApproved
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.VerificationRequest{}).
				Where("id = ?", request.ID).
				Update("status", newStatus).Error; err != nil {
				return err
			}

			return tx.Model(&models.User{}).
				Where("id = ?", request.OwnerID).
				Update("verification_status", newStatus).Error
		})
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to update verification status"})
			return
		}

		request.Status = string(newStatus)

		hub.SendVerificationDecided(request.OwnerID, services.VerificationDecided{
			RequestID: request.ID,
			Status:    request.Status,
		})

		c.JSON(200, request)
	}
}

// File: /controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"radlog-api/models"
	"radlog-api/utils"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Name         *string `json:"name"`
		Organization *string `json:"organization"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Organization != nil {
		updates["organization"] = *req.Organization
	}

	if err := uc.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.SendSuccess(c, "Profile updated successfully", nil)
}

func (uc *UserController) GetStatistics(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var recordCount int64
	uc.db.Model(&models.WasteRecord{}).Where("owner_id = ?", userID).Count(&recordCount)

	var latest models.WasteRecord
	statistics := gin.H{
		"record_count": recordCount,
	}
	if err := uc.db.Where("owner_id = ?", userID).Order("created_at DESC, id DESC").First(&latest).Error; err == nil {
		statistics["latest_isotope"] = latest.Isotope
		statistics["latest_density_bq_per_gram"] = latest.DensityBqPerGram
		statistics["latest_created_at"] = latest.CreatedAt
	}

	c.JSON(http.StatusOK, statistics)
}

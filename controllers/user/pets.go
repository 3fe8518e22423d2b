package userControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

type PetInput struct {
	Name      string  `json:"name" binding:"required"`
	Species   string  `json:"species" binding:"required"`
	Breed     string  `json:"breed"`
	AgeMonths int     `json:"age_months"`
	WeightKG  float64 `json:"weight_kg"`
	Notes     string  `json:"notes"`
}

// GET /user/pets
func GetPets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var pets []models.Pet
		if err := db.Where("user_id = ?", userID).Order("created_at").Find(&pets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pets"})
			return
		}
		c.JSON(http.StatusOK, pets)
	}
}

// POST /user/pets
func CreatePet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input PetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pet := models.Pet{
			UserID:    userID,
			Name:      input.Name,
			Species:   input.Species,
			Breed:     input.Breed,
			AgeMonths: input.AgeMonths,
			WeightKG:  input.WeightKG,
			Notes:     input.Notes,
		}
		if err := db.Create(&pet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pet"})
			return
		}
		c.JSON(http.StatusCreated, pet)
	}
}

// petByOwner loads a pet only if the signed-in user owns it.
func petByOwner(c *gin.Context, db *gorm.DB) (models.Pet, bool) {
	userID := c.GetString("user_id")

	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet ID"})
		return models.Pet{}, false
	}

	var pet models.Pet
	if err := db.Where("id = ? AND user_id = ?", uint(id64), userID).First(&pet).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
		return models.Pet{}, false
	}
	return pet, true
}

// PUT /user/pets/:id
func UpdatePet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pet, ok := petByOwner(c, db)
		if !ok {
			return
		}

		var input PetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pet.Name = input.Name
		pet.Species = input.Species
		pet.Breed = input.Breed
		pet.AgeMonths = input.AgeMonths
		pet.WeightKG = input.WeightKG
		pet.Notes = input.Notes

		if err := db.Save(&pet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pet"})
			return
		}
		c.JSON(http.StatusOK, pet)
	}
}

// DELETE /user/pets/:id
func DeletePet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pet, ok := petByOwner(c, db)
		if !ok {
			return
		}

		if err := db.Delete(&pet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pet"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pet deleted"})
	}
}

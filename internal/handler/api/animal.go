package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "pawhaven/internal/handler/dto/request"
	resdto "pawhaven/internal/handler/dto/response"
	"pawhaven/internal/handler/middleware"
	"pawhaven/internal/usecase/commands"
	"pawhaven/internal/usecase/queries"
)

type AnimalHandler struct {
	animalCommands commands.AnimalCommands
	animalQueries  queries.AnimalQueries
}

func NewAnimalHandler(animalCommands commands.AnimalCommands, animalQueries queries.AnimalQueries) *AnimalHandler {
	return &AnimalHandler{
		animalCommands: animalCommands,
		animalQueries:  animalQueries,
	}
}

// @Summary Register animal
// @Description Register a new animal under the authenticated shelter
// @Tags animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAnimalRequest true "Animal request"
// @Success 201 {object} resdto.CreateAnimalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /animals [post]
func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	shelterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.animalCommands.Create(c.Request.Context(), req.Name, req.Breed, req.PhotoURL, shelterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAnimal):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid animal data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateAnimalResponse{ID: result.AnimalID})
}

// @Summary Get animal
// @Description Get animal by ID
// @Tags animals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Success 200 {object} resdto.AnimalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetAnimal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid animal ID format",
		})
		return
	}

	view, err := h.animalQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAnimalViewNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Animal not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnimalView(view))
}

// @Summary List shelter animals
// @Description List all animals of the authenticated shelter
// @Tags animals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AnimalResponse
// @Failure 401 {object} map[string]string
// @Router /animals [get]
func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	shelterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.animalQueries.ListByShelter(c.Request.Context(), shelterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AnimalResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromAnimalView(view)
	}

	c.JSON(http.StatusOK, response)
}

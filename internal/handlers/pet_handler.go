package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/middleware"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/account"
)

type PetHandler struct {
	create *account.CreatePet
	list   *account.ListPets
}

func NewPetHandler(create *account.CreatePet, list *account.ListPets) *PetHandler {
	return &PetHandler{create: create, list: list}
}

type CreatePetRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Species string `json:"species" binding:"required,max=50"`
	Breed   string `json:"breed" binding:"max=100"`
	Gender  string `json:"gender" binding:"omitempty,oneof=Male Female Unknown"`
	Age     string `json:"age" binding:"max=20"`
}

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	pet, err := h.create.Execute(c.Request.Context(), middleware.MustPrincipal(c), account.CreatePetInput{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Gender:  req.Gender,
		Age:     req.Age,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, pet)
}

func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.list.Execute(c.Request.Context(), middleware.MustPrincipal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, pets)
}

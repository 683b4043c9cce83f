package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/http/middleware"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type restaurantView struct {
	models.Restaurant
	Dishes  []models.Dish   `json:"dishes"`
	Reviews []models.Review `json:"reviews"`
}

// GET /api/restaurants
func GetRestaurants(c *gin.Context) {
	repo := repositories.RestaurantRepository{}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]restaurantView, 0, len(list))
	for _, rest := range list {
		dishes, err := repo.ListDishes(rest.ID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		reviews, err := repo.ListReviews(rest.ID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		out = append(out, restaurantView{Restaurant: rest, Dishes: dishes, Reviews: reviews})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/restaurants/:id
func GetRestaurantByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.RestaurantRepository{}
	rest, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	dishes, err := repo.ListDishes(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	reviews, err := repo.ListReviews(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurantView{Restaurant: rest, Dishes: dishes, Reviews: reviews})
}

type restaurantRequest struct {
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// POST /api/restaurants (admin)
func CreateRestaurant(c *gin.Context) {
	var req restaurantRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "nombre requerido", nil)
		return
	}
	rest, err := repositories.RestaurantRepository{}.Create(models.Restaurant{
		UserID:      req.UserID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rest)
}

// PUT /api/restaurants/:id (owner/admin)
func UpdateRestaurant(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req restaurantRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	rest, err := repositories.RestaurantRepository{}.Update(id, models.Restaurant{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rest)
}

// DELETE /api/restaurants/:id (admin)
func DeleteRestaurant(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.RestaurantRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restaurante eliminado"})
}

type dishRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// POST /api/restaurants/:id/dishes (owner/admin)
func CreateDish(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req dishRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "nombre requerido", nil)
		return
	}
	repo := repositories.RestaurantRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	dish, err := repo.CreateDish(models.Dish{
		RestaurantID: id,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

// GET /api/restaurants/:id/dishes
func GetDishes(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	dishes, err := repositories.RestaurantRepository{}.ListDishes(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func dishID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("dishId"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id inválido", nil)
		return 0, false
	}
	return id, true
}

// PUT /api/restaurants/:id/dishes/:dishId (owner/admin)
func UpdateDish(c *gin.Context) {
	restaurantID, ok := PathID(c)
	if !ok {
		return
	}
	id, ok := dishID(c)
	if !ok {
		return
	}
	var req dishRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "nombre requerido", nil)
		return
	}
	dish, err := repositories.RestaurantRepository{}.UpdateDish(restaurantID, id, models.Dish{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// DELETE /api/restaurants/:id/dishes/:dishId (owner/admin)
func DeleteDish(c *gin.Context) {
	if _, ok := PathID(c); !ok {
		return
	}
	id, ok := dishID(c)
	if !ok {
		return
	}
	if err := (repositories.RestaurantRepository{}).DeleteDish(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plato eliminado"})
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// POST /api/restaurants/:id/reviews (authenticated)
func CreateReview(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}
	var req reviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondError(c, http.StatusBadRequest, "validation_error", "rating debe estar entre 1 y 5", nil)
		return
	}
	repo := repositories.RestaurantRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	review, err := repo.CreateReview(models.Review{
		RestaurantID: id,
		UserID:       rc.UserID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

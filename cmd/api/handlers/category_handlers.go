package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"poros-portal/cmd/api/dto"
	"poros-portal/cmd/api/services"
)

// ListCategoriesHandler godoc
// @Summary      List categories (admin)
// @Description  All categories sorted by name with article counts across every status
// @Tags         categories
// @Security     SessionAuth
// @Produce      json
// @Success      200  {array}  dto.CategoryDTO
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

// GetCategoryHandler godoc
// @Summary      Get category by id (admin)
// @Tags         categories
// @Security     SessionAuth
// @Param        id  path  string  true  "Category id"
// @Produce      json
// @Success      200  {object}  dto.CategoryDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /categories/{id} [get]
func GetCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

// CreateCategoryHandler godoc
// @Summary      Create category (admin)
// @Description  The slug is derived from the name; duplicate names or slugs are rejected
// @Tags         categories
// @Security     SessionAuth
// @Param        request  body  dto.CategoryRequest  true  "Category fields"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.CategoryDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /categories [post]
func CreateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("malformed request body: %w", services.ErrInvalidInput))
			return
		}

		cat, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

// UpdateCategoryHandler godoc
// @Summary      Update category (admin)
// @Tags         categories
// @Security     SessionAuth
// @Param        id       path  string               true  "Category id"
// @Param        request  body  dto.CategoryRequest  true  "Category fields"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.CategoryDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /categories/{id} [put]
func UpdateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("malformed request body: %w", services.ErrInvalidInput))
			return
		}

		cat, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

// DeleteCategoryHandler godoc
// @Summary      Delete category (admin)
// @Description  Rejected while articles reference the category unless force=true, which reassigns them to Uncategorized first
// @Tags         categories
// @Security     SessionAuth
// @Param        id     path   string  true   "Category id"
// @Param        force  query  bool    false  "Reassign referencing articles and delete anyway"
// @Produce      json
// @Success      200  {object}  dto.DeleteCategoryResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /categories/{id} [delete]
func DeleteCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		force := c.Query("force") == "true"

		result, err := svc.Delete(c.Request.Context(), c.Param("id"), force)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

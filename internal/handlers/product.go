package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dkanak/shopcart-backend/internal/response"
	"github.com/dkanak/shopcart-backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (ph *ProductHandler) List(c *gin.Context) {
	products, err := ph.productService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"products": products})
}

func (ph *ProductHandler) Get(c *gin.Context) {
	product, err := ph.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": product})
}

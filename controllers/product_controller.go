package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hardware-store/libs"
	"hardware-store/models"
	"hardware-store/services"
)

type ProductController struct {
	products *services.ProductService
	uploader libs.ImageUploader
}

func NewProductController(products *services.ProductService, uploader libs.ImageUploader) *ProductController {
	return &ProductController{products: products, uploader: uploader}
}

func productFilter(c *gin.Context) models.ProductFilter {
	featured, _ := strconv.ParseBool(c.Query("featured"))
	return models.ProductFilter{
		Category: c.Query("category"),
		Featured: featured,
		Search:   c.Query("search"),
	}
}

// @Summary Get products
// @Description List catalog products, optionally filtered
// @Tags Products
// @Produce json
// @Param category query string false "Category name"
// @Param featured query bool false "Only featured products"
// @Param search query string false "Name or code"
// @Success 200 {object} models.ProductList
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	list, err := ctrl.products.List(c.Request.Context(), productFilter(c))
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.products.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		errorJSON(c, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Get all products (admin)
// @Tags Admin - Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *ProductController) AdminListProducts(c *gin.Context) {
	list, err := ctrl.products.List(c.Request.Context(), productFilter(c))
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Products retrieved successfully", Data: list})
}

func (ctrl *ProductController) uploadImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil || ctrl.uploader == nil {
		return "", true
	}

	url, err := ctrl.uploader.Upload(c.Request.Context(), file)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Failed to upload image", err)
		return "", false
	}
	return url, true
}

// @Summary Create product
// @Description Create new product (Admin)
// @Tags Admin - Products
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param name formData string true "Product name"
// @Param code formData string true "Product code"
// @Param description formData string false "Product description"
// @Param price formData int true "Product price"
// @Param stock formData int true "Product stock"
// @Param category formData string true "Category"
// @Param featured formData bool false "Featured"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	imageURL, ok := ctrl.uploadImage(c)
	if !ok {
		return
	}
	if imageURL != "" {
		req.Images = append(req.Images, imageURL)
	}

	product, err := ctrl.products.Create(c.Request.Context(), req)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Product created successfully", Data: product})
}

// @Summary Update product
// @Description Update product (Admin)
// @Tags Admin - Products
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param image formData file false "Product image"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	imageURL, ok := ctrl.uploadImage(c)
	if !ok {
		return
	}
	if imageURL != "" {
		req.Images = append(req.Images, imageURL)
	}

	product, err := ctrl.products.Update(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, services.ErrProductNotFound) {
		errorJSON(c, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product updated successfully", Data: product})
}

// @Summary Delete product
// @Tags Admin - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := ctrl.products.GetByID(ctx, c.Param("id"))
	if err == nil {
		err = ctrl.products.Delete(ctx, product.ID)
	}
	if errors.Is(err, services.ErrProductNotFound) {
		errorJSON(c, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}

	if remover, ok := ctrl.uploader.(libs.ImageRemover); ok {
		for _, url := range product.Images {
			if publicID := libs.PublicIDFromURL(url); publicID != "" {
				if err := remover.Delete(ctx, publicID); err != nil {
					log.Printf("[Cloudinary] %v", err)
				}
			}
		}
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product deleted successfully"})
}

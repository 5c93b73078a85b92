package controllers

import (
	"context"
	"strconv"

	"promo-shop/config"
	"promo-shop/models"
	"promo-shop/repositories"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminController struct {
	contentRepo *repositories.ContentRepository
	cloudinary  *models.CloudinaryService
}

func NewAdminController(cloudinary *models.CloudinaryService) *AdminController {
	return &AdminController{
		contentRepo: repositories.NewContentRepository(),
		cloudinary:  cloudinary,
	}
}

// @Summary Dashboard stats
// @Description Get product, order and revenue counts (Admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *AdminController) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var productCount, orderCount, userCount int
	var revenue decimal.Decimal

	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&productCount)
	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&orderCount)
	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&userCount)
	config.DB.QueryRow(ctx,
		"SELECT COALESCE(SUM(total), 0) FROM orders WHERE status NOT IN ('cancelled')").Scan(&revenue)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved",
		"data": gin.H{
			"products": productCount,
			"orders":   orderCount,
			"users":    userCount,
			"revenue":  revenue,
		},
	})
}

// @Summary Get site content
// @Description Get all editable site content sections
// @Tags Content
// @Produce json
// @Success 200 {object} models.Response
// @Router /content [get]
func (ctrl *AdminController) GetContent(c *gin.Context) {
	sections, err := ctrl.contentRepo.GetAllContent(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get content"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Content retrieved", "data": sections})
}

// @Summary Save site content
// @Description Create or overwrite a site content section (Admin)
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpsertContentRequest true "Section content"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/content [post]
func (ctrl *AdminController) SaveContent(c *gin.Context) {
	var req models.UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	section := &models.SiteContent{
		Section:     req.Section,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Content:     req.Content,
		SortOrder:   req.SortOrder,
	}

	if err := ctrl.contentRepo.UpsertContent(c.Request.Context(), section); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save content"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Content saved", "data": section})
}

// @Summary Delete site content
// @Description Delete a site content section (Admin)
// @Tags Admin - Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/content/{id} [delete]
func (ctrl *AdminController) DeleteContent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid content ID"})
		return
	}

	if err := ctrl.contentRepo.DeleteContent(c.Request.Context(), id); err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(404, gin.H{"success": false, "message": "Content not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete content"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Content deleted"})
}

// @Summary Get catalogues
// @Description Get all downloadable product catalogues
// @Tags Content
// @Produce json
// @Success 200 {object} models.Response
// @Router /catalogues [get]
func (ctrl *AdminController) GetCatalogues(c *gin.Context) {
	catalogues, err := ctrl.contentRepo.GetAllCatalogues(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get catalogues"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Catalogues retrieved", "data": catalogues})
}

// @Summary Create catalogue
// @Description Create a catalogue entry (Admin)
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpsertCatalogueRequest true "Catalogue data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/catalogues [post]
func (ctrl *AdminController) CreateCatalogue(c *gin.Context) {
	var req models.UpsertCatalogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	catalogue := &models.Catalogue{
		Name:        req.Name,
		Category:    req.Category,
		PDFURL:      req.PDFURL,
		Description: req.Description,
	}

	if err := ctrl.contentRepo.CreateCatalogue(c.Request.Context(), catalogue); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create catalogue"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Catalogue created", "data": catalogue})
}

// @Summary Update catalogue
// @Description Update a catalogue entry (Admin)
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Catalogue ID"
// @Param request body models.UpsertCatalogueRequest true "Catalogue data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/catalogues/{id} [patch]
func (ctrl *AdminController) UpdateCatalogue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid catalogue ID"})
		return
	}

	var req models.UpsertCatalogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	catalogue := &models.Catalogue{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		PDFURL:      req.PDFURL,
		Description: req.Description,
	}

	if err := ctrl.contentRepo.UpdateCatalogue(c.Request.Context(), catalogue); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Catalogue not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Catalogue updated", "data": catalogue})
}

// @Summary Delete catalogue
// @Description Delete a catalogue entry (Admin)
// @Tags Admin - Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Catalogue ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/catalogues/{id} [delete]
func (ctrl *AdminController) DeleteCatalogue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid catalogue ID"})
		return
	}

	if err := ctrl.contentRepo.DeleteCatalogue(c.Request.Context(), id); err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(404, gin.H{"success": false, "message": "Catalogue not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete catalogue"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Catalogue deleted"})
}

// @Summary Upload file
// @Description Upload an image or PDF to Cloudinary and get back its URL (Admin)
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param type formData string false "Upload type: image or pdf" default(image)
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/uploads [post]
func (ctrl *AdminController) UploadFile(c *gin.Context) {
	if ctrl.cloudinary == nil {
		c.JSON(503, gin.H{"success": false, "message": "File uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "File is required"})
		return
	}

	uploadType := c.DefaultPostForm("type", "image")

	switch uploadType {
	case "image":
		err = ctrl.cloudinary.ValidateImageFile(fileHeader)
	case "pdf":
		err = ctrl.cloudinary.ValidatePDFFile(fileHeader)
	default:
		c.JSON(400, gin.H{"success": false, "message": "Invalid upload type"})
		return
	}
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to read file"})
		return
	}
	defer file.Close()

	var url, publicID string
	ctx := context.Background()
	if uploadType == "pdf" {
		url, publicID, err = ctrl.cloudinary.UploadPDF(ctx, file, fileHeader.Filename, "catalogues")
	} else {
		url, publicID, err = ctrl.cloudinary.UploadImage(ctx, file, fileHeader.Filename, "products")
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Upload failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "File uploaded",
		"data":    gin.H{"url": url, "public_id": publicID},
	})
}

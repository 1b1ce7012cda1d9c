package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/storetrack/storetrack/internal/catalog/usecase/command"
	"github.com/storetrack/storetrack/internal/catalog/usecase/query"
	"github.com/storetrack/storetrack/pkg/apperror"
	"github.com/storetrack/storetrack/pkg/logger"
)

// CatalogHandler handles HTTP requests for products and categories
type CatalogHandler struct {
	createProduct  *command.CreateProductHandler
	updateProduct  *command.UpdateProductHandler
	deleteProduct  *command.DeleteProductHandler
	createCategory *command.CreateCategoryHandler
	updateCategory *command.UpdateCategoryHandler
	deleteCategory *command.DeleteCategoryHandler
	getProduct     *query.GetProductHandler
	listProducts   *query.ListProductsHandler
	getCategory    *query.GetCategoryHandler
	listCategories *query.ListCategoriesHandler
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	createProduct *command.CreateProductHandler,
	updateProduct *command.UpdateProductHandler,
	deleteProduct *command.DeleteProductHandler,
	createCategory *command.CreateCategoryHandler,
	updateCategory *command.UpdateCategoryHandler,
	deleteCategory *command.DeleteCategoryHandler,
	getProduct *query.GetProductHandler,
	listProducts *query.ListProductsHandler,
	getCategory *query.GetCategoryHandler,
	listCategories *query.ListCategoriesHandler,
) *CatalogHandler {
	return &CatalogHandler{
		createProduct:  createProduct,
		updateProduct:  updateProduct,
		deleteProduct:  deleteProduct,
		createCategory: createCategory,
		updateCategory: updateCategory,
		deleteCategory: deleteCategory,
		getProduct:     getProduct,
		listProducts:   listProducts,
		getCategory:    getCategory,
		listCategories: listCategories,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type productRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	CategoryID  *uint    `json:"categoryId"`
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if req.Name == nil || req.Price == nil || req.Quantity == nil || req.CategoryID == nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Name, price, quantity, and categoryId are required!",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Name:       *req.Name,
		Price:      *req.Price,
		Quantity:   *req.Quantity,
		CategoryID: *req.CategoryID,
	}
	if req.Description != nil {
		cmd.Description = *req.Description
	}

	product, err := h.createProduct.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product id"})
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.updateProduct.Handle(r.Context(), command.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to update product")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product id"})
		return
	}

	if err := h.deleteProduct.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to delete product")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product id"})
		return
	}

	product, err := h.getProduct.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.ParseUint(r.URL.Query().Get("categoryId"), 10, 32)

	products, err := h.listProducts.Handle(r.Context(), query.ListProductsQuery{
		Name:       r.URL.Query().Get("name"),
		CategoryID: uint(categoryID),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Error fetching products"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// CreateCategory handles POST /api/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	category, err := h.createCategory.Handle(r.Context(), command.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create category")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category id"})
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	category, err := h.updateCategory.Handle(r.Context(), command.UpdateCategoryCommand{ID: id, Name: req.Name})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("category_id", id).Msg("Failed to update category")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category id"})
		return
	}

	if err := h.deleteCategory.Handle(r.Context(), command.DeleteCategoryCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Uint("category_id", id).Msg("Failed to delete category")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Category deleted successfully"})
}

// GetCategory handles GET /api/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category id"})
		return
	}

	category, err := h.getCategory.Handle(r.Context(), query.GetCategoryQuery{ID: id})
	if err != nil {
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: category})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategories.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Error fetching categories"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products", h.CreateProduct).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.UpdateProduct).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.DeleteProduct).Methods("DELETE")

	router.HandleFunc("/api/categories", h.ListCategories).Methods("GET")
	router.HandleFunc("/api/categories", h.CreateCategory).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.GetCategory).Methods("GET")
	router.HandleFunc("/api/categories/{id}", h.UpdateCategory).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", h.DeleteCategory).Methods("DELETE")
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

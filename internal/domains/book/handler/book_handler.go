package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-lite/internal/domains/book/model"
	"library-lite/internal/domains/book/service"
	"library-lite/internal/shared/apperror"
	"library-lite/internal/shared/response"
)

// Handler serves the /books routes.
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes mounts the book endpoints on rg.
func (h *Handler) RegisterRoutes(rg gin.IRouter) {
	books := rg.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// ListBooks - GET /books?search=&page=&pageSize=
func (h *Handler) ListBooks(c *gin.Context) {
	query := model.ListBooksQuery{Search: c.Query("search")}

	verr := &apperror.ValidationError{}
	query.Page = queryInt(c, "page", verr)
	query.PageSize = queryInt(c, "pageSize", verr)
	if len(verr.Fields) > 0 {
		response.Fail(c, verr)
		return
	}

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetBook - GET /books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c)
		return
	}

	book, found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if !found {
		response.NotFound(c)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// CreateBook - POST /books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.MalformedBody())
		return
	}

	if err := req.Validate(); err != nil {
		response.Fail(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "/books/"+created.ID.String(), created)
}

// UpdateBook - PUT /books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c)
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.MalformedBody())
		return
	}

	if err := req.Validate(); err != nil {
		response.Fail(c, err)
		return
	}

	updated, found, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if !found {
		response.NotFound(c)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteBook - DELETE /books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}

	response.NoContent(c)
}

// pathID parses :id. Ids that are not UUIDs can never exist, so callers
// answer them with 404.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter. Absent means 0, which
// the service normalizes to its default.
func queryInt(c *gin.Context, name string, verr *apperror.ValidationError) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		verr.Add(name, name+" must be an integer")
		return 0
	}
	return n
}

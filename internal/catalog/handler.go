package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)              // GET /courses
	rg.GET("/featured", h.featured) // GET /courses/featured
	rg.GET("/facets", h.facets)     // GET /courses/facets
	rg.GET("/:id", h.getByID)       // GET /courses/:id
}

// RegisterOptionRoutes exposes the dropdown contents under rg.
func (h *Handler) RegisterOptionRoutes(rg *gin.RouterGroup) {
	rg.GET("/options", h.options) // GET /search/options
}

func queryFrom(c *gin.Context) ListQuery {
	return ListQuery{
		Q:     c.Query("q"),
		Genre: c.Query("genre"),
		Price: c.Query("price"),
		Sort:  c.Query("sort"),
	}
}

func (h *Handler) list(c *gin.Context) {
	cr, err := queryFrom(c).Criteria()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := h.Store.Current().Search(cr)
	c.JSON(http.StatusOK, gin.H{
		"total":    len(items),
		"criteria": cr,
		"items":    items,
	})
}

func (h *Handler) featured(c *gin.Context) {
	items := h.Store.Current().Featured()
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) facets(c *gin.Context) {
	cr, err := queryFrom(c).Criteria()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Store.Current().Facets(cr))
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	course, ok := h.Store.Current().Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *Handler) options(c *gin.Context) {
	c.JSON(http.StatusOK, SearchOptions())
}

// Options describes every selectable criteria value plus the defaults.
type Options struct {
	Genres   []Genre      `json:"genres"`
	Brackets []Bracket    `json:"brackets"`
	SortKeys []SortOption `json:"sort_keys"`
	Defaults Criteria     `json:"defaults"`
}

type SortOption struct {
	Key   SortKey `json:"key"`
	Label string  `json:"label"`
}

func SearchOptions() Options {
	sorts := make([]SortOption, 0, len(SortKeys))
	for _, k := range SortKeys {
		sorts = append(sorts, SortOption{Key: k, Label: SortLabels[k]})
	}
	brackets := make([]Bracket, 0, len(Brackets))
	for _, b := range Brackets {
		brackets = append(brackets, b.clone())
	}
	return Options{
		Genres:   append([]Genre(nil), Genres...),
		Brackets: brackets,
		SortKeys: sorts,
		Defaults: DefaultCriteria(),
	}
}

// IsClientError reports whether err came from bad criteria input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidCriteria)
}

package progress

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sample", h.sample)                   // GET /progress/sample
	rg.GET("/sample/modules/:id", h.sampleModule) // GET /progress/sample/modules/:id
}

func (h *Handler) sample(c *gin.Context) {
	sum, err := Summarize(SampleCourse())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) sampleModule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module id"})
		return
	}

	course := SampleCourse()
	stats, err := ModuleStats(course)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i, m := range course.Modules {
		if m.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"module": m,
				"stats":  stats[i],
			})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "module not found"})
}

package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// adminReconcileRequests is an internal only api to trigger the sweep
// that rewrites cached response counts from the embedded arrays
func (s *Server) adminReconcileRequests(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "reconcile_response_counts",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}

package httpctrl

import (
	"net/http"

	"github.com/gin-gonic/gin"

	presenter "github.com/berezovskyivalerii/formgateway/internal/adapter/presenter/startup"
	domain "github.com/berezovskyivalerii/formgateway/internal/domain/startup"
)

// StartupController serves the report taken when the process started.
// The report is immutable, so it is shared by all requests without locking.
type StartupController struct {
	body presenter.Response
}

func NewStartupController(rep domain.Report) *StartupController {
	return &StartupController{body: presenter.Map(rep)}
}

func (s *StartupController) Register(r gin.IRoutes) {
	r.GET("/startup", s.get)
}

func (s *StartupController) get(c *gin.Context) {
	c.JSON(http.StatusOK, s.body)
}

package bootstrap

import (
	"net/http"

	httpwrap "github.com/Lexv0lk/funds-service/internal/funds/infrastructure/http"
	"github.com/gin-gonic/gin"
)

func NewRouter(fundsHandler *httpwrap.FundsHandler, authMiddleware gin.HandlerFunc) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api", authMiddleware)
	{
		api.POST("/accounts", fundsHandler.OpenAccount)
		api.POST("/transfer", fundsHandler.Transfer)
		api.POST("/withdraw", fundsHandler.Withdraw)
		api.POST("/deposit", fundsHandler.Deposit)
	}

	return router
}

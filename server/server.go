package server

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Mohdivswa-71124/Queue-Reporter/service"
)

const (
	EndPointHelp   = "/help"
	EndPointReport = "/api/report"
	EndPointQueues = "/api/queues"
)

// NewRouter builds the gin engine with CORS and all endpoints bound.
func NewRouter(svc *service.Service) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := &handler{svc: svc}
	router.GET(EndPointHelp, h.Help)
	router.POST(EndPointReport, h.Report)
	router.GET(EndPointQueues, h.Queues)
	return router
}

// StartService runs the HTTP server until it fails.
func StartService(port int, svc *service.Service) {
	log.Info("Starting the service...")
	router := NewRouter(svc)
	router.Run(fmt.Sprintf(":%d", port))
	log.Info("Finished the service. Should not ever being seen.")
}

package server

import (
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/Mohdivswa-71124/Queue-Reporter/models"
	"github.com/Mohdivswa-71124/Queue-Reporter/service"
)

type handler struct {
	svc *service.Service
}

// Report accepts one queue report submission.
func (h *handler) Report(c *gin.Context) {
	var args models.ReportArgs

	if err := c.BindJSON(&args); err != nil {
		log.Errorf("Failed to get the argument in %s call: %v", EndPointReport, err)
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}

	log.Infof("Incoming POST %s: location=%q minutes=%q category=%q date=%q",
		EndPointReport, args.Location, args.Minutes, args.Category, args.Date)

	report, err := h.svc.Submit(args)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			log.Warnf("Rejected report: %v", verr)
			c.String(http.StatusBadRequest, verr.Error()) // 400
			return
		}
		log.Errorf("Failed to write report with %v", err)
		c.String(http.StatusInternalServerError, "Failed to save the report.") // 500
		return
	}

	log.Infof("New report saved: %q #%d", report.Location, report.Report)
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"}) // 200
}

// Queues returns the full list of individual queue reports in
// insertion order.
func (h *handler) Queues(c *gin.Context) {
	reports, err := h.svc.ListReports()
	if err != nil {
		log.Errorf("Failed to read reports with %v", err)
		c.String(http.StatusInternalServerError, "Failed to read the reports.") // 500
		return
	}
	if reports == nil {
		reports = []models.QueueReport{}
	}
	c.JSON(http.StatusOK, reports)
}

// Help is a liveness probe with a hint for humans.
func (h *handler) Help(c *gin.Context) {
	c.String(http.StatusOK,
		"Queue Reporter API.\nPOST %s to submit a report, GET %s to list them.\n",
		EndPointReport, EndPointQueues)
}

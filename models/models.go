package models

// QueueReport is one submitted observation of wait conditions at a
// location. The JSON field names are the wire contract shared by the
// persisted document and the /api/queues response; "Reported Name" is
// kept verbatim for compatibility with existing clients.
type QueueReport struct {
	Location     string `json:"location"`
	Minutes      string `json:"minutes"` // HH:MM wall clock when the queue is expected to clear.
	ReporterName string `json:"Reported Name"`
	Report       int    `json:"report"` // 1-based sequence number per location string.
	Timestamp    string `json:"timestamp"`
	Date         string `json:"date"` // YYYY-MM-DD as supplied by the client.
}

// ReportArgs is the body of POST /api/report. The field named category
// carries the reporter's name or card number.
type ReportArgs struct {
	Location string `json:"location"`
	Minutes  string `json:"minutes"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// StatusResponse acknowledges an accepted report.
type StatusResponse struct {
	Status string `json:"status"`
}

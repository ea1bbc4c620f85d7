package customer

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/notify"
	"github.com/dmitrymomot/notifykit/pkg/sanitizer"
)

// Result is the outcome of validating one record of a batch.
type Result struct {
	Index         int                        `json:"index"`
	Name          string                     `json:"name"`
	Document      string                     `json:"document"`
	Valid         bool                       `json:"valid"`
	Notifications notification.Notifications `json:"notifications,omitempty"`
}

// Report collects the results of a batch.
type Report struct {
	Results []Result `json:"results"`
	Valid   int      `json:"valid"`
	Invalid int      `json:"invalid"`
}

// OK reports whether every record passed.
func (r Report) OK() bool {
	return r.Invalid == 0
}

// ValidateAll normalizes and validates every record. Documents are masked in
// the results so reports can be logged.
func ValidateAll(customers []*Customer, now time.Time, opts ...notify.Option) Report {
	report := Report{Results: make([]Result, 0, len(customers))}
	for i, c := range customers {
		c.Normalize()
		valid := c.ValidateAt(now, opts...)

		report.Results = append(report.Results, Result{
			Index:         i,
			Name:          c.Name,
			Document:      sanitizer.MaskDocument(c.Document),
			Valid:         valid,
			Notifications: c.Notifications(),
		})
		if valid {
			report.Valid++
		} else {
			report.Invalid++
		}
	}
	return report
}

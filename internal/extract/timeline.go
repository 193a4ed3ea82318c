package extract

import (
	"regexp"

	"legalease/internal/model"
)

// timelinePattern pairs a trigger pattern with its fixed event label
type timelinePattern struct {
	pattern *regexp.Regexp
	event   string
}

// TimelineExtractor pairs event-trigger phrases with nearby dates. Matches
// stay in pattern-declaration order; there is no global sort by date.
type TimelineExtractor struct {
	patterns []timelinePattern
}

// NewTimelineExtractor creates a timeline extractor with the standard event
// triggers
func NewTimelineExtractor() *TimelineExtractor {
	return &TimelineExtractor{
		patterns: []timelinePattern{
			{regexp.MustCompile(`(?i)(?:effective|commence|start|begin|execution).*?(\w+\s+\d{1,2},?\s+\d{4})`), "Contract Start"},
			{regexp.MustCompile(`(?i)(?:expire|end|terminate|conclusion|completion).*?(\w+\s+\d{1,2},?\s+\d{4})`), "Contract End"},
			{regexp.MustCompile(`(?i)(?:due|payable|payment).*?(\w+\s+\d{1,2},?\s+\d{4})`), "Payment Due"},
			{regexp.MustCompile(`(?i)(?:delivery|deliver|provided).*?(\w+\s+\d{1,2},?\s+\d{4})`), "Delivery Date"},
			{regexp.MustCompile(`(?i)(?:review|evaluation|assessment).*?(\w+\s+\d{1,2},?\s+\d{4})`), "Review Date"},
		},
	}
}

// Extract returns up to 12 milestone events found in the text
func (e *TimelineExtractor) Extract(text string) []model.TimelineEvent {
	timeline := []model.TimelineEvent{}

	for _, tp := range e.patterns {
		for _, m := range tp.pattern.FindAllStringSubmatch(text, -1) {
			timeline = append(timeline, model.TimelineEvent{
				Date:  m[1],
				Event: tp.event,
				Type:  "milestone",
			})
			if len(timeline) >= 12 {
				return timeline
			}
		}
	}

	return timeline
}

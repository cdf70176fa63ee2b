package domain

import (
	"sort"
	"time"
)

// DailyObservation is one day of theme volume as reported by the search API.
// Date is a calendar date (UTC midnight, no time-of-day component). Days
// missing from the API response are simply absent; there is no gap-filling.
type DailyObservation struct {
	// Date is the calendar day of the observation, at UTC midnight.
	Date time.Time `json:"date"`

	// Documents is the number of unique documents matched that day.
	Documents int64 `json:"documents"`

	// Chunks is the number of matched chunks that day.
	Chunks int64 `json:"chunks"`

	// Sentiment is the aggregate sentiment score for that day.
	Sentiment float64 `json:"sentiment"`
}

// WeekStart returns the Monday of the calendar week containing the
// observation date. Any date in a Mon-Sun span collapses to that span's
// Monday.
func (o DailyObservation) WeekStart() time.Time {
	d := DateOnly(o.Date)
	return d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
}

// WeeklyAverage holds the per-week arithmetic means of the three volume
// metrics. WeekStart is the Monday that opens the week, at UTC midnight.
type WeeklyAverage struct {
	WeekStart time.Time `json:"week_start"`
	Documents float64   `json:"documents"`
	Chunks    float64   `json:"chunks"`
	Sentiment float64   `json:"sentiment"`
}

// AggregateWeekly groups daily observations into Monday-keyed calendar weeks
// and returns the per-week means of documents, chunks and sentiment, sorted
// ascending by week start. Integer metrics are averaged as real numbers.
//
// The result does not depend on input order. An empty input yields an empty
// result. A week with a single observation carries that observation's values
// through unchanged.
func AggregateWeekly(daily []DailyObservation) []WeeklyAverage {
	if len(daily) == 0 {
		return nil
	}

	buckets := make(map[time.Time][]DailyObservation)
	for _, obs := range daily {
		key := obs.WeekStart()
		buckets[key] = append(buckets[key], obs)
	}

	weekly := make([]WeeklyAverage, 0, len(buckets))
	for start, obs := range buckets {
		var docs, chunks, sentiment float64
		for _, o := range obs {
			docs += float64(o.Documents)
			chunks += float64(o.Chunks)
			sentiment += o.Sentiment
		}
		n := float64(len(obs))
		weekly = append(weekly, WeeklyAverage{
			WeekStart: start,
			Documents: docs / n,
			Chunks:    chunks / n,
			Sentiment: sentiment / n,
		})
	}

	sort.Slice(weekly, func(i, j int) bool {
		return weekly[i].WeekStart.Before(weekly[j].WeekStart)
	})

	return weekly
}

// VolumeReport is the parsed result of a theme volume query.
type VolumeReport struct {
	// RequestID is the server-assigned identifier of the request.
	RequestID string

	// TotalDocuments is the document count across the whole range.
	TotalDocuments int64

	// TotalChunks is the chunk count across the whole range.
	TotalChunks int64

	// Daily holds one observation per day present in the response,
	// in the order the API returned them (chronological in practice).
	Daily []DailyObservation
}

// VolumeQuery is the wire-ready form of a theme volume request. Start and
// End are RFC 3339 timestamps; building them from user input is the
// caller's job.
type VolumeQuery struct {
	Theme string
	Start string
	End   string
}

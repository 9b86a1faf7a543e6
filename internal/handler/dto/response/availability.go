package response

import (
	"clinic-booking/internal/usecase/queries"
)

type SlotResponse struct {
	Start     string `json:"start"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

type DayAvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type BatchAvailabilityResponse struct {
	Days []DayAvailabilityResponse `json:"days"`
}

func FromDayAvailabilityView(v *queries.DayAvailabilityView) *DayAvailabilityResponse {
	slots := make([]SlotResponse, 0, len(v.Slots))
	for _, s := range v.Slots {
		slots = append(slots, SlotResponse{Start: s.Start, Capacity: s.Capacity, Remaining: s.Remaining})
	}
	return &DayAvailabilityResponse{Date: v.Date, Slots: slots}
}

func FromDayAvailabilityViews(vs []*queries.DayAvailabilityView) *BatchAvailabilityResponse {
	days := make([]DayAvailabilityResponse, 0, len(vs))
	for _, v := range vs {
		days = append(days, *FromDayAvailabilityView(v))
	}
	return &BatchAvailabilityResponse{Days: days}
}

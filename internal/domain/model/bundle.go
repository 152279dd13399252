package model

import "github.com/google/uuid"

// Bundle is a marketed package of courses and journals sold together.
// It is fetched fresh from the catalog service per request; PricingData
// is filled in by the pricing enrichment before rendering.
type Bundle struct {
	UUID                uuid.UUID    `json:"uuid"`
	Title               string       `json:"title"`
	Courses             []Course     `json:"courses"`
	Journals            []Journal    `json:"journals"`
	ApplicableSeatTypes []string     `json:"applicable_seat_types"`
	PricingData         *PricingData `json:"pricing_data,omitempty"`
}

// Course groups the runs offered under one catalog course.
type Course struct {
	Title      string      `json:"title"`
	CourseRuns []CourseRun `json:"course_runs"`
}

// CourseRun is a scheduled offering of a course with its purchase options.
type CourseRun struct {
	Key   string `json:"key"`
	Seats []Seat `json:"seats"`
}

// Seat is a purchasable enrollment option for a course run.
type Seat struct {
	Type string `json:"type"`
	SKU  string `json:"sku"`
}

// Journal is a subscription publication that belongs to a bundle.
type Journal struct {
	UUID  uuid.UUID `json:"uuid"`
	Title string    `json:"title"`
	SKU   string    `json:"sku"`
}

// BundleAboutPage carries everything the bundle about template renders.
type BundleAboutPage struct {
	JournalsRootURL  string
	DiscoveryRootURL string
	Bundle           Bundle
	UsesBootstrap    bool
}

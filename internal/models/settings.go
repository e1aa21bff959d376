package models

import (
	"fmt"
	"regexp"
	"time"
)

// PickupSlots are the discrete time buckets staff may assign for staged
// collection on the event day.
var PickupSlots = []string{"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00"}

// EventInfo is the site-wide event date and venue record, replaced wholesale
// by staff updates.
type EventInfo struct {
	Date    string `json:"date"`
	Address string `json:"address"`
}

// LandingContent is the landing page copy and image set.
type LandingContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// AccessCode is the shared numeric gate code required before self-registration.
// It is a configuration comparison, not a security boundary.
type AccessCode struct {
	Code string `json:"code"`
}

// SiteContent bundles the public site configuration.
type SiteContent struct {
	EventInfo      EventInfo      `json:"event_info"`
	LandingContent LandingContent `json:"landing_content"`
}

// Validate validates the event info record
func (e *EventInfo) Validate() error {
	if e.Date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	if e.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

// Validate validates the landing content record
func (l *LandingContent) Validate() error {
	if l.Title == "" {
		return fmt.Errorf("title is required")
	}
	if l.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

var accessCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// Validate validates the gate code shape
func (a *AccessCode) Validate() error {
	if !accessCodePattern.MatchString(a.Code) {
		return fmt.Errorf("access code must be exactly 4 digits")
	}
	return nil
}

package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusDraft     BookingStatus = "draft"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodTreasury    PaymentMethod = "treasury"
	PaymentMethodMoneylender PaymentMethod = "moneylender"
	PaymentMethodTrade       PaymentMethod = "trade"
	PaymentMethodSlave       PaymentMethod = "slave"
)

// TravelDates holds the selected travel window for a booking
type TravelDates struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Traveler represents a single person on a booking
type Traveler struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       string `json:"age"`
	IsPrimary bool   `json:"isPrimary"`
}

// TravelerInfo is the payload collected by the traveler-info step
type TravelerInfo struct {
	Travelers       []Traveler `json:"travelers"`
	SpecialRequests string     `json:"specialRequests"`
}

// Booking is a tour booking record. A booking starts as a draft and is
// moved into the durable list when confirmed. Timestamps are set once at
// their respective transitions and never overwritten.
type Booking struct {
	ID               string        `json:"id"`
	UserID           string        `json:"userId"`
	TourID           string        `json:"tourId"`
	TravelDates      *TravelDates  `json:"travelDates"`
	Travelers        []Traveler    `json:"travelers"`
	SpecialRequests  string        `json:"specialRequests"`
	TotalPrice       float64       `json:"totalPrice"`
	PaymentMethod    PaymentMethod `json:"paymentMethod,omitempty"`
	Status           BookingStatus `json:"status"`
	ConfirmationCode string        `json:"confirmationCode,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	ConfirmedAt      *time.Time    `json:"confirmedAt,omitempty"`
	CancelledAt      *time.Time    `json:"cancelledAt,omitempty"`
}

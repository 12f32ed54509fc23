// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus tracks how far an inquiry has been worked.
type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "new"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusClosed     RequestStatus = "closed"
)

// RequestPriority is set by the manager triaging inquiries.
type RequestPriority string

const (
	RequestPriorityNormal RequestPriority = "normal"
	RequestPriorityHigh   RequestPriority = "high"
)

// Request is an inbound contact- or order-form submission. Created once
// by the public submit handler; admins mutate only status, priority and
// notes afterwards.
type Request struct {
	ID          uuid.UUID       `json:"id"`
	FormType    string          `json:"form_type"` // "contact", "order", "concierge"
	Name        *string         `json:"name,omitempty"`
	Email       *string         `json:"email,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Subject     *string         `json:"subject,omitempty"`
	Message     *string         `json:"message,omitempty"`
	Product     *string         `json:"product,omitempty"`
	Price       *string         `json:"price,omitempty"`
	OptionsJSON *string         `json:"options_json,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	Status      RequestStatus   `json:"status"`
	Priority    RequestPriority `json:"priority"`
	CreatedAt   time.Time       `json:"created_at"`
}

// HasContact reports whether the submission carries at least one way to
// reach the sender. Submissions without any are rejected.
func (r *Request) HasContact() bool {
	for _, f := range []*string{r.Name, r.Email, r.Phone, r.Message} {
		if f != nil && *f != "" {
			return true
		}
	}
	return false
}

package entity

import (
	"MentorMarket/internal/lib/validate"
	"net/http"
	"time"
)

// Mentor is the public record of a registered mentor. Expertise and
// availability entries are caller-defined JSON values stored as provided.
type Mentor struct {
	ID           MentorID      `json:"id"`
	Name         string        `json:"name"`
	Expertise    interface{}   `json:"expertise"`
	Location     string        `json:"location"`
	Availability []interface{} `json:"availability"`
	CreatedAt    time.Time     `json:"-"`
}

// NewMentor builds an unsaved mentor from a validated request.
func NewMentor(req *RegisterRequest) *Mentor {
	availability := req.Availability
	if availability == nil {
		availability = []interface{}{}
	}
	return &Mentor{
		Name:         req.Name,
		Expertise:    req.Expertise,
		Location:     req.Location,
		Availability: availability,
		CreatedAt:    time.Now().UTC(),
	}
}

type RegisterRequest struct {
	Name         string        `json:"name" validate:"required"`
	Expertise    interface{}   `json:"expertise" validate:"filled"`
	Location     string        `json:"location" validate:"required"`
	Availability []interface{} `json:"availability"`
}

func (r *RegisterRequest) Bind(_ *http.Request) error {
	if err := validate.Struct(r); err != nil {
		if fields := validate.Fields(err); len(fields) > 0 {
			return NewValidationError(fields...)
		}
		return err
	}
	if r.Availability == nil {
		r.Availability = []interface{}{}
	}
	return nil
}

// MentorCreated is the register response: a message plus the stored record.
type MentorCreated struct {
	Message string `json:"message"`
	*Mentor
}

type Availability struct {
	Availability []interface{} `json:"availability"`
}

package core

import (
	"MentorMarket/entity"
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// RegisterMentor stores a new mentor. Identical requests create distinct
// records.
func (c *Core) RegisterMentor(ctx context.Context, req *entity.RegisterRequest) (*entity.Mentor, error) {
	if req == nil {
		return nil, entity.NewValidationError("name", "expertise", "location")
	}
	if err := req.Bind(nil); err != nil {
		return nil, err
	}
	if c.repo == nil {
		return nil, fmt.Errorf("repository is not set: %w", entity.ErrStoreUnavailable)
	}

	mentor, err := c.repo.CreateMentor(ctx, entity.NewMentor(req))
	if err != nil {
		return nil, fmt.Errorf("failed to create mentor: %w: %w", entity.ErrStoreUnavailable, err)
	}

	c.log.With(
		slog.String("id", mentor.ID.String()),
		slog.String("location", mentor.Location),
	).Info("mentor registered")
	return mentor, nil
}

// SearchMentors returns every mentor whose location contains the term,
// ignoring case. No match is an empty list.
func (c *Core) SearchMentors(ctx context.Context, location string) ([]entity.Mentor, error) {
	if location == "" {
		return nil, entity.NewValidationError("location")
	}
	if c.repo == nil {
		return nil, fmt.Errorf("repository is not set: %w", entity.ErrStoreUnavailable)
	}

	mentors, err := c.repo.FindMentorsByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to search mentors: %w: %w", entity.ErrStoreUnavailable, err)
	}
	if mentors == nil {
		mentors = []entity.Mentor{}
	}
	return mentors, nil
}

// GetAvailability returns the availability entries of one mentor.
func (c *Core) GetAvailability(ctx context.Context, rawID string) ([]interface{}, error) {
	id, err := entity.ParseMentorID(rawID)
	if err != nil {
		return nil, err
	}
	if c.repo == nil {
		return nil, fmt.Errorf("repository is not set: %w", entity.ErrStoreUnavailable)
	}

	mentor, err := c.repo.GetMentor(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrMalformedID) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get mentor: %w: %w", entity.ErrStoreUnavailable, err)
	}

	if mentor.Availability == nil {
		return []interface{}{}, nil
	}
	return mentor.Availability, nil
}

func (c *Core) Ping(ctx context.Context) error {
	if c.repo == nil {
		return fmt.Errorf("repository is not set: %w", entity.ErrStoreUnavailable)
	}
	if err := c.repo.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrStoreUnavailable, err)
	}
	return nil
}

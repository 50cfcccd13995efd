package core

import (
	"MentorMarket/entity"
	"MentorMarket/internal/lib/sl"
	"context"
	"log/slog"
)

// Repository is the mentor store. Each method is a single store call.
type Repository interface {
	CreateMentor(ctx context.Context, mentor *entity.Mentor) (*entity.Mentor, error)
	FindMentorsByLocation(ctx context.Context, location string) ([]entity.Mentor, error)
	GetMentor(ctx context.Context, id entity.MentorID) (*entity.Mentor, error)
	Ping(ctx context.Context) error
}

type Core struct {
	repo Repository
	log  *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

package mentor

import (
	"MentorMarket/entity"
	"context"
)

type Core interface {
	RegisterMentor(ctx context.Context, req *entity.RegisterRequest) (*entity.Mentor, error)
	SearchMentors(ctx context.Context, location string) ([]entity.Mentor, error)
	GetAvailability(ctx context.Context, id string) ([]interface{}, error)
}

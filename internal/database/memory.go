package repository

import (
	"MentorMarket/entity"
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps mentors in process memory. It is used when MongoDB is
// disabled and as the store double in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	mentors map[entity.MentorID]entity.Mentor
	order   []entity.MentorID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{mentors: make(map[entity.MentorID]entity.Mentor)}
}

func (s *MemoryStore) CreateMentor(_ context.Context, mentor *entity.Mentor) (*entity.Mentor, error) {
	created := *mentor
	created.ID = entity.NewMentorID()
	created.Availability = append([]interface{}{}, mentor.Availability...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mentors[created.ID] = created
	s.order = append(s.order, created.ID)

	return &created, nil
}

func (s *MemoryStore) FindMentorsByLocation(_ context.Context, location string) ([]entity.Mentor, error) {
	term := strings.ToLower(location)

	s.mu.RLock()
	defer s.mu.RUnlock()

	mentors := make([]entity.Mentor, 0)
	for _, id := range s.order {
		m := s.mentors[id]
		if strings.Contains(strings.ToLower(m.Location), term) {
			mentors = append(mentors, m)
		}
	}
	return mentors, nil
}

func (s *MemoryStore) GetMentor(_ context.Context, id entity.MentorID) (*entity.Mentor, error) {
	if _, err := id.ObjectID(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.mentors[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &m, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close(_ context.Context) error {
	return nil
}

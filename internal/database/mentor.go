package repository

import (
	"MentorMarket/entity"
	"MentorMarket/internal/lib/sl"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mentorDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Expertise    interface{}        `bson:"expertise"`
	Location     string             `bson:"location"`
	Availability []interface{}      `bson:"availability"`
	CreatedAt    time.Time          `bson:"created_at,omitempty"`
}

func (d *mentorDocument) toEntity() entity.Mentor {
	availability := d.Availability
	if availability == nil {
		availability = []interface{}{}
	}
	return entity.Mentor{
		ID:           entity.MentorIDFromObjectID(d.ID),
		Name:         d.Name,
		Expertise:    d.Expertise,
		Location:     d.Location,
		Availability: availability,
		CreatedAt:    d.CreatedAt,
	}
}

// CreateMentor inserts a new mentor; the store assigns the id.
func (m *MongoDB) CreateMentor(ctx context.Context, mentor *entity.Mentor) (*entity.Mentor, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	doc := mentorDocument{
		Name:         mentor.Name,
		Expertise:    mentor.Expertise,
		Location:     mentor.Location,
		Availability: mentor.Availability,
		CreatedAt:    mentor.CreatedAt,
	}
	if doc.Availability == nil {
		doc.Availability = []interface{}{}
	}

	res, err := m.collection(mentorsCollection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("mongodb insert error: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("mongodb insert error: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid

	created := doc.toEntity()
	m.log.With(slog.String("id", created.ID.String())).Debug("mentor inserted")
	return &created, nil
}

// FindMentorsByLocation returns mentors whose location contains the term,
// ignoring case. The term is matched literally.
func (m *MongoDB) FindMentorsByLocation(ctx context.Context, location string) ([]entity.Mentor, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	filter := bson.D{{Key: "location", Value: primitive.Regex{Pattern: regexp.QuoteMeta(location), Options: "i"}}}

	cursor, err := m.collection(mentorsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			m.log.Warn("close cursor", sl.Err(err))
		}
	}()

	var docs []mentorDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}

	mentors := make([]entity.Mentor, 0, len(docs))
	for i := range docs {
		mentors = append(mentors, docs[i].toEntity())
	}
	return mentors, nil
}

func (m *MongoDB) GetMentor(ctx context.Context, id entity.MentorID) (*entity.Mentor, error) {
	oid, err := id.ObjectID()
	if err != nil {
		return nil, err
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var doc mentorDocument
	err = m.collection(mentorsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}

	mentor := doc.toEntity()
	return &mentor, nil
}

package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"solotrip/internal/models/db_models"
	"solotrip/internal/repositories"
	"solotrip/pkg/places"
)

type stubProvider struct {
	name  string
	out   string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.out, s.err
}

type stubSearcher struct {
	places []places.Place
	err    error
	query  string
}

func (s *stubSearcher) SearchText(_ context.Context, query string, _ int) ([]places.Place, error) {
	s.query = query
	return s.places, s.err
}

type memTripRepo struct {
	mu        sync.Mutex
	trips     []db_models.Trip
	insertErr error
}

func (r *memTripRepo) Insert(_ context.Context, trip *db_models.Trip) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	trip.Init()
	r.trips = append(r.trips, *trip)
	return nil
}

func (r *memTripRepo) ListByUser(_ context.Context, userID string) ([]db_models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]db_models.Trip, 0)
	for _, t := range r.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTripRepo) FindByUserCityDays(_ context.Context, userID, city string, days int) (*db_models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.trips {
		t := r.trips[i]
		if t.UserID == userID && t.City == city && t.Days == days {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTripRepo) DeleteByUser(_ context.Context, userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.trips {
		if t.ID == id && t.UserID == userID {
			r.trips = append(r.trips[:i], r.trips[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memAccountRepo struct {
	byEmail map[string]*db_models.Account
	findErr error
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{byEmail: map[string]*db_models.Account{}}
}

func (r *memAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if _, ok := r.byEmail[account.Email]; ok {
		return repositories.ErrDuplicateKey
	}
	account.Init()
	cp := *account
	r.byEmail[account.Email] = &cp
	return nil
}

func (r *memAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

type memCommentRepo struct {
	comments  []db_models.Comment
	insertErr error
}

func (r *memCommentRepo) Insert(_ context.Context, c *db_models.Comment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	c.Init()
	r.comments = append(r.comments, *c)
	return nil
}

func (r *memCommentRepo) ListByTrip(_ context.Context, tripID string) ([]db_models.Comment, error) {
	out := make([]db_models.Comment, 0)
	for _, c := range r.comments {
		if c.TripID == tripID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memExperienceRepo struct {
	items []db_models.Experience
}

func (r *memExperienceRepo) Insert(_ context.Context, e *db_models.Experience) error {
	e.Init()
	r.items = append(r.items, *e)
	return nil
}

func (r *memExperienceRepo) ListByLocation(_ context.Context, location string) ([]db_models.Experience, error) {
	out := make([]db_models.Experience, 0)
	for _, e := range r.items {
		if location == "" || strings.Contains(strings.ToLower(e.Location), strings.ToLower(location)) {
			out = append(out, e)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	published []db_models.Comment
	err       error
}

func (p *recordingPublisher) PublishComment(_ context.Context, c *db_models.Comment) error {
	p.published = append(p.published, *c)
	return p.err
}

var errBoom = errors.New("boom")

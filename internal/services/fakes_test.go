package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trekzaa/internal/models/db_models"
	"trekzaa/pkg/utils"
)

// Deterministic in-memory stand-ins for the repository and upstream
// interfaces.

type fakeCompletion struct {
	reply    string
	err      error
	messages []utils.ChatMessage
	calls    int
}

func (f *fakeCompletion) CompleteJSON(_ context.Context, messages []utils.ChatMessage) (string, error) {
	f.calls++
	f.messages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeTranslator struct {
	err error
}

func (f *fakeTranslator) Translate(_ context.Context, text string, targetLang string) (*utils.TranslationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &utils.TranslationResult{
		OriginalText:           text,
		TranslatedText:         "[" + targetLang + "] " + text,
		DetectedSourceLanguage: "en",
	}, nil
}

type fakePreferenceRepo struct {
	prefs *db_models.TravelPreference
	err   error
}

func (f *fakePreferenceRepo) FindByUserID(context.Context, uuid.UUID) (*db_models.TravelPreference, error) {
	return f.prefs, f.err
}

func (f *fakePreferenceRepo) Upsert(_ context.Context, pref *db_models.TravelPreference) error {
	if f.err != nil {
		return f.err
	}
	f.prefs = pref
	return nil
}

type fakeGuideRepo struct {
	guides      []*db_models.Guide
	byID        map[uuid.UUID]*db_models.Guide
	byUserID    map[uuid.UUID]*db_models.Guide
	err         error
	insertedTx  []*db_models.Guide
	lastPattern string
}

func (f *fakeGuideRepo) InsertTx(_ *gorm.DB, guide *db_models.Guide) error {
	if f.err != nil {
		return f.err
	}
	f.insertedTx = append(f.insertedTx, guide)
	return nil
}

func (f *fakeGuideRepo) ListAll(context.Context) ([]*db_models.Guide, error) {
	return f.guides, f.err
}

func (f *fakeGuideRepo) ListByLocation(context.Context, string) ([]*db_models.Guide, error) {
	return f.guides, f.err
}

func (f *fakeGuideRepo) ListByDestinationPattern(_ context.Context, destination string) ([]*db_models.Guide, error) {
	f.lastPattern = destination
	return f.guides, f.err
}

func (f *fakeGuideRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Guide, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeGuideRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*db_models.Guide, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUserID[userID], nil
}

type fakeTripRepo struct {
	trips    []*db_models.Trip
	inserted []*db_models.Trip
	err      error
}

func (f *fakeTripRepo) Insert(_ context.Context, trip *db_models.Trip) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, trip)
	return nil
}

func (f *fakeTripRepo) ListByUserID(context.Context, uuid.UUID) ([]*db_models.Trip, error) {
	return f.trips, f.err
}

func (f *fakeTripRepo) FindByID(context.Context, uuid.UUID) (*db_models.Trip, error) {
	return nil, f.err
}

type fakeUserRepo struct {
	byUsername map[string]*db_models.User
	byID       map[uuid.UUID]*db_models.User
	insertErr  error
	findErr    error
	inserted   []*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: map[string]*db_models.User{},
		byID:       map[uuid.UUID]*db_models.User{},
	}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, exists := f.byUsername[user.Username]; exists {
		return gorm.ErrDuplicatedKey
	}
	user.ID = uuid.New()
	f.byUsername[user.Username] = user
	f.byID[user.ID] = user
	f.inserted = append(f.inserted, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.byID[id], f.findErr
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*db_models.User, error) {
	return f.byUsername[username], f.findErr
}

func (f *fakeUserRepo) SetGuideProfile(_ *gorm.DB, id uuid.UUID, bio string) error {
	user, ok := f.byID[id]
	if !ok {
		return errors.New("no such user")
	}
	user.IsGuide = true
	user.Bio = bio
	return nil
}

type fakeBookingRepo struct {
	byID     map[uuid.UUID]*db_models.Booking
	byUser   []*db_models.Booking
	byGuide  []*db_models.Booking
	inserted []*db_models.Booking
	err      error
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *db_models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, booking)
	return nil
}

func (f *fakeBookingRepo) ListByUserID(context.Context, uuid.UUID) ([]*db_models.Booking, error) {
	return f.byUser, f.err
}

func (f *fakeBookingRepo) ListByGuideID(context.Context, uuid.UUID) ([]*db_models.Booking, error) {
	return f.byGuide, f.err
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Booking, error) {
	return f.byID[id], f.err
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.BookingStatus) (*db_models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking := f.byID[id]
	booking.Status = status
	return booking, nil
}

type fakeBlogRepo struct {
	posts    map[uuid.UUID]*db_models.BlogPost
	comments []*db_models.Comment
	err      error
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: map[uuid.UUID]*db_models.BlogPost{}}
}

func (f *fakeBlogRepo) ListPosts(context.Context) ([]*db_models.BlogPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*db_models.BlogPost, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeBlogRepo) FindPostByID(_ context.Context, id uuid.UUID) (*db_models.BlogPost, error) {
	return f.posts[id], f.err
}

func (f *fakeBlogRepo) InsertPost(_ context.Context, post *db_models.BlogPost) error {
	if f.err != nil {
		return f.err
	}
	post.ID = uuid.New()
	f.posts[post.ID] = post
	return nil
}

func (f *fakeBlogRepo) UpdatePost(_ context.Context, post *db_models.BlogPost) error {
	if f.err != nil {
		return f.err
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakeBlogRepo) DeletePost(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeBlogRepo) ListComments(_ context.Context, postID uuid.UUID) ([]*db_models.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*db_models.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeBlogRepo) InsertComment(_ context.Context, comment *db_models.Comment) error {
	if f.err != nil {
		return f.err
	}
	comment.ID = uuid.New()
	f.comments = append(f.comments, comment)
	return nil
}

type fakePackingRepo struct {
	created []*db_models.PackingList
	items   map[uuid.UUID]*db_models.PackingItem
	lists   []*db_models.PackingList
	err     error
}

func (f *fakePackingRepo) CreateListWithItems(_ context.Context, list *db_models.PackingList, items []db_models.PackingItem) (*db_models.PackingList, error) {
	if f.err != nil {
		return nil, f.err
	}
	list.Items = items
	f.created = append(f.created, list)
	return list, nil
}

func (f *fakePackingRepo) ListByUserAndTrip(context.Context, uuid.UUID, uuid.UUID) ([]*db_models.PackingList, error) {
	return f.lists, f.err
}

func (f *fakePackingRepo) FindListByID(context.Context, uuid.UUID) (*db_models.PackingList, error) {
	return nil, f.err
}

func (f *fakePackingRepo) SetItemPacked(_ context.Context, itemID uuid.UUID, packed bool) (*db_models.PackingItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	item.IsPacked = packed
	return item, nil
}

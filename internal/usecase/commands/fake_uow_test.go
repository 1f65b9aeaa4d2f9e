//go:build unit

package commands_test

import (
	"context"
	"time"

	"fervo/internal/domain/checkin"
	"fervo/internal/domain/coupon"
	"fervo/internal/domain/rating"
	"fervo/internal/domain/subscription"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore backs an in-memory unit of work. Transactions run in place and
// are never rolled back, so tests assert on state only after the outcome.
type memStore struct {
	users    map[uuid.UUID]*shared.UserSnapshot
	venues   map[uuid.UUID]*shared.VenueSnapshot
	events   map[uuid.UUID]*shared.EventSnapshot
	checkIns map[[2]uuid.UUID]*checkin.CheckIn
	ratings  map[string]*shared.RatingSnapshot
	coins    map[[2]uuid.UUID]int
	coupons  map[string]*coupon.Coupon
	subs     map[uuid.UUID]*subscription.Subscription
	shares   []shared.ShareRecord
	jobs     []memJob
}

type memJob struct {
	kind    string
	topic   string
	payload []byte
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uuid.UUID]*shared.UserSnapshot{},
		venues:   map[uuid.UUID]*shared.VenueSnapshot{},
		events:   map[uuid.UUID]*shared.EventSnapshot{},
		checkIns: map[[2]uuid.UUID]*checkin.CheckIn{},
		ratings:  map[string]*shared.RatingSnapshot{},
		coins:    map[[2]uuid.UUID]int{},
		coupons:  map[string]*coupon.Coupon{},
		subs:     map[uuid.UUID]*subscription.Subscription{},
	}
}

func (s *memStore) addUser(u *shared.UserSnapshot)   { s.users[u.ID] = u }
func (s *memStore) addVenue(v *shared.VenueSnapshot) { s.venues[v.ID] = v }
func (s *memStore) addEvent(e *shared.EventSnapshot) { s.events[e.ID] = e }

func (s *memStore) jobsByTopic(topic string) int {
	n := 0
	for _, j := range s.jobs {
		if j.topic == topic {
			n++
		}
	}
	return n
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

// unit of work

type memUoW struct {
	s     *memStore
	calls int
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.calls++
	return fn(ctx, &memTx{s: u.s})
}

func (u *memUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Within(ctx, fn)
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) CommandReads() shared.CommandReads { return &memReads{s: u.s} }

type memTx struct {
	s *memStore
}

func (t *memTx) Users() shared.UserRepository                 { return nil }
func (t *memTx) Venues() shared.VenueRepository               { return &memVenues{s: t.s} }
func (t *memTx) Events() shared.EventRepository               { return &memEvents{s: t.s} }
func (t *memTx) CheckIns() shared.CheckInRepository           { return &memCheckIns{s: t.s} }
func (t *memTx) Ratings() shared.RatingRepository             { return &memRatings{s: t.s} }
func (t *memTx) Rewards() shared.RewardRepository             { return &memRewards{s: t.s} }
func (t *memTx) Coupons() shared.CouponRepository             { return &memCoupons{s: t.s} }
func (t *memTx) Favorites() shared.FavoriteRepository         { return nil }
func (t *memTx) PushTokens() shared.PushTokenRepository       { return nil }
func (t *memTx) Subscriptions() shared.SubscriptionRepository { return &memSubscriptions{s: t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return &memNotifications{s: t.s} }
func (t *memTx) Reads() shared.CommandReads                   { return &memReads{s: t.s} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

// reads

type memReads struct {
	s *memStore
}

func (r *memReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, notFound("user")
}

func (r *memReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, notFound("user")
}

func (r *memReads) VenueByID(_ context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	if v, ok := r.s.venues[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, notFound("venue")
}

func (r *memReads) VenueForUpdate(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	return r.VenueByID(ctx, id)
}

func (r *memReads) EventByID(_ context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	if e, ok := r.s.events[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, notFound("event")
}

func (r *memReads) EventByPartnerAndID(ctx context.Context, partnerID, id uuid.UUID) (*shared.EventSnapshot, error) {
	e, err := r.EventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.PartnerID != partnerID {
		return nil, notFound("event")
	}
	return e, nil
}

func (r *memReads) EventForUpdate(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	return r.EventByID(ctx, id)
}

func (r *memReads) HasCheckedIn(_ context.Context, userID, eventID uuid.UUID) (bool, error) {
	_, ok := r.s.checkIns[[2]uuid.UUID{userID, eventID}]
	return ok, nil
}

func (r *memReads) RatingForUpdate(_ context.Context, id string) (*shared.RatingSnapshot, error) {
	if rt, ok := r.s.ratings[id]; ok {
		cp := *rt
		return &cp, nil
	}
	return nil, notFound("rating")
}

func (r *memReads) VenueCoinsForUpdate(_ context.Context, userID, partnerID uuid.UUID) (int, error) {
	return r.s.coins[[2]uuid.UUID{userID, partnerID}], nil
}

func (r *memReads) CouponByCodeForUpdate(_ context.Context, code string) (*coupon.Coupon, error) {
	c, ok := r.s.coupons[coupon.NormalizeCode(code)]
	if !ok {
		return nil, notFound("coupon")
	}
	return coupon.Reconstruct(c.ID(), c.Code().String(), c.UserID(), c.ValidAtPartnerID(), c.VenueName(),
		string(c.Status()), c.CreatedAt(), c.RedeemedAt()), nil
}

func (r *memReads) SubscriptionByPartner(_ context.Context, _ uuid.UUID) (*subscription.Subscription, error) {
	return nil, notFound("subscription")
}

func (r *memReads) PushTokensByUser(_ context.Context, _ uuid.UUID) ([]string, error) {
	return nil, nil
}

// repositories

type memVenues struct {
	shared.VenueRepository
	s *memStore
}

func (m *memVenues) UpdateRating(_ context.Context, _ sqlc.DBTX, partnerID uuid.UUID, agg rating.Aggregate) error {
	v, ok := m.s.venues[partnerID]
	if !ok {
		return notFound("venue")
	}
	v.AverageVenueRating = agg.Average()
	v.VenueRatingCount = agg.Count()
	return nil
}

type memEvents struct {
	shared.EventRepository
	s *memStore
}

func (m *memEvents) UpdateRating(_ context.Context, _ sqlc.DBTX, eventID uuid.UUID, agg rating.Aggregate) error {
	e, ok := m.s.events[eventID]
	if !ok {
		return notFound("event")
	}
	e.AverageRating = agg.Average()
	e.RatingCount = agg.Count()
	return nil
}

type memCheckIns struct {
	s *memStore
}

func (m *memCheckIns) Create(_ context.Context, _ sqlc.DBTX, c *checkin.CheckIn) error {
	key := [2]uuid.UUID{c.UserID(), c.EventID()}
	if _, ok := m.s.checkIns[key]; ok {
		return infra.WrapRepoErr("duplicate check-in", nil, infra.KindDuplicateKey)
	}
	m.s.checkIns[key] = c
	return nil
}

type memRatings struct {
	s *memStore
}

func (m *memRatings) Upsert(_ context.Context, _ sqlc.DBTX, r *rating.Rating) error {
	m.s.ratings[r.ID()] = &shared.RatingSnapshot{
		ID:        r.ID(),
		EventID:   r.EventID(),
		UserID:    r.UserID(),
		PartnerID: r.PartnerID(),
		Rating:    r.Score().Value(),
		Comment:   r.Comment().String(),
	}
	return nil
}

func (m *memRatings) Delete(_ context.Context, _ sqlc.DBTX, id string) error {
	if _, ok := m.s.ratings[id]; !ok {
		return notFound("rating")
	}
	delete(m.s.ratings, id)
	return nil
}

type memRewards struct {
	s *memStore
}

func (m *memRewards) SaveBalance(_ context.Context, _ sqlc.DBTX, userID, partnerID uuid.UUID, coins int, _ time.Time) error {
	m.s.coins[[2]uuid.UUID{userID, partnerID}] = coins
	return nil
}

func (m *memRewards) LogShare(_ context.Context, _ sqlc.DBTX, share shared.ShareRecord) error {
	m.s.shares = append(m.s.shares, share)
	return nil
}

type memCoupons struct {
	s *memStore
}

func (m *memCoupons) Create(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
	if _, ok := m.s.coupons[c.Code().String()]; ok {
		return infra.WrapRepoErr("duplicate coupon code", nil, infra.KindDuplicateKey)
	}
	m.s.coupons[c.Code().String()] = c
	return nil
}

func (m *memCoupons) MarkRedeemed(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
	stored, ok := m.s.coupons[c.Code().String()]
	if !ok || stored.Status() != coupon.StatusActive {
		return notFound("active coupon")
	}
	m.s.coupons[c.Code().String()] = c
	return nil
}

type memNotifications struct {
	shared.NotificationRepository
	s *memStore
}

func (m *memNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, _ time.Time) error {
	m.s.jobs = append(m.s.jobs, memJob{kind: kind, topic: topic, payload: payload})
	return nil
}

type memSubscriptions struct {
	s *memStore
}

func (r *memSubscriptions) Upsert(_ context.Context, _ sqlc.DBTX, sub *subscription.Subscription) error {
	cp := *sub
	r.s.subs[sub.PartnerID] = &cp
	return nil
}

func (r *memSubscriptions) UpdateByStripeID(_ context.Context, _ sqlc.DBTX, stripeID string, status subscription.Status, periodEnd *time.Time) (bool, error) {
	for _, sub := range r.s.subs {
		if sub.StripeSubscriptionID != nil && *sub.StripeSubscriptionID == stripeID {
			sub.Status = status
			sub.CurrentPeriodEnd = periodEnd
			return true, nil
		}
	}
	return false, nil
}

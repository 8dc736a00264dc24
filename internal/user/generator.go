package user

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCount is returned when the requested batch size is not positive.
	ErrInvalidCount = errors.New("record count must be positive")

	// ErrInvalidDistribution is returned for an unusable role weight table.
	ErrInvalidDistribution = errors.New("invalid role distribution")

	// ErrUsernamesExhausted is returned when no fresh username could be drawn
	// within the retry budget.
	ErrUsernamesExhausted = errors.New("unique usernames exhausted")
)

const (
	// accountWindow is how far back created_at may reach.
	accountWindow = 365 * 24 * time.Hour

	neverLoggedInRate = 0.4
	activeRate        = 0.85

	maxUsernameAttempts = 100
)

// Generator produces batches of synthetic users.
type Generator struct {
	password string
	dist     Distribution
	cost     int
	src      Source
	now      func() time.Time
	progress func(done, total int)
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Without it every batch is seeded from
// RandomSeed.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithClock sets the function used to read "now" once per batch.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithCost sets the bcrypt cost for the shared password hash.
func WithCost(cost int) Option {
	return func(g *Generator) { g.cost = cost }
}

// WithProgress registers a callback invoked after each generated record.
func WithProgress(fn func(done, total int)) Option {
	return func(g *Generator) { g.progress = fn }
}

// New creates a generator that gives every user the given plaintext password
// (hashed) and draws roles from dist.
func New(password string, dist Distribution, opts ...Option) *Generator {
	g := &Generator{
		password: password,
		dist:     dist,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces exactly count users. The password is hashed once and the
// hash is shared by every record.
func (g *Generator) Generate(count int) ([]User, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generate: %w: %d", ErrInvalidCount, count)
	}
	if err := g.dist.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	src := g.src
	if src == nil {
		seed, err := RandomSeed()
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		src = NewSource(seed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(g.password), g.cost)
	if err != nil {
		return nil, fmt.Errorf("generate: hash password: %w", err)
	}

	// BSON dates carry milliseconds; drawing at that resolution keeps the
	// exported file exact.
	now := g.now().UTC().Truncate(time.Millisecond)

	seen := make(map[string]struct{}, count)
	users := make([]User, 0, count)
	for i := range count {
		u, err := g.record(src, now, string(hash), seen)
		if err != nil {
			return nil, fmt.Errorf("generate: record %d: %w", i, err)
		}
		users = append(users, u)

		if g.progress != nil {
			g.progress(i+1, count)
		}
	}

	return users, nil
}

func (g *Generator) record(src Source, now time.Time, hash string, seen map[string]struct{}) (User, error) {
	role := g.dist.pick(src)
	bal := balance(role, src)
	ph := phone(src)
	created := createdAt(src, now)
	last := lastLogin(src, created, now)
	active := src.Float64() < activeRate

	name, err := uniqueUsername(src, seen)
	if err != nil {
		return User{}, err
	}
	domain := pick(src, emailDomains)

	return User{
		ID:        primitive.NewObjectID(),
		Email:     name + "@" + domain,
		Password:  hash,
		Phone:     ph,
		Role:      role,
		Balance:   bal,
		CreatedAt: created,
		LastLogin: last,
		Active:    active,
	}, nil
}

// phone returns a Chilean mobile number: +569 and 8 digits.
func phone(src Source) string {
	return fmt.Sprintf("%s%08d", phonePrefix, src.IntN(100_000_000))
}

// createdAt is uniform over [now-accountWindow, now].
func createdAt(src Source, now time.Time) time.Time {
	span := accountWindow.Milliseconds()
	offset := time.Duration(src.Int64N(span+1)) * time.Millisecond
	return now.Add(-accountWindow).Add(offset)
}

// lastLogin is nil for users that never logged in, otherwise uniform over
// [created, now].
func lastLogin(src Source, created, now time.Time) *time.Time {
	if src.Float64() < neverLoggedInRate {
		return nil
	}
	span := now.Sub(created).Milliseconds()
	t := created.Add(time.Duration(src.Int64N(span+1)) * time.Millisecond)
	return &t
}

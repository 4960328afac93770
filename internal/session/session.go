// Package session provides Valkey-backed visitor sessions. A session holds
// the visitor's generator results and contact form state so that a page
// reload, or a non-HTMX form post followed by a redirect, shows the same
// state. Sessions are identified by a cookie and stored as JSON in Valkey
// with automatic TTL expiry.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"skillsite/internal/contact"
	"skillsite/internal/features"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "ss_visitor"

	// DefaultTTL is how long an idle session lives in Valkey.
	DefaultTTL = 7 * 24 * time.Hour

	// keyPrefix namespaces session keys in Valkey to avoid collisions.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32

	// maxUpdateAttempts bounds optimistic-lock retries in Update.
	maxUpdateAttempts = 5
)

// ErrConflict is returned when Update keeps losing the race against
// concurrent writers of the same session.
var ErrConflict = errors.New("session: concurrent update conflict")

// Data holds the session payload stored in Valkey.
type Data struct {
	ID        string            `json:"-"`
	VisitorID uuid.UUID         `json:"visitor_id"`
	Features  features.Board    `json:"features"`
	Contact   contact.FormState `json:"contact"`
	CreatedAt time.Time         `json:"created_at"`
}

// Store manages session lifecycle in Valkey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store backed by the given Valkey client.
// When secure is true, cookies are marked Secure (HTTPS-only).
func NewStore(client *redis.Client, secure bool) *Store {
	return &Store{
		client: client,
		ttl:    DefaultTTL,
		secure: secure,
	}
}

// Load returns the visitor's session, creating a new one (and setting the
// cookie) when the request carries none or it has expired.
func (s *Store) Load(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Data, error) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		data, err := s.get(ctx, cookie.Value)
		if err != nil {
			return nil, err
		}
		if data != nil {
			return data, nil
		}
	}
	return s.create(ctx, w)
}

func (s *Store) create(ctx context.Context, w http.ResponseWriter) (*Data, error) {
	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("session create: %w", err)
	}

	data := &Data{ID: id, VisitorID: uuid.New(), CreatedAt: time.Now()}
	if err := s.Save(ctx, data); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return data, nil
}

func (s *Store) get(ctx context.Context, id string) (*Data, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	data.ID = id
	return &data, nil
}

// Save writes the whole session and resets its TTL.
func (s *Store) Save(ctx context.Context, data *Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+data.ID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}

// Update re-reads the session, applies fn and writes it back inside a
// WATCH transaction, so concurrent requests of the same visitor that touch
// different features never overwrite each other. data is refreshed with
// the stored result.
func (s *Store) Update(ctx context.Context, data *Data, fn func(*Data)) error {
	key := keyPrefix + data.ID

	txf := func(tx *redis.Tx) error {
		current := *data
		payload, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			// Expired between load and update; write what we have.
		case err != nil:
			return fmt.Errorf("session get: %w", err)
		default:
			current = Data{}
			if err := json.Unmarshal(payload, &current); err != nil {
				return fmt.Errorf("session unmarshal: %w", err)
			}
			current.ID = data.ID
		}

		fn(&current)

		out, err := json.Marshal(&current)
		if err != nil {
			return fmt.Errorf("session marshal: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, s.ttl)
			return nil
		})
		if err == nil {
			*data = current
		}
		return err
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("session update: %w", err)
		}
		return nil
	}
	return ErrConflict
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

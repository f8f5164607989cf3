package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"aahar-telegram/models"
	"aahar-telegram/store"
)

// ErrInvalidCode is returned by Login when the code matches neither
// reserved login code.
var ErrInvalidCode = errors.New("invalid code")

// Sessions tracks the logged-in identity per Telegram user and persists it
// through the key-value store. The store is the only durable state in the
// application; a store failure degrades to "logged out", it never blocks
// the bot.
type Sessions struct {
	store        store.Store
	adminCode    string
	customerCode string

	mu     sync.RWMutex
	active map[int64]*models.Session
}

func NewSessions(st store.Store, adminCode, customerCode string) *Sessions {
	return &Sessions{
		store:        st,
		adminCode:    adminCode,
		customerCode: customerCode,
		active:       make(map[int64]*models.Session),
	}
}

func sessionKey(userID int64) string {
	return "session:" + strconv.FormatInt(userID, 10)
}

// Restore loads the persisted identity for the user, if any. A missing,
// unreadable or malformed record just leaves the user logged out.
func (s *Sessions) Restore(ctx context.Context, userID int64) *models.Session {
	s.mu.RLock()
	if sess, ok := s.active[userID]; ok {
		s.mu.RUnlock()
		return sess
	}
	s.mu.RUnlock()

	b, err := s.store.Get(ctx, sessionKey(userID))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("session restore for %d: %v", userID, err)
		}
		return nil
	}
	var sess models.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		log.Printf("session restore for %d: bad record: %v", userID, err)
		return nil
	}
	if sess.MobileNumber == "" || (sess.Role != models.RoleAdmin && sess.Role != models.RoleCustomer) {
		log.Printf("session restore for %d: incomplete record, ignoring", userID)
		return nil
	}
	s.mu.Lock()
	s.active[userID] = &sess
	s.mu.Unlock()
	return &sess
}

// Login checks the code against the two reserved login codes and, on a
// match, establishes and persists a session for the user. Any other code
// fails with ErrInvalidCode and leaves no session behind. A persist
// failure is logged; the in-memory session stands regardless.
func (s *Sessions) Login(ctx context.Context, userID int64, mobileNumber, code string) (*models.Session, error) {
	var role models.Role
	switch code {
	case s.adminCode:
		role = models.RoleAdmin
	case s.customerCode:
		role = models.RoleCustomer
	default:
		return nil, ErrInvalidCode
	}

	sess := &models.Session{
		MobileNumber: mobileNumber,
		Role:         role,
		LoginTime:    time.Now().UTC(),
	}
	s.mu.Lock()
	s.active[userID] = sess
	s.mu.Unlock()

	b, err := json.Marshal(sess)
	if err == nil {
		err = s.store.Set(ctx, sessionKey(userID), b)
	}
	if err != nil {
		log.Printf("session persist for %d: %v", userID, err)
	}
	return sess, nil
}

// Logout clears the session. The persisted record is deleted best-effort;
// the in-memory session is gone either way.
func (s *Sessions) Logout(ctx context.Context, userID int64) {
	s.mu.Lock()
	delete(s.active, userID)
	s.mu.Unlock()
	if err := s.store.Delete(ctx, sessionKey(userID)); err != nil {
		log.Printf("session delete for %d: %v", userID, err)
	}
}

// Current returns the in-memory session for the user without touching
// the store.
func (s *Sessions) Current(userID int64) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active[userID]
}

// IsAdmin reports whether the user's current session has the admin role.
func (s *Sessions) IsAdmin(userID int64) bool {
	return s.Current(userID).IsAdmin()
}

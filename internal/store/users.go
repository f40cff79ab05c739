package store

import (
	"crypto/rand"
	"encoding/json"
	"log"
	"math/big"
	"time"

	"github.com/example/telkomportal/internal/models"
	"github.com/example/telkomportal/internal/storage"
)

// UsersKey is the storage key holding the whole user collection as a JSON array.
const UsersKey = "telkom_users_db"

const accountNumberCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// UserStore manages customer accounts on top of the key-value layer. Reads that
// fail degrade to the compiled-in seed set; failed writes are logged and dropped.
// Availability is favored over correctness here on purpose.
type UserStore struct {
	store storage.Store
	seed  []models.User
}

// NewUserStore builds a UserStore with the two seeded demo accounts.
func NewUserStore(store storage.Store) *UserStore {
	now := time.Now().UTC().Format(isoMillis)
	return &UserStore{
		store: store,
		seed: []models.User{
			{
				ID:            1,
				FirstName:     "John",
				LastName:      "Doe",
				Email:         "john.doe@example.com",
				Phone:         "+27123456789",
				Plan:          "Fiber Premium 100Mbps",
				AccountNumber: "TLK001234567",
				RegisteredAt:  now,
				Password:      "password123",
			},
			{
				ID:            2,
				FirstName:     "Jane",
				LastName:      "Smith",
				Email:         "jane.smith@example.com",
				Phone:         "+27987654321",
				Plan:          "Mobile Data 50GB",
				AccountNumber: "TLK007654321",
				RegisteredAt:  now,
				Password:      "password456",
			},
		},
	}
}

// Authenticate scans for an exact email and password match and returns the user
// with the password stripped. Plaintext equality is the provider's contract;
// there is no hashing, lockout or rate limiting to emulate.
func (s *UserStore) Authenticate(email, password string) (models.User, bool) {
	for _, u := range s.loadUsers() {
		if u.Email == email && u.Password == password {
			return u.WithoutPassword(), true
		}
	}
	return models.User{}, false
}

// GetByID looks up a user by numeric ID, password stripped.
func (s *UserStore) GetByID(id int64) (models.User, bool) {
	for _, u := range s.loadUsers() {
		if u.ID == id {
			return u.WithoutPassword(), true
		}
	}
	return models.User{}, false
}

// GetByAccountNumber looks up a user by account number, password stripped.
func (s *UserStore) GetByAccountNumber(accountNumber string) (models.User, bool) {
	for _, u := range s.loadUsers() {
		if u.AccountNumber == accountNumber {
			return u.WithoutPassword(), true
		}
	}
	return models.User{}, false
}

// GetByEmail looks up a user by email, password stripped. Registration uses this
// for its duplicate check; the store itself never enforces uniqueness.
func (s *UserStore) GetByEmail(email string) (models.User, bool) {
	for _, u := range s.loadUsers() {
		if u.Email == email {
			return u.WithoutPassword(), true
		}
	}
	return models.User{}, false
}

// CreateUserInput carries the caller-supplied fields for a new account.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Create appends a new account and persists the whole collection. The ID is the
// creation timestamp in milliseconds, the plan is the fixed starter tier and the
// account number is "TEL" plus eight random base-36 characters. No uniqueness
// check happens here. The returned copy keeps the password stripped.
func (s *UserStore) Create(input CreateUserInput) models.User {
	now := time.Now().UTC()
	user := models.User{
		ID:            now.UnixMilli(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Plan:          "Smart Starter",
		AccountNumber: "TEL" + randomAccountSuffix(8),
		RegisteredAt:  now.Format(isoMillis),
		Password:      input.Password,
	}

	users := append(s.loadUsers(), user)
	s.persist(users)

	return user.WithoutPassword()
}

func (s *UserStore) loadUsers() []models.User {
	raw, err := s.store.Get(UsersKey)
	if err != nil {
		if err == storage.ErrNotFound {
			// First read: write the seed set through so later mutations build on it.
			s.persist(s.seed)
			return s.seed
		}
		log.Printf("[users] load failed, serving seed data: %v", err)
		return s.seed
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log.Printf("[users] corrupt user collection, serving seed data: %v", err)
		return s.seed
	}
	return users
}

func (s *UserStore) persist(users []models.User) {
	raw, err := json.Marshal(users)
	if err != nil {
		log.Printf("[users] marshal user collection: %v", err)
		return
	}
	if err := s.store.Set(UsersKey, string(raw)); err != nil {
		log.Printf("[users] persist user collection: %v", err)
	}
}

func randomAccountSuffix(length int) string {
	max := big.NewInt(int64(len(accountNumberCharset)))
	suffix := make([]byte, length)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			suffix[i] = accountNumberCharset[0]
			continue
		}
		suffix[i] = accountNumberCharset[n.Int64()]
	}
	return string(suffix)
}

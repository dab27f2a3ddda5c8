package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store はセッショントークン→カートの置き場。
// カートはメモリ上だけに存在し、プロセス終了・期限切れで消える（永続化しない）。
type Store struct {
	mu    sync.Mutex
	carts map[string]*entry
	ttl   time.Duration
	now   func() time.Time
}

type entry struct {
	cart     *Cart
	lastSeen time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		carts: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// GetOrCreate はトークンに対応するカートを返す。
// 未知・期限切れのトークンなら新しいカートと新トークンを発行する。
// 戻りのトークンをcookieに書き戻すこと。
func (s *Store) GetOrCreate(token string) (*Cart, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	if token != "" {
		if e, ok := s.carts[token]; ok {
			e.lastSeen = now
			return e.cart, token
		}
	}

	token = uuid.NewString()
	c := New()
	s.carts[token] = &entry{cart: c, lastSeen: now}
	return c, token
}

// 期限切れセッションの掃除。アクセスのたびに通る。
func (s *Store) sweepLocked(now time.Time) {
	for tok, e := range s.carts {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.carts, tok)
		}
	}
}

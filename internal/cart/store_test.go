package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetOrCreate_IssuesToken(t *testing.T) {
	s := NewStore(time.Hour)

	c, token := s.GetOrCreate("")
	assert.NotNil(t, c)
	assert.NotEmpty(t, token)
}

func TestStore_GetOrCreate_SameTokenSameCart(t *testing.T) {
	s := NewStore(time.Hour)

	c1, token := s.GetOrCreate("")
	c1.Add(Item{ID: 1, Name: "Sauvage", Price: 150})

	c2, token2 := s.GetOrCreate(token)
	assert.Equal(t, token, token2)
	assert.Equal(t, 1, len(c2.Snapshot().Lines))
}

func TestStore_GetOrCreate_UnknownTokenGetsNewCart(t *testing.T) {
	s := NewStore(time.Hour)

	c, token := s.GetOrCreate("no-such-token")
	assert.NotEqual(t, "no-such-token", token)
	assert.Equal(t, 0, len(c.Snapshot().Lines))
}

func TestStore_GetOrCreate_ExpiredTokenGetsNewCart(t *testing.T) {
	now := time.Now()
	s := NewStore(time.Hour)
	s.now = func() time.Time { return now }

	c1, token := s.GetOrCreate("")
	c1.Add(Item{ID: 1, Name: "Sauvage", Price: 150})

	//TTL超過
	now = now.Add(2 * time.Hour)

	c2, token2 := s.GetOrCreate(token)
	assert.NotEqual(t, token, token2)
	assert.Equal(t, 0, len(c2.Snapshot().Lines))
}

// アクセスがあれば期限は延びる
func TestStore_GetOrCreate_AccessRefreshesTTL(t *testing.T) {
	now := time.Now()
	s := NewStore(time.Hour)
	s.now = func() time.Time { return now }

	c1, token := s.GetOrCreate("")
	c1.Add(Item{ID: 1, Name: "Sauvage", Price: 150})

	now = now.Add(45 * time.Minute)
	_, _ = s.GetOrCreate(token)

	now = now.Add(45 * time.Minute)
	c2, token2 := s.GetOrCreate(token)
	assert.Equal(t, token, token2)
	assert.Equal(t, 1, len(c2.Snapshot().Lines))
}

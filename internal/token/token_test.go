package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-service/internal/model"
)

func testUser(admin bool) *model.User {
	return &model.User{
		ID:      primitive.NewObjectID(),
		Email:   "alice@example.com",
		IsAdmin: admin,
	}
}

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)
	u := testUser(true)

	signed, err := m.Issue(u)
	require.NoError(t, err)

	p, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), p.ID)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.True(t, p.IsAdmin)
}

func TestVerify_Expired(t *testing.T) {
	// A negative TTL issues an already-expired credential.
	m := NewManager("secret", -time.Minute)

	signed, err := m.Issue(testUser(false))
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid, "expired credentials never verify")
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Issue(testUser(false))
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalid)
}

package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCustomer(t *testing.T, name, email string) *Customer {
	t.Helper()
	n, err := NewName(name)
	require.NoError(t, err)
	e, err := NewEmail(email)
	require.NoError(t, err)
	return New(NextID(), n, e)
}

func TestNewCustomer(t *testing.T) {
	c := mustCustomer(t, "Jane Doe", "jane@example.com")

	assert.Equal(t, "Jane Doe", c.Name().String())
	assert.Equal(t, "jane@example.com", c.Email().String())
	assert.False(t, c.CreatedAt().IsZero())
	assert.Nil(t, c.UpdatedAt())
}

func TestUpdateStampsChange(t *testing.T) {
	c := mustCustomer(t, "Jane Doe", "jane@example.com")

	name, err := NewName("Jane Smith")
	require.NoError(t, err)
	email, err := NewEmail("jane.smith@example.com")
	require.NoError(t, err)

	c.Update(name, email)

	assert.Equal(t, "Jane Smith", c.Name().String())
	assert.Equal(t, "jane.smith@example.com", c.Email().String())
	require.NotNil(t, c.UpdatedAt())
	assert.False(t, c.UpdatedAt().Before(c.CreatedAt()))
}

func TestRestoreRoundTrip(t *testing.T) {
	c := mustCustomer(t, "Jane Doe", "jane@example.com")

	restored, err := Restore(c.ToRecord())
	require.NoError(t, err)
	assert.True(t, c.Equals(restored))
	assert.Equal(t, c.Name().String(), restored.Name().String())
	assert.Equal(t, c.Email().String(), restored.Email().String())
}

func TestRestoreRejectsCorruptRecords(t *testing.T) {
	c := mustCustomer(t, "Jane Doe", "jane@example.com")

	rec := c.ToRecord()
	rec.Email = "not-an-email"
	_, err := Restore(rec)
	require.Error(t, err)

	rec = c.ToRecord()
	rec.Name = ""
	_, err = Restore(rec)
	require.Error(t, err)

	rec = c.ToRecord()
	rec.ID = ID{}
	_, err = Restore(rec)
	require.Error(t, err)
}

func TestFactoryGeneratesDistinctIDs(t *testing.T) {
	name, err := NewName("Jane Doe")
	require.NoError(t, err)
	email, err := NewEmail("jane@example.com")
	require.NoError(t, err)

	factory := NewDefaultFactory()
	a := factory.NewCustomer(name, email)
	b := factory.NewCustomer(name, email)

	assert.False(t, a.Equals(b))
	assert.False(t, a.ID().IsZero())
}

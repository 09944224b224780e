package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestNewAuthor(t *testing.T) {
	a, err := NewAuthor("George Orwell", date(1903, 6, 25), nil)
	require.NoError(t, err)

	assert.Equal(t, "George Orwell", a.FullName())
	assert.Equal(t, "G.O.", a.Initials())
	assert.True(t, a.IsAlive())
	assert.NotEqual(t, "", a.ID.String())
}

func TestNewAuthorValidation(t *testing.T) {
	var verr ValidationError

	_, err := NewAuthor("", date(1903, 6, 25), nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = NewAuthor("X", date(1903, 6, 25), nil)
	require.ErrorAs(t, err, &verr)

	_, err = NewAuthor(strings.Repeat("a", 101), date(1903, 6, 25), nil)
	require.ErrorAs(t, err, &verr)

	// before 1000 AD
	_, err = NewAuthor("Ancient Scribe", date(900, 1, 1), nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "birth_date", verr.Field)

	// future birth
	_, err = NewAuthor("Unborn Writer", time.Now().AddDate(1, 0, 0), nil)
	require.ErrorAs(t, err, &verr)

	// death before birth
	death := date(1900, 1, 1)
	_, err = NewAuthor("George Orwell", date(1903, 6, 25), &death)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "death_date", verr.Field)
}

func TestAuthorAge(t *testing.T) {
	death := date(1950, 1, 21)
	dead, err := NewAuthor("George Orwell", date(1903, 6, 25), &death)
	require.NoError(t, err)
	assert.False(t, dead.IsAlive())
	assert.Equal(t, 47, dead.Age())

	alive, err := NewAuthor("Living Writer", time.Now().AddDate(-40, 0, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, 40, alive.Age())
}

func TestAuthorClassification(t *testing.T) {
	death := date(1950, 1, 21)
	classic, err := NewAuthor("George Orwell", date(1903, 6, 25), &death)
	require.NoError(t, err)
	assert.False(t, classic.IsClassicAuthor(), "born after 1900")

	victorian, err := NewAuthor("Charles Dickens", date(1812, 2, 7), &death)
	require.NoError(t, err)
	assert.True(t, victorian.IsClassicAuthor())
	assert.False(t, victorian.IsContemporary())

	modern, err := NewAuthor("Modern Writer", time.Now().AddDate(-35, 0, 0), nil)
	require.NoError(t, err)
	assert.True(t, modern.IsContemporary())
}

func TestAuthorInitialsSingleName(t *testing.T) {
	a, err := NewAuthor("Homer", date(1000, 1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, "H.", a.Initials())
}

func TestAuthorSetDeathDate(t *testing.T) {
	a, err := NewAuthor("George Orwell", date(1903, 6, 25), nil)
	require.NoError(t, err)

	var verr ValidationError
	require.ErrorAs(t, a.SetDeathDate(date(1900, 1, 1)), &verr)
	assert.True(t, a.IsAlive(), "failed update must not change the entity")

	require.NoError(t, a.SetDeathDate(date(1950, 1, 21)))
	assert.False(t, a.IsAlive())
	assert.Equal(t, 47, a.Age())
}

func TestAuthorRename(t *testing.T) {
	a, err := NewAuthor("George Orwell", date(1903, 6, 25), nil)
	require.NoError(t, err)

	require.NoError(t, a.Rename("Eric Arthur Blair"))
	assert.Equal(t, "Eric Arthur Blair", a.Name)
	assert.Equal(t, "E.B.", a.Initials())

	var verr ValidationError
	require.ErrorAs(t, a.Rename(" "), &verr)
	assert.Equal(t, "Eric Arthur Blair", a.Name)
}

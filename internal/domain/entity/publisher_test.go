package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	p, err := NewPublisher("Penguin Random House", "https://www.penguinrandomhouse.com")
	require.NoError(t, err)
	assert.Equal(t, "Penguin Random House", p.DisplayName())
	assert.Equal(t, "www.penguinrandomhouse.com", p.Domain())
}

func TestNewPublisherValidation(t *testing.T) {
	var verr ValidationError

	_, err := NewPublisher("", "https://example.com")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = NewPublisher("Acme Press", "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "website", verr.Field)

	_, err = NewPublisher("Acme Press", "not a url")
	require.ErrorAs(t, err, &verr)

	_, err = NewPublisher("Acme Press", "ftp://example.com")
	require.ErrorAs(t, err, &verr)

	_, err = NewPublisher("Acme Press", "/relative/path")
	require.ErrorAs(t, err, &verr)
}

func TestPublisherClassification(t *testing.T) {
	major, err := NewPublisher("Penguin Books", "https://penguin.com")
	require.NoError(t, err)
	assert.True(t, major.IsMajorPublisher())
	assert.False(t, major.IsIndependentPublisher())

	uni, err := NewPublisher("Oxford University Press", "https://global.oup.com")
	require.NoError(t, err)
	assert.True(t, uni.IsUniversityPress())
	// listed among the majors too
	assert.True(t, uni.IsMajorPublisher())

	indie, err := NewPublisher("Tiny Letterpress", "https://tinyletterpress.example")
	require.NoError(t, err)
	assert.False(t, indie.IsMajorPublisher())
	assert.False(t, indie.IsUniversityPress())
	assert.True(t, indie.IsIndependentPublisher())
}

func TestPublisherSetWebsite(t *testing.T) {
	p, err := NewPublisher("Acme Press", "https://acme.example")
	require.NoError(t, err)

	var verr ValidationError
	require.ErrorAs(t, p.SetWebsite("nope"), &verr)
	assert.Equal(t, "https://acme.example", p.Website)

	require.NoError(t, p.SetWebsite("http://acme-press.example"))
	assert.Equal(t, "acme-press.example", p.Domain())
}

package communication

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func draft(t *testing.T) *Announcement {
	t.Helper()
	a, err := NewAnnouncement("Manutenzione programmata", "**Sabato** il servizio sarà offline.",
		"<p><strong>Sabato</strong> il servizio sarà offline.</p>", AudienceAll, 1, testNow)
	require.NoError(t, err)
	return a
}

func TestNewAnnouncement(t *testing.T) {
	a := draft(t)

	assert.Equal(t, AnnouncementDraft, a.Status())
	assert.True(t, strings.HasPrefix(a.SID(), "ann_"))
	assert.Nil(t, a.PublishedAt())
}

func TestNewAnnouncement_Validation(t *testing.T) {
	_, err := NewAnnouncement("", "body", "<p>body</p>", AudienceAll, 1, testNow)
	assert.Error(t, err)

	_, err = NewAnnouncement(strings.Repeat("x", maxTitleLength+1), "body", "<p>body</p>", AudienceAll, 1, testNow)
	assert.Error(t, err)

	_, err = NewAnnouncement("title", "", "", AudienceAll, 1, testNow)
	assert.Error(t, err)

	_, err = NewAnnouncement("title", "body", "<p>body</p>", Audience("everyone"), 1, testNow)
	assert.Error(t, err)

	_, err = NewAnnouncement("title", "body", "<p>body</p>", AudienceAll, 0, testNow)
	assert.Error(t, err)
}

func TestPublishAndArchive(t *testing.T) {
	a := draft(t)

	require.NoError(t, a.Publish(testNow))
	assert.Equal(t, AnnouncementPublished, a.Status())
	require.NotNil(t, a.PublishedAt())

	// Publishing again is a no-op.
	require.NoError(t, a.Publish(testNow.Add(time.Hour)))
	assert.True(t, testNow.Equal(*a.PublishedAt()))

	a.Archive(testNow.Add(2 * time.Hour))
	assert.Equal(t, AnnouncementArchived, a.Status())

	assert.ErrorIs(t, a.Publish(testNow.Add(3*time.Hour)), ErrAnnouncementArchived)
}

func TestUpdateBody_OnlyDrafts(t *testing.T) {
	a := draft(t)

	require.NoError(t, a.UpdateBody("Aggiornamento", "testo", "<p>testo</p>", testNow))
	assert.Equal(t, "Aggiornamento", a.Title())

	require.NoError(t, a.Publish(testNow))
	assert.ErrorIs(t, a.UpdateBody("x", "y", "<p>y</p>", testNow), ErrAnnouncementNotDraft)
}

func TestVisibleTo(t *testing.T) {
	cases := []struct {
		audience Audience
		agency   bool
		visible  bool
	}{
		{AudienceAll, true, true},
		{AudienceAll, false, true},
		{AudienceAgencies, true, true},
		{AudienceAgencies, false, false},
		{AudienceSingles, true, false},
		{AudienceSingles, false, true},
	}

	for _, tc := range cases {
		a, err := NewAnnouncement("title", "body", "<p>body</p>", tc.audience, 1, testNow)
		require.NoError(t, err)

		assert.False(t, a.VisibleTo(tc.agency), "drafts are never visible")

		require.NoError(t, a.Publish(testNow))
		assert.Equal(t, tc.visible, a.VisibleTo(tc.agency), "audience=%s agency=%v", tc.audience, tc.agency)
	}
}

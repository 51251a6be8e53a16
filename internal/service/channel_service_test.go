package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"streamhub/internal/domain"
	"streamhub/internal/repository"
	"streamhub/internal/service"
)

func newChannelService(t *testing.T) domain.ChannelService {
	t.Helper()

	db := openTestDB(t)
	log := newTestLogger()
	return service.NewChannelService(repository.NewChannelRepository(db, log), log)
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetChannel(t *testing.T) {
	svc := newChannelService(t)

	channel := &domain.Channel{
		Name:        "TRT Belgesel",
		Category:    domain.CategoryKnowledge,
		Description: strPtr("Documentary channel"),
	}
	require.NoError(t, svc.CreateChannel(channel))
	require.NotZero(t, channel.ID)

	got, err := svc.GetChannelByID(channel.ID)
	require.NoError(t, err)
	require.Equal(t, "TRT Belgesel", got.Name)
	require.Equal(t, domain.CategoryKnowledge, got.Category)
	require.NotNil(t, got.Description)
	require.Equal(t, "Documentary channel", *got.Description)
	require.Nil(t, got.LogoURL)

	byName, err := svc.GetChannelByName("TRT Belgesel")
	require.NoError(t, err)
	require.Equal(t, channel.ID, byName.ID)
}

func TestCreateChannelDuplicateName(t *testing.T) {
	svc := newChannelService(t)

	require.NoError(t, svc.CreateChannel(&domain.Channel{Name: "TRT Spor", Category: domain.CategorySport}))

	err := svc.CreateChannel(&domain.Channel{Name: "TRT Spor", Category: domain.CategorySport})
	require.True(t, domain.IsKind(err, domain.KindConflict))
}

func TestGetChannelNotFound(t *testing.T) {
	svc := newChannelService(t)

	_, err := svc.GetChannelByID(999)
	require.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestUpdateChannelPartial(t *testing.T) {
	svc := newChannelService(t)

	channel := &domain.Channel{
		Name:        "Kids Fun",
		Category:    domain.CategoryKids,
		Description: strPtr("Cartoons"),
	}
	require.NoError(t, svc.CreateChannel(channel))

	updated, err := svc.UpdateChannel(channel.ID, &domain.ChannelPatch{
		Description: strPtr("Cartoons and songs"),
	})
	require.NoError(t, err)

	// Untouched fields survive a partial update.
	require.Equal(t, "Kids Fun", updated.Name)
	require.Equal(t, domain.CategoryKids, updated.Category)
	require.Equal(t, "Cartoons and songs", *updated.Description)

	got, err := svc.GetChannelByID(channel.ID)
	require.NoError(t, err)
	require.Equal(t, "Kids Fun", got.Name)
	require.Equal(t, "Cartoons and songs", *got.Description)
}

func TestUpdateChannelRenameConflict(t *testing.T) {
	svc := newChannelService(t)

	require.NoError(t, svc.CreateChannel(&domain.Channel{Name: "First", Category: domain.CategoryGaming}))

	second := &domain.Channel{Name: "Second", Category: domain.CategoryGaming}
	require.NoError(t, svc.CreateChannel(second))

	_, err := svc.UpdateChannel(second.ID, &domain.ChannelPatch{Name: strPtr("First")})
	require.True(t, domain.IsKind(err, domain.KindConflict))

	// Renaming to the current name is a no-op, not a conflict.
	_, err = svc.UpdateChannel(second.ID, &domain.ChannelPatch{Name: strPtr("Second")})
	require.NoError(t, err)
}

func TestDeleteChannel(t *testing.T) {
	svc := newChannelService(t)

	channel := &domain.Channel{Name: "Short Lived", Category: domain.CategoryEntertainment}
	require.NoError(t, svc.CreateChannel(channel))

	require.NoError(t, svc.DeleteChannel(channel.ID))

	_, err := svc.GetChannelByID(channel.ID)
	require.True(t, domain.IsKind(err, domain.KindNotFound))

	err = svc.DeleteChannel(channel.ID)
	require.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestListChannelsPagination(t *testing.T) {
	svc := newChannelService(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.CreateChannel(&domain.Channel{
			Name:     fmt.Sprintf("Channel %02d", i),
			Category: domain.CategoryEntertainment,
		}))
	}

	all, err := svc.ListChannels(0, 100)
	require.NoError(t, err)
	require.Len(t, all, 5)

	page, err := svc.ListChannels(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "Channel 02", page[0].Name)
	require.Equal(t, "Channel 03", page[1].Name)
}

package link_test

import (
	"context"
	"testing"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/models"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service/link"
	"team-backoffice/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLinkService_Create(t *testing.T) {
	ctx := context.Background()

	mockLinks := mocks.NewLinkStore(t)
	mockLinks.On("Create", ctx, mock.MatchedBy(func(l *models.Link) bool {
		return l.URL == "https://byggmakker.no" && l.Description == nil && l.CreatedBy == 7 && l.TeamID == 3
	})).Return(func(_ context.Context, l *models.Link) (*models.Link, error) {
		l.ID = 1
		return l, nil
	}).Once()

	service := link.NewLinkService(mockLinks)

	resp, err := service.Create(ctx, 3, 7, api.LinkRequest{
		Title:       "Byggmakker",
		URL:         "byggmakker.no",
		Description: "  ",
		Category:    "suppliers",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.ID)
	assert.Nil(t, resp.Description)
}

func TestLinkService_Create_KeepsDescription(t *testing.T) {
	ctx := context.Background()

	mockLinks := mocks.NewLinkStore(t)
	mockLinks.On("Create", ctx, mock.MatchedBy(func(l *models.Link) bool {
		return l.Description != nil && *l.Description == "Timelister"
	})).Return(func(_ context.Context, l *models.Link) (*models.Link, error) {
		return l, nil
	}).Once()

	service := link.NewLinkService(mockLinks)

	resp, err := service.Create(ctx, 3, 7, api.LinkRequest{
		Title: "Tripletex", URL: "http://tripletex.no", Description: "Timelister", Category: "tools",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://tripletex.no", resp.URL)
}

func TestLinkService_List(t *testing.T) {
	ctx := context.Background()

	mockLinks := mocks.NewLinkStore(t)
	mockLinks.On("ListByTeam", ctx, 3, "tools").Return([]*models.Link{{ID: 1, Category: "tools"}}, nil).Once()

	service := link.NewLinkService(mockLinks)

	resp, err := service.List(ctx, 3, "tools")

	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestLinkService_Delete(t *testing.T) {
	ctx := context.Background()

	mockLinks := mocks.NewLinkStore(t)
	mockLinks.On("Delete", ctx, 3, 1).Return(&models.Link{ID: 1, Title: "Altinn"}, nil).Once()
	mockLinks.On("Delete", ctx, 3, 2).Return(nil, repo.ErrNotFound).Once()

	service := link.NewLinkService(mockLinks)

	resp, err := service.Delete(ctx, 3, 1)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Altinn", resp.DeletedLink.Title)

	_, err = service.Delete(ctx, 3, 2)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

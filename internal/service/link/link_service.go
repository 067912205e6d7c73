package link

import (
	"context"
	"strings"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=LinkStore
type LinkStore interface {
	Create(ctx context.Context, l *models.Link) (*models.Link, error)
	ListByTeam(ctx context.Context, teamID int, category string) ([]*models.Link, error)
	Delete(ctx context.Context, teamID, linkID int) (*models.Link, error)
}

type LinkService struct {
	links LinkStore
}

func NewLinkService(links LinkStore) *LinkService {
	return &LinkService{links: links}
}

func (s *LinkService) List(ctx context.Context, teamID int, category string) ([]api.LinkSchema, error) {
	links, err := s.links.ListByTeam(ctx, teamID, category)
	if err != nil {
		return nil, err
	}

	resp := make([]api.LinkSchema, 0, len(links))
	for _, l := range links {
		resp = append(resp, api.ToLinkSchema(l))
	}

	return resp, nil
}

func (s *LinkService) Create(ctx context.Context, teamID, userID int, req api.LinkRequest) (*api.LinkSchema, error) {
	l := &models.Link{
		TeamID:    teamID,
		Title:     strings.TrimSpace(req.Title),
		URL:       models.NormalizeURL(req.URL),
		Category:  req.Category,
		CreatedBy: userID,
	}
	if d := strings.TrimSpace(req.Description); d != "" {
		l.Description = &d
	}

	created, err := s.links.Create(ctx, l)
	if err != nil {
		return nil, err
	}

	resp := api.ToLinkSchema(created)
	return &resp, nil
}

func (s *LinkService) Delete(ctx context.Context, teamID, linkID int) (*api.DeleteLinkResponse, error) {
	deleted, err := s.links.Delete(ctx, teamID, linkID)
	if err != nil {
		return nil, err
	}

	return &api.DeleteLinkResponse{
		Success:     true,
		DeletedLink: api.ToLinkSchema(deleted),
	}, nil
}

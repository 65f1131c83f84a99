package services

import (
	"context"
	"net/url"
	"time"
)

type Contest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	URL         string    `json:"url,omitempty"`
	Status      string    `json:"status,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
}

// ContestParticipation is one entry of the signed-in user's history
type ContestParticipation struct {
	ContestID string    `json:"contestId"`
	Title     string    `json:"title"`
	Rank      int       `json:"rank,omitempty"`
	Score     float64   `json:"score,omitempty"`
	Solved    int       `json:"solved,omitempty"`
	EndedAt   time.Time `json:"endedAt"`
}

// ListContests calls GET /contests
func (c *Client) ListContests(ctx context.Context, token string) ([]Contest, error) {
	var contests []Contest
	if err := c.get(ctx, token, "/contests", "contests", &contests); err != nil {
		return nil, err
	}
	return contests, nil
}

// GetContest calls GET /contests/{id}
func (c *Client) GetContest(ctx context.Context, token, id string) (*Contest, error) {
	var contest Contest
	if err := c.get(ctx, token, "/contests/"+url.PathEscape(id), "contest", &contest); err != nil {
		return nil, err
	}
	return &contest, nil
}

// ContestHistory calls GET /contests/history/me
func (c *Client) ContestHistory(ctx context.Context, token string) ([]ContestParticipation, error) {
	var history []ContestParticipation
	if err := c.get(ctx, token, "/contests/history/me", "contest_history", &history); err != nil {
		return nil, err
	}
	return history, nil
}

// ExternalContests calls GET /contests/external
func (c *Client) ExternalContests(ctx context.Context, token string) ([]Contest, error) {
	var contests []Contest
	if err := c.get(ctx, token, "/contests/external", "contests_external", &contests); err != nil {
		return nil, err
	}
	return contests, nil
}

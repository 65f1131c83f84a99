package services

import "context"

type Alumnus struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
	Company        string `json:"company,omitempty"`
	Position       string `json:"position,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
}

// ListAlumni calls GET /alumni
func (c *Client) ListAlumni(ctx context.Context, token string) ([]Alumnus, error) {
	var alumni []Alumnus
	if err := c.get(ctx, token, "/alumni", "alumni", &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

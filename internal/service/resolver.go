package service

import (
	"context"
	"log/slog"
	"strings"

	"schoolsync/internal/domain"
)

// Resolver attaches local entity ids to an incoming record's references.
// Each kind tries an ordered set of strategies: remote external id first,
// then the kind's natural keys, then creation of a placeholder row carrying
// whatever the current record supplies. Name matches break ties on lowest
// id; the resolver never merges or deletes rows.
type Resolver struct {
	schools  SchoolStore
	youth    YouthStore
	children ChildStore
	mentors  MentorStore
	logger   *slog.Logger
}

func NewResolver(schools SchoolStore, youth YouthStore, children ChildStore, mentors MentorStore, logger *slog.Logger) *Resolver {
	return &Resolver{
		schools:  schools,
		youth:    youth,
		children: children,
		mentors:  mentors,
		logger:   logger,
	}
}

// SchoolRef carries the school fields an incoming record supplies.
type SchoolRef struct {
	ExternalID string
	Name       string
	SiteType   string
}

// School resolves by external id, then name, then creates. Returns nil when
// the record supplies neither an id that matches nor a name to create from.
func (r *Resolver) School(ctx context.Context, ref SchoolRef) (*domain.School, error) {
	if ref.ExternalID != "" {
		school, err := r.schools.GetByExternalID(ctx, ref.ExternalID)
		if err != nil || school != nil {
			return school, err
		}
	}
	if ref.Name == "" {
		return nil, nil
	}

	school, err := r.schools.GetByName(ctx, ref.Name)
	if err != nil || school != nil {
		return school, err
	}

	school = &domain.School{
		Name:     strings.TrimSpace(ref.Name),
		IsActive: true,
	}
	if ref.ExternalID != "" {
		school.ExternalID = &ref.ExternalID
	}
	if ref.SiteType != "" {
		school.SiteType = &ref.SiteType
	}
	if _, err := r.schools.Create(ctx, school); err != nil {
		return nil, err
	}
	r.logger.Debug("created placeholder school", "name", school.Name, "external_id", ref.ExternalID)
	return school, nil
}

// YouthRef carries the youth fields an incoming record supplies.
type YouthRef struct {
	ExternalID string
	FullName   string
	EmployeeID int64
	SchoolID   *int64
}

// Youth resolves by external id, then employee number, then full name, then
// creates a placeholder split into first/last names. Later syncs of the
// youth dataset enrich placeholders.
func (r *Resolver) Youth(ctx context.Context, ref YouthRef) (*domain.Youth, error) {
	if ref.ExternalID != "" {
		y, err := r.youth.GetByExternalID(ctx, ref.ExternalID)
		if err != nil || y != nil {
			return y, err
		}
	}
	if ref.EmployeeID != 0 {
		y, err := r.youth.GetByEmployeeID(ctx, ref.EmployeeID)
		if err != nil || y != nil {
			return y, err
		}
	}
	if ref.FullName == "" {
		return nil, nil
	}

	y, err := r.youth.GetByFullName(ctx, ref.FullName)
	if err != nil || y != nil {
		return y, err
	}

	first, last := splitName(ref.FullName)
	y = &domain.Youth{
		EmployeeID:       ref.EmployeeID,
		FirstNames:       first,
		LastName:         last,
		FullName:         strings.TrimSpace(ref.FullName),
		EmploymentStatus: "Active",
		SchoolID:         ref.SchoolID,
	}
	if ref.ExternalID != "" {
		y.ExternalID = &ref.ExternalID
	}
	if _, err := r.youth.Create(ctx, y); err != nil {
		return nil, err
	}
	r.logger.Debug("created placeholder youth",
		"full_name", y.FullName, "employee_id", ref.EmployeeID, "external_id", ref.ExternalID)
	return y, nil
}

// ChildRef carries the child fields an incoming record supplies.
type ChildRef struct {
	ExternalID  string
	FullName    string
	Mcode       string
	Grade       string
	OnProgramme bool
	SchoolID    int64
}

// Child resolves by external id, then mcode, then name scoped to the
// school, then creates.
func (r *Resolver) Child(ctx context.Context, ref ChildRef) (*domain.Child, error) {
	if ref.ExternalID != "" {
		c, err := r.children.GetByExternalID(ctx, ref.ExternalID)
		if err != nil || c != nil {
			return c, err
		}
	}
	if ref.Mcode != "" {
		c, err := r.children.GetByMcode(ctx, ref.Mcode)
		if err != nil || c != nil {
			return c, err
		}
	}
	if ref.FullName == "" {
		return nil, nil
	}

	c, err := r.children.GetByNameAndSchool(ctx, ref.FullName, ref.SchoolID)
	if err != nil || c != nil {
		return c, err
	}

	c = &domain.Child{
		FullName:    strings.TrimSpace(ref.FullName),
		OnProgramme: ref.OnProgramme,
		SchoolID:    ref.SchoolID,
	}
	if ref.ExternalID != "" {
		c.ExternalID = &ref.ExternalID
	}
	if ref.Mcode != "" {
		c.Mcode = &ref.Mcode
	}
	if ref.Grade != "" {
		c.Grade = &ref.Grade
	}
	if _, err := r.children.Create(ctx, c); err != nil {
		return nil, err
	}
	r.logger.Debug("created child", "full_name", c.FullName, "external_id", ref.ExternalID)
	return c, nil
}

// Mentor resolves by name or creates; an empty name resolves to none, the
// session's mentor reference is nullable.
func (r *Resolver) Mentor(ctx context.Context, name string) (*domain.Mentor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	m, err := r.mentors.GetByName(ctx, name)
	if err != nil || m != nil {
		return m, err
	}
	m = &domain.Mentor{Name: strings.TrimSpace(name), IsActive: true}
	if _, err := r.mentors.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

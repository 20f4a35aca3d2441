package service

import (
	"context"
	"log/slog"
	"strings"

	"schoolsync/internal/domain"
	"schoolsync/internal/normalize"
	"schoolsync/internal/source/airtable"
)

type youthProcessor struct {
	youth          YouthStore
	resolver       *Resolver
	updateExisting bool
	guard          *batchGuard
	logger         *slog.Logger
}

// NewYouthProcessor reconciles the youth dataset. Rows already matched by
// employee number are only overwritten with the updateExisting opt-in;
// otherwise they are skipped to avoid silently rewriting HR-entered data.
func NewYouthProcessor(youth YouthStore, resolver *Resolver, updateExisting bool, logger *slog.Logger) Processor {
	return &youthProcessor{
		youth:          youth,
		resolver:       resolver,
		updateExisting: updateExisting,
		guard:          newBatchGuard(),
		logger:         logger.With("dataset", domain.SyncTypeYouth),
	}
}

func (p *youthProcessor) SyncType() string { return domain.SyncTypeYouth }

func (p *youthProcessor) ExistsLocally(ctx context.Context, externalID string) (bool, error) {
	y, err := p.youth.GetByExternalID(ctx, externalID)
	return y != nil, err
}

func (p *youthProcessor) Process(ctx context.Context, rec airtable.Record) (Outcome, error) {
	f := rec.Fields

	employeeID, ok := f.Value("Employee ID").Int()
	if !ok || employeeID == 0 {
		return skipped(domain.SkipMissingNaturalKey), nil
	}
	if p.guard.seenBefore(employeeID) {
		return skipped(domain.SkipDuplicateInBatch), nil
	}

	mentor, err := p.resolver.Mentor(ctx, f.Value("Mentor").String())
	if err != nil {
		return Outcome{}, err
	}

	var school *domain.School
	if name := f.Value("Site Placement").String(); name != "" {
		school, err = p.resolver.School(ctx, SchoolRef{
			ExternalID: f.Value("Schools").String(),
			Name:       name,
			SiteType:   f.Value("Site Type").String(),
		})
		if err != nil {
			return Outcome{}, err
		}
	}

	incoming := p.extract(rec.ID, employeeID, f)
	if school != nil {
		incoming.SchoolID = &school.ID
	}
	if mentor != nil {
		incoming.MentorID = &mentor.ID
	}

	existing, err := p.youth.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return Outcome{}, err
	}
	if existing != nil {
		if !p.updateExisting {
			return skipped(domain.SkipAlreadyExists), nil
		}
		incoming.ID = existing.ID
		if err := p.youth.Update(ctx, incoming); err != nil {
			return Outcome{}, err
		}
		return Outcome{Action: ActionUpdated}, nil
	}

	byExternal, err := p.youth.GetByExternalID(ctx, rec.ID)
	if err != nil {
		return Outcome{}, err
	}
	if byExternal != nil {
		incoming.ID = byExternal.ID
		if err := p.youth.Update(ctx, incoming); err != nil {
			return Outcome{}, err
		}
		return Outcome{Action: ActionUpdated}, nil
	}

	if _, err := p.youth.Create(ctx, incoming); err != nil {
		return Outcome{}, err
	}
	return Outcome{Action: ActionCreated}, nil
}

func (p *youthProcessor) extract(externalID string, employeeID int64, f normalize.Fields) *domain.Youth {
	first := strings.TrimSpace(f.Value("First Names").String())
	last := strings.TrimSpace(f.Value("Last Name").String())
	full := strings.TrimSpace(f.Value("Full Name").String())
	if full == "" {
		full = strings.TrimSpace(first + " " + last)
	}

	status := f.Value("Employment Status").String()
	if status == "" {
		status = "Active"
	}

	y := &domain.Youth{
		ExternalID:       &externalID,
		EmployeeID:       employeeID,
		FirstNames:       first,
		LastName:         last,
		FullName:         full,
		EmploymentStatus: status,
		JobTitle:         f.Value("Job Title").StringPtr(),
		Email:            f.Value("Email").StringPtr(),
		DOB:              normalize.ParseDate(f.Value("DOB").String()),
		StartDate:        normalize.ParseDate(f.Value("Start Date").String()),
		EndDate:          normalize.ParseDate(f.Value("End Date").String()),
	}

	if gender := f.Value("Gender").String(); gender != "" {
		cleaned := normalize.CleanText(gender)
		y.Gender = &cleaned
	}
	if phone := f.Value("Cell Phone Number").String(); phone != "" {
		y.CellPhone = normalize.CleanPhone(phone)
	}

	return y
}

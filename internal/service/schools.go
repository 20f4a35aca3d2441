package service

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"schoolsync/internal/domain"
	"schoolsync/internal/normalize"
	"schoolsync/internal/source/airtable"
)

// schoolTypeMapping translates the remote multi-select Type field (first
// value wins) into the local category choices.
var schoolTypeMapping = map[string]string{
	"ECD":         "ECDC",
	"Primary":     "Primary School",
	"High School": "Secondary School",
}

type schoolsProcessor struct {
	schools      SchoolStore
	linkExisting bool
	logger       *slog.Logger
}

// NewSchoolsProcessor reconciles the schools dataset. With linkExisting,
// a record whose external id is unknown may claim a same-named local row
// that has no external id yet instead of creating a duplicate; without it,
// existing rows are never silently rewritten and a new row is created.
func NewSchoolsProcessor(schools SchoolStore, linkExisting bool, logger *slog.Logger) Processor {
	return &schoolsProcessor{
		schools:      schools,
		linkExisting: linkExisting,
		logger:       logger.With("dataset", domain.SyncTypeSchools),
	}
}

func (p *schoolsProcessor) SyncType() string { return domain.SyncTypeSchools }

func (p *schoolsProcessor) ExistsLocally(ctx context.Context, externalID string) (bool, error) {
	school, err := p.schools.GetByExternalID(ctx, externalID)
	return school != nil, err
}

func (p *schoolsProcessor) Process(ctx context.Context, rec airtable.Record) (Outcome, error) {
	f := rec.Fields

	name := strings.TrimSpace(f.Value("School").String())
	if name == "" {
		return skipped(domain.SkipMissingNaturalKey), nil
	}

	incoming := p.extract(rec.ID, name, f)

	existing, err := p.schools.GetByExternalID(ctx, rec.ID)
	if err != nil {
		return Outcome{}, err
	}

	linked := false
	if existing == nil && p.linkExisting {
		existing, err = p.schools.GetUnlinkedByName(ctx, name)
		if err != nil {
			return Outcome{}, err
		}
		if existing != nil {
			if err := p.schools.LinkExternalID(ctx, existing.ID, rec.ID); err != nil {
				return Outcome{}, err
			}
			existing.ExternalID = &rec.ID
			linked = true
			p.logger.Info("linked existing school", "name", name, "id", existing.ID)
		}
	}

	if existing == nil {
		if _, err := p.schools.Create(ctx, incoming); err != nil {
			return Outcome{}, err
		}
		return Outcome{Action: ActionCreated}, nil
	}

	if !applySchoolFields(existing, incoming) {
		if linked {
			return Outcome{Action: ActionUpdated}, nil
		}
		return skipped(domain.SkipUnchanged), nil
	}
	if err := p.schools.Update(ctx, existing); err != nil {
		return Outcome{}, err
	}
	return Outcome{Action: ActionUpdated}, nil
}

func (p *schoolsProcessor) extract(externalID, name string, f normalize.Fields) *domain.School {
	school := &domain.School{
		ExternalID: &externalID,
		Name:       name,
		IsActive:   true,
	}

	if types := f.Value("Type").Strings(); len(types) > 0 {
		category, ok := schoolTypeMapping[types[0]]
		if !ok {
			category = "Other"
		}
		school.Category = &category
	}

	if programmes := f.Value("Programmes").Strings(); len(programmes) > 0 {
		joined := strings.Join(programmes, ", ")
		school.SiteType = &joined
	}

	school.Principal = f.Value("Principal").StringPtr()
	school.ContactPerson = f.Value("Main Contact").StringPtr()
	if phone := f.Value("Main Contact Phone Number").String(); phone != "" {
		school.ContactPhone = normalize.CleanPhone(phone)
	}

	address := f.Value("Address").String()
	if suburb := f.Value("Suburb").String(); suburb != "" {
		if address != "" {
			address = address + ", " + suburb
		} else {
			address = suburb
		}
	}
	if address != "" {
		school.Address = &address
	}
	school.City = f.Value("City").StringPtr()

	// The remote columns are misnamed: East holds latitude, South longitude.
	if lat, ok := f.Value("Coord East").Float(); ok {
		school.Latitude = &lat
	}
	if lon, ok := f.Value("Coord South").Float(); ok {
		school.Longitude = &lon
	}

	if v := f.Value("Actively Working In"); !v.IsNull() {
		working := "No"
		if v.Bool() {
			working = "Yes"
		}
		school.ActivelyWorkingIn = &working
	}

	return school
}

// applySchoolFields overwrites existing with the non-empty incoming fields
// and reports whether anything changed. Empty remote values never blank
// locally held data.
func applySchoolFields(existing, incoming *domain.School) bool {
	changed := false

	if incoming.Name != "" && incoming.Name != existing.Name {
		existing.Name = incoming.Name
		changed = true
	}
	if incoming.IsActive != existing.IsActive {
		existing.IsActive = incoming.IsActive
		changed = true
	}

	strFields := []struct{ dst, src **string }{
		{&existing.Category, &incoming.Category},
		{&existing.SiteType, &incoming.SiteType},
		{&existing.Address, &incoming.Address},
		{&existing.City, &incoming.City},
		{&existing.ContactPerson, &incoming.ContactPerson},
		{&existing.ContactPhone, &incoming.ContactPhone},
		{&existing.ContactEmail, &incoming.ContactEmail},
		{&existing.Principal, &incoming.Principal},
		{&existing.ActivelyWorkingIn, &incoming.ActivelyWorkingIn},
	}
	for _, fld := range strFields {
		if *fld.src != nil && (*fld.dst == nil || **fld.dst != **fld.src) {
			*fld.dst = *fld.src
			changed = true
		}
	}

	coordFields := []struct{ dst, src **float64 }{
		{&existing.Latitude, &incoming.Latitude},
		{&existing.Longitude, &incoming.Longitude},
	}
	for _, fld := range coordFields {
		if *fld.src != nil && (*fld.dst == nil || math.Abs(**fld.dst-**fld.src) > 1e-7) {
			*fld.dst = *fld.src
			changed = true
		}
	}

	return changed
}

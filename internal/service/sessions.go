package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"schoolsync/internal/domain"
	"schoolsync/internal/normalize"
	"schoolsync/internal/source/airtable"
)

// SessionFieldMap names the remote columns of one sessions-shaped dataset.
// The literacy and numeracy tables share the session semantics but were
// built independently in the remote store, so their column names differ.
type SessionFieldMap struct {
	SessionNumber string

	SchoolID           string
	SchoolName         string
	SchoolNameFallback string
	SiteType           string

	YouthID    string
	YouthName  string
	EmployeeID string

	ChildID     string
	ChildName   string
	Mcode       string
	Grade       string
	OnProgramme string

	Mentor string

	TotalWeekly      string
	SubmittedForWeek string
	Week             string
	Month            string
	MonthYear        string
	MetMinimum       string
	CaptureDate      string
	Created          string
}

// SessionFields maps the weekly literacy sessions table, used by both the
// sessions and literacy_sessions datasets.
func SessionFields() SessionFieldMap {
	return SessionFieldMap{
		SessionNumber:      "Sessions ID",
		SchoolID:           "Schools",
		SchoolName:         "Schools (from Schools)",
		SchoolNameFallback: "School",
		SiteType:           "Site Type",
		YouthID:            "LC Full Name",
		YouthName:          "Full Name (from LC Full Name)",
		EmployeeID:         "Employee ID",
		ChildID:            "Child Full Name",
		ChildName:          "Child Full Name (from Child Full Name)",
		Mcode:              "Mcode",
		Grade:              "Grade",
		OnProgramme:        "On the Programme",
		Mentor:             "Mentor",
		TotalWeekly:        "Total Weekly Sessions Received",
		SubmittedForWeek:   "Submitted for This Week",
		Week:               "Week",
		Month:              "Month",
		MonthYear:          "Month and Year",
		MetMinimum:         "Sessions Met Minimum",
		CaptureDate:        "Sessions Capture Date",
		Created:            "Created",
	}
}

// NumeracySessionFields maps the daily numeracy sessions table. Fields the
// table lacks are left unnamed and normalize to their zero values. The
// child reference collapses to the first learner in the group.
func NumeracySessionFields() SessionFieldMap {
	return SessionFieldMap{
		SessionNumber: "Session ID",
		SchoolID:      "Numeracy Sites",
		SchoolName:    "Site Name (from Numeracy Sites)",
		SiteType:      "Site Type",
		YouthID:       "NC Full Name",
		YouthName:     "Name (from NC Full Name)",
		EmployeeID:    "Employee ID",
		ChildID:       "Children in Session",
		ChildName:     "Learner Full Name (from Children in Session)",
		Mentor:        "Mentor",
		Week:          "Week",
		Month:         "Month",
		MonthYear:     "Month and Year",
		CaptureDate:   "Sessions Capture Date",
		Created:       "Created",
	}
}

type sessionsProcessor struct {
	name     string
	fields   SessionFieldMap
	sessions SessionStore
	resolver *Resolver
	guard    *batchGuard
	logger   *slog.Logger
}

// NewSessionsProcessor builds the processor for a sessions-shaped dataset.
// syncType discriminates the audit rows; the field map selects the remote
// column names.
func NewSessionsProcessor(
	syncType string,
	fields SessionFieldMap,
	sessions SessionStore,
	resolver *Resolver,
	logger *slog.Logger,
) Processor {
	return &sessionsProcessor{
		name:     syncType,
		fields:   fields,
		sessions: sessions,
		resolver: resolver,
		guard:    newBatchGuard(),
		logger:   logger.With("dataset", syncType),
	}
}

func (p *sessionsProcessor) SyncType() string { return p.name }

func (p *sessionsProcessor) ExistsLocally(ctx context.Context, externalID string) (bool, error) {
	return p.sessions.ExistsByExternalID(ctx, externalID)
}

func (p *sessionsProcessor) Process(ctx context.Context, rec airtable.Record) (Outcome, error) {
	f := rec.Fields

	sessionNumber, ok := f.Value(p.fields.SessionNumber).Int()
	if !ok || sessionNumber == 0 {
		return skipped(domain.SkipMissingNaturalKey), nil
	}
	if p.guard.seenBefore(sessionNumber) {
		return skipped(domain.SkipDuplicateInBatch), nil
	}

	schoolName := f.Value(p.fields.SchoolName).String()
	if schoolName == "" && p.fields.SchoolNameFallback != "" {
		schoolName = f.Value(p.fields.SchoolNameFallback).String()
	}
	schoolRef := SchoolRef{
		ExternalID: f.Value(p.fields.SchoolID).String(),
		Name:       schoolName,
		SiteType:   f.Value(p.fields.SiteType).String(),
	}
	if schoolRef.ExternalID == "" && schoolRef.Name == "" {
		return skipped(domain.SkipMissingSchool), nil
	}
	school, err := p.resolver.School(ctx, schoolRef)
	if err != nil {
		return Outcome{}, err
	}
	if school == nil {
		return skipped(domain.SkipMissingSchool), nil
	}

	employeeID, _ := f.Value(p.fields.EmployeeID).Int()
	youthRef := YouthRef{
		ExternalID: f.Value(p.fields.YouthID).String(),
		FullName:   f.Value(p.fields.YouthName).String(),
		EmployeeID: employeeID,
		SchoolID:   &school.ID,
	}
	if youthRef.ExternalID == "" && youthRef.FullName == "" {
		return skipped(domain.SkipMissingYouth), nil
	}
	youth, err := p.resolver.Youth(ctx, youthRef)
	if err != nil {
		return Outcome{}, err
	}
	if youth == nil {
		return skipped(domain.SkipMissingYouth), nil
	}

	childRef := ChildRef{
		ExternalID:  f.Value(p.fields.ChildID).String(),
		FullName:    f.Value(p.fields.ChildName).String(),
		Mcode:       f.Value(p.fields.Mcode).String(),
		Grade:       f.Value(p.fields.Grade).String(),
		OnProgramme: slices.Contains(f.Value(p.fields.OnProgramme).Strings(), "Yes"),
		SchoolID:    school.ID,
	}
	if childRef.ExternalID == "" && childRef.FullName == "" {
		return skipped(domain.SkipMissingChild), nil
	}
	child, err := p.resolver.Child(ctx, childRef)
	if err != nil {
		return Outcome{}, err
	}
	if child == nil {
		return skipped(domain.SkipMissingChild), nil
	}

	mentor, err := p.resolver.Mentor(ctx, f.Value(p.fields.Mentor).String())
	if err != nil {
		return Outcome{}, err
	}

	now := time.Now().UTC()
	captureDate := now
	if d := normalize.ParseDate(f.Value(p.fields.CaptureDate).String()); d != nil {
		captureDate = *d
	}
	remoteCreated := now
	if t := normalize.ParseTime(f.Value(p.fields.Created).String()); t != nil {
		remoteCreated = *t
	}
	totalWeekly, _ := f.Value(p.fields.TotalWeekly).Int()
	submitted, _ := f.Value(p.fields.SubmittedForWeek).Int()

	sess := &domain.Session{
		ExternalID:          rec.ID,
		SessionNumber:       sessionNumber,
		YouthID:             youth.ID,
		ChildID:             child.ID,
		SchoolID:            school.ID,
		TotalWeeklySessions: int(totalWeekly),
		SubmittedForWeek:    int(submitted),
		Week:                f.Value(p.fields.Week).String(),
		Month:               f.Value(p.fields.Month).String(),
		MonthYear:           f.Value(p.fields.MonthYear).String(),
		MetMinimum:          f.Value(p.fields.MetMinimum).String(),
		CaptureDate:         captureDate,
		RemoteCreatedAt:     remoteCreated,
	}
	if mentor != nil {
		sess.MentorID = &mentor.ID
	}

	created, err := upsertSession(ctx, p.sessions, sess)
	if err != nil {
		return Outcome{}, err
	}
	if created {
		return Outcome{Action: ActionCreated}, nil
	}
	return Outcome{Action: ActionUpdated}, nil
}

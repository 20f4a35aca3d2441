package domain

import "time"

// School is a site where youth work and children are taught. ExternalID is
// the Airtable record id; it is unique among non-nil values but many rows
// predate the Airtable integration and carry none.
type School struct {
	ID                int64      `db:"id"`
	ExternalID        *string    `db:"external_id"`
	Name              string     `db:"name"`
	Category          *string    `db:"category"`
	SiteType          *string    `db:"site_type"`
	Address           *string    `db:"address"`
	City              *string    `db:"city"`
	Latitude          *float64   `db:"latitude"`
	Longitude         *float64   `db:"longitude"`
	ContactPerson     *string    `db:"contact_person"`
	ContactPhone      *string    `db:"contact_phone"`
	ContactEmail      *string    `db:"contact_email"`
	Principal         *string    `db:"principal"`
	ActivelyWorkingIn *string    `db:"actively_working_in"`
	IsActive          bool       `db:"is_active"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// Mentor manages youth. AccountID optionally links a login account.
type Mentor struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	AccountID *int64    `db:"account_id"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Youth is a literacy/numeracy coach. EmployeeID is the natural key assigned
// by HR independently of Airtable.
type Youth struct {
	ID               int64      `db:"id"`
	ExternalID       *string    `db:"external_id"`
	EmployeeID       int64      `db:"employee_id"`
	FirstNames       string     `db:"first_names"`
	LastName         string     `db:"last_name"`
	FullName         string     `db:"full_name"`
	Gender           *string    `db:"gender"`
	DOB              *time.Time `db:"dob"`
	JobTitle         *string    `db:"job_title"`
	EmploymentStatus string     `db:"employment_status"`
	StartDate        *time.Time `db:"start_date"`
	EndDate          *time.Time `db:"end_date"`
	CellPhone        *string    `db:"cell_phone"`
	Email            *string    `db:"email"`
	SchoolID         *int64     `db:"school_id"`
	MentorID         *int64     `db:"mentor_id"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// Child receives teaching sessions. Mcode is the natural key.
type Child struct {
	ID          int64     `db:"id"`
	ExternalID  *string   `db:"external_id"`
	FullName    string    `db:"full_name"`
	Mcode       *string   `db:"mcode"`
	Grade       *string   `db:"grade"`
	OnProgramme bool      `db:"on_programme"`
	SchoolID    int64     `db:"school_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Session is the primary synchronized fact: one weekly teaching record
// between a youth and a child. SessionNumber is the natural key,
// RemoteCreatedAt is the Airtable-side creation timestamp.
type Session struct {
	ID                  int64     `db:"id"`
	ExternalID          string    `db:"external_id"`
	SessionNumber       int64     `db:"session_number"`
	YouthID             int64     `db:"youth_id"`
	ChildID             int64     `db:"child_id"`
	SchoolID            int64     `db:"school_id"`
	MentorID            *int64    `db:"mentor_id"`
	TotalWeeklySessions int       `db:"total_weekly_sessions"`
	SubmittedForWeek    int       `db:"submitted_for_week"`
	Week                string    `db:"week"`
	Month               string    `db:"month"`
	MonthYear           string    `db:"month_year"`
	MetMinimum          string    `db:"met_minimum"`
	CaptureDate         time.Time `db:"capture_date"`
	RemoteCreatedAt     time.Time `db:"remote_created_at"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

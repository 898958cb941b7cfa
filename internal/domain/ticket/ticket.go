package ticket

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("ticket not found")
	ErrMissingFields = errors.New("subject/title and description are required")
)

// Defaults applied to fields omitted on creation.
const (
	DefaultOrganizationID        = "ORG-001"
	DefaultTimeZone              = "UTC"
	DefaultNumberOfAffectedUsers = "1"
	DefaultProduct               = "Katalon Studio"
	DefaultTypeOfTesting         = "General Testing"
	DefaultEnvironment           = "Development"
	DefaultKatalonVersion        = "9.0.0"
	DefaultOtherVersion          = "N/A"
)

// Ticket is a support ticket. Every field except ID and CreatedAt can be
// changed after creation.
type Ticket struct {
	ID                    string    `json:"id"`
	Subject               string    `json:"subject"`
	Description           string    `json:"description"`
	OrganizationID        string    `json:"organizationId"`
	TimeZone              string    `json:"timeZone"`
	NumberOfAffectedUsers string    `json:"numberOfAffectedUsers"`
	Product               string    `json:"product"`
	TypeOfTesting         string    `json:"typeOfTesting"`
	Environment           string    `json:"environment"`
	KatalonVersion        string    `json:"katalonVersion"`
	OtherVersion          string    `json:"otherVersion"`
	ExecutionLog          string    `json:"executionLog"`
	ErrorLog              string    `json:"errorLog"`
	AffectedWork          string    `json:"affectedWork"`
	AddOtherUser          string    `json:"addOtherUser"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Draft carries the caller-supplied fields of a new ticket. Title is accepted
// as an alias for Subject.
type Draft struct {
	Subject               string
	Title                 string
	Description           string
	OrganizationID        string
	TimeZone              string
	NumberOfAffectedUsers string
	Product               string
	TypeOfTesting         string
	Environment           string
	KatalonVersion        string
	OtherVersion          string
	ExecutionLog          string
	ErrorLog              string
	AffectedWork          string
	AddOtherUser          string
}

// NewTicket validates d and fills omitted fields from the defaults. The id
// is assigned by the repository on insert.
func NewTicket(d Draft, now time.Time) (*Ticket, error) {
	subject := d.Subject
	if subject == "" {
		subject = d.Title
	}
	if subject == "" || d.Description == "" {
		return nil, ErrMissingFields
	}

	return &Ticket{
		Subject:               subject,
		Description:           d.Description,
		OrganizationID:        orDefault(d.OrganizationID, DefaultOrganizationID),
		TimeZone:              orDefault(d.TimeZone, DefaultTimeZone),
		NumberOfAffectedUsers: orDefault(d.NumberOfAffectedUsers, DefaultNumberOfAffectedUsers),
		Product:               orDefault(d.Product, DefaultProduct),
		TypeOfTesting:         orDefault(d.TypeOfTesting, DefaultTypeOfTesting),
		Environment:           orDefault(d.Environment, DefaultEnvironment),
		KatalonVersion:        orDefault(d.KatalonVersion, DefaultKatalonVersion),
		OtherVersion:          orDefault(d.OtherVersion, DefaultOtherVersion),
		ExecutionLog:          d.ExecutionLog,
		ErrorLog:              d.ErrorLog,
		AffectedWork:          d.AffectedWork,
		AddOtherUser:          d.AddOtherUser,
		CreatedAt:             now.UTC().Truncate(time.Second),
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Patch is a shallow update. Nil fields are left untouched. Title is used for
// Subject when Subject itself is absent.
type Patch struct {
	Subject               *string
	Title                 *string
	Description           *string
	OrganizationID        *string
	TimeZone              *string
	NumberOfAffectedUsers *string
	Product               *string
	TypeOfTesting         *string
	Environment           *string
	KatalonVersion        *string
	OtherVersion          *string
	ExecutionLog          *string
	ErrorLog              *string
	AffectedWork          *string
	AddOtherUser          *string
}

// Apply merges p into t. ID and CreatedAt never change.
func (t *Ticket) Apply(p Patch) {
	subject := p.Subject
	if subject == nil {
		subject = p.Title
	}
	set(&t.Subject, subject)
	set(&t.Description, p.Description)
	set(&t.OrganizationID, p.OrganizationID)
	set(&t.TimeZone, p.TimeZone)
	set(&t.NumberOfAffectedUsers, p.NumberOfAffectedUsers)
	set(&t.Product, p.Product)
	set(&t.TypeOfTesting, p.TypeOfTesting)
	set(&t.Environment, p.Environment)
	set(&t.KatalonVersion, p.KatalonVersion)
	set(&t.OtherVersion, p.OtherVersion)
	set(&t.ExecutionLog, p.ExecutionLog)
	set(&t.ErrorLog, p.ErrorLog)
	set(&t.AffectedWork, p.AffectedWork)
	set(&t.AddOtherUser, p.AddOtherUser)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Clone returns a copy that can be handed out without sharing storage.
func (t *Ticket) Clone() *Ticket {
	c := *t
	return &c
}

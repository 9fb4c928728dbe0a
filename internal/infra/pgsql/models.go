package pgsql

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Reservations struct {
	ID                 int64
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	ProductCode        string
	ProductDescription string
	Quantity           int32
	Total              string
	OriginBranch       string
	DestinationBranch  string
	DestinationContact string
	CreatedBy          string
	ModifiedBy         string
	Comment            string
	Status             string
	Deleted            bool
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
	IntakeAt           pgtype.Timestamptz
	ClosedAt           pgtype.Timestamptz
	ReceivedBy         string
	ClosedBy           string
	Version            int32
}

type ArchivedDeletions struct {
	Reservations
	ArchivedAt pgtype.Timestamptz
	ArchivedBy string
}

type Products struct {
	Code        string
	Description string
	UnitPrice   string
	UpdatedAt   pgtype.Timestamptz
}

type Users struct {
	ID            uuid.UUID
	Username      string
	DisplayName   string
	PasswordHash  string
	Role          string
	Branch        string
	BranchAddress string
	BranchHours   string
	BranchPhone   string
	IsActive      bool
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type NotificationJobs struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

package shared

import (
	"context"
	"time"

	"branch-reservations/internal/domain/product"
	"branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Archive() ArchiveRepository
	Products() ProductRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads loads write-side state. Reservations come back as domain entities ready for mutation.
type CommandReads interface {
	ReservationByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	// ReservationForUpdate locks the row for the rest of the transaction.
	ReservationForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	ProductByCode(ctx context.Context, code string) (*product.Product, error)
	CredentialsByUsername(ctx context.Context, username string) (*Credentials, error)
}

type Credentials struct {
	UserID       uuid.UUID
	Username     string
	DisplayName  string
	PasswordHash string
	Role         string
	Branch       string
	IsActive     bool
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	// Save writes the mutable columns when the stored version still matches; it fails with a conflict otherwise.
	Save(ctx context.Context, res *reservation.Reservation) error
}

type ArchiveRepository interface {
	// Move copies the live row into the cold store and deletes it, returning the archived copy.
	Move(ctx context.Context, id int64, archivedBy string, at time.Time) (*ArchivedSnapshot, error)
}

type ArchivedSnapshot struct {
	Reservation reservation.Snapshot
	ArchivedAt  time.Time
	ArchivedBy  string
}

type ProductRepository interface {
	UpdatePrice(ctx context.Context, code string, price decimal.Decimal, at time.Time) (bool, error)
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int32
	Status    string
	LastError string
}

const (
	JobStatusQueued  = "queued"
	JobStatusSending = "sending"
	JobStatusSent    = "sent"
	JobStatusFailed  = "failed"
	JobStatusDead    = "dead"
)

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
	// ClaimDue moves up to limit due jobs to sending until leaseUntil, skipping rows
	// held by other workers. Sending jobs whose lease expired are due again.
	ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int32, nextRun time.Time, lastError string) error
	MarkDead(ctx context.Context, id uuid.UUID, attempts int32, lastError string) error
}

type UserRepository interface {
	Upsert(ctx context.Context, u *user.User) (uuid.UUID, error)
}

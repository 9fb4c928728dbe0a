//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"branch-reservations/cmd/bootstrap"
	"branch-reservations/cmd/bootstrap/components"
	"branch-reservations/internal/infra/coldstore"
	"branch-reservations/internal/infra/db"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/tests/common/dbtest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite is embedded by every e2e suite. Each suite gets its own database
// and bucket on the shared containers.
type SharedSuite struct {
	suite.Suite
	Router    *gin.Engine
	DB        *pgxpool.Pool
	Config    config.Config
	ColdStore *s3.Client
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pgAddr, s3Addr := startContainers(t)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, pgAddr, "testdb_"+suffix)
	cfg.Archive = config.ArchiveConfig{
		Bucket:    "archive-" + suffix[:16],
		Prefix:    "e2e",
		Region:    "us-east-1",
		Endpoint:  s3Addr.URL("http"),
		AccessKey: minioUser,
		SecretKey: minioPassword,
	}

	require.NoError(t, db.Migrate(cfg.DB), "migration failed")
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)
	require.NoError(t, dbtest.SeedReferenceData(pool), "failed to seed reference data")

	s.ColdStore = createBucket(t, cfg.Archive)
	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}

// ArchivedObject fetches the JSON snapshot the archive export wrote for id.
func (s *SharedSuite) ArchivedObject(t *testing.T, id int64) []byte {
	t.Helper()

	key := coldstore.NewS3Exporter(s.ColdStore, s.Config.Archive.Bucket, s.Config.Archive.Prefix).Key(id)
	out, err := s.ColdStore.GetObject(t.Context(), &s3.GetObjectInput{
		Bucket: aws.String(s.Config.Archive.Bucket),
		Key:    aws.String(key),
	})
	require.NoError(t, err, "archived object %s missing", key)
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	require.NoError(t, err)
	return body
}

// createDatabase makes a fresh database on the shared server and drops it on cleanup.
func createDatabase(t *testing.T, addr endpoint, name string) config.DBConfig {
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, addr.Host, addr.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// CREATE DATABASE collides on the template lock when suites start together
	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     addr.Host,
		Port:     addr.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

func createBucket(t *testing.T, cfg config.ArchiveConfig) *s3.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := coldstore.NewS3Client(ctx, cfg)
	require.NoError(t, err)
	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(cfg.Bucket)})
	require.NoError(t, err, "failed to create bucket %s", cfg.Bucket)
	return client
}

// startApp wires the production modules around the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() config.NotifyConfig { return cfg.Notify },
			func() config.MailConfig { return cfg.Mail },
			func() config.ArchiveConfig { return cfg.Archive },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.IntegrationModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop app", "error", err.Error())
		}
	})
	return router
}

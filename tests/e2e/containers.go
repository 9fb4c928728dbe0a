//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"

	minioUser     = "archive"
	minioPassword = "archive-secret"
)

// endpoint is a container port as seen from the test process.
type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) URL(scheme string) string {
	return fmt.Sprintf("%s://%s:%s", scheme, e.Host, e.Port.Port())
}

var (
	containersOnce sync.Once
	postgresC      testcontainers.Container
	minioC         testcontainers.Container
)

// startContainers runs Postgres and MinIO once per test process; suites share them.
func startContainers(t *testing.T) (pg endpoint, s3 endpoint) {
	containersOnce.Do(func() {
		var wg sync.WaitGroup
		var pgErr, s3Err error
		wg.Add(2)
		go func() {
			defer wg.Done()
			postgresC, pgErr = runContainer(postgresRequest(), 180*time.Second)
		}()
		go func() {
			defer wg.Done()
			minioC, s3Err = runContainer(minioRequest(), 120*time.Second)
		}()
		wg.Wait()
		require.NoError(t, pgErr, "failed to start postgres container")
		require.NoError(t, s3Err, "failed to start minio container")
	})
	require.NotNil(t, postgresC, "postgres container unavailable")
	require.NotNil(t, minioC, "minio container unavailable")

	pg, err := mappedEndpoint(postgresC, "5432/tcp")
	require.NoError(t, err)
	s3, err = mappedEndpoint(minioC, "9000/tcp")
	require.NoError(t, err)
	return pg, s3
}

func runContainer(req testcontainers.ContainerRequest, timeout time.Duration) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// ryuk removes the containers when the test process exits
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("container started", "image", req.Image)
	return c, nil
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		// durability is irrelevant for throwaway databases
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "branch-reservations-e2e"},
	}
}

func minioRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     minioUser,
			"MINIO_ROOT_PASSWORD": minioPassword,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(60 * time.Second),
		Labels:     map[string]string{"purpose": "branch-reservations-e2e"},
	}
}

func mappedEndpoint(c testcontainers.Container, port nat.Port) (endpoint, error) {
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

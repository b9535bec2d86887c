// Package pgtest starts disposable Postgres containers for tests.
package pgtest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/orgvault/orgvault/internal/pgutil"
)

// Setup starts a Postgres container and migrates it.
// The returned connection string points at the container's mapped port.
func Setup(ctx context.Context) (connectionString string, teardown func() error, err error) {
	teardownFuncs := make([]func() error, 0)
	maybeTeardown := func() error {
		var merr error
		for len(teardownFuncs) > 0 {
			var teardownFunc func() error
			teardownFuncs, teardownFunc = teardownFuncs[:len(teardownFuncs)-1], teardownFuncs[len(teardownFuncs)-1]

			if terr := teardownFunc(); terr != nil {
				merr = errors.Join(merr, terr)
			}
		}
		return merr
	}
	defer func() {
		if maybeTeardown != nil {
			_ = maybeTeardown()
		}
	}()

	containerReq := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16",
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "postgres",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(60 * time.Second),
		},
		Started: true,
	}
	container, err := testcontainers.GenericContainer(ctx, containerReq)
	teardownFuncs = append(teardownFuncs, func() error {
		return testcontainers.TerminateContainer(container)
	})
	if err != nil {
		return "", nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", nil, err
	}
	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return "", nil, err
	}

	connectionString = fmt.Sprintf(
		"postgres://postgres:postgres@%s/postgres?sslmode=disable",
		net.JoinHostPort(host, mappedPort.Port()),
	)

	if err = pgutil.Setup(connectionString); err != nil {
		return "", nil, err
	}

	teardown = maybeTeardown
	maybeTeardown = nil
	return connectionString, teardown, nil
}

// Package testhelper starts a throwaway PostgreSQL for repository tests.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/authority-backend/migrations"
)

var (
	once      sync.Once
	serverDSN string
	sharedDSN string
	initErr   error
)

// SetupTestDB starts a shared PostgreSQL container (once for the entire test run),
// applies the migrations, and returns a new pgxpool.Pool connected to it.
// The pool is closed via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ensureContainer(t)
	return connect(t, sharedDSN)
}

// EmptyDB creates a fresh, unmigrated database in the shared container and
// returns a *sql.DB for it. Used to exercise migrations step by step.
func EmptyDB(t *testing.T) *sql.DB {
	t.Helper()

	ensureContainer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := sql.Open("pgx", serverDSN)
	if err != nil {
		t.Fatalf("testhelper: sql.Open: %v", err)
	}
	defer admin.Close()

	name := "t_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+name); err != nil {
		t.Fatalf("testhelper: create database: %v", err)
	}

	db, err := sql.Open("pgx", dsnFor(serverDSN, name))
	if err != nil {
		t.Fatalf("testhelper: sql.Open %s: %v", name, err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func ensureContainer(t *testing.T) {
	t.Helper()

	once.Do(func() {
		serverDSN, sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}
}

func connect(t *testing.T, dsn string) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func startContainerAndMigrate() (server, shared string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", "", fmt.Errorf("get mapped port: %w", err)
	}

	server = fmt.Sprintf("postgres://testuser:testpass@%s:%s/postgres?sslmode=disable", host, port.Port())
	shared = dsnFor(server, "testdb")

	db, err := sql.Open("pgx", shared)
	if err != nil {
		return "", "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return "", "", fmt.Errorf("db ping: %w", err)
	}

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return "", "", err
	}
	if _, err := provider.Up(ctx); err != nil {
		return "", "", fmt.Errorf("goose up: %w", err)
	}

	return server, shared, nil
}

func dsnFor(server, dbName string) string {
	return strings.Replace(server, "/postgres?", "/"+dbName+"?", 1)
}

//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"seat-hold-ticketing/cmd/bootstrap"
	"seat-hold-ticketing/cmd/bootstrap/components"
	"seat-hold-ticketing/internal/infra/db"
	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "ticketing"
	pgPassword = "ticketing"
	pgPort     = nat.Port("5432/tcp")

	migrationsDir = "migrations"
)

var (
	pgOnce sync.Once
	pgAddr struct {
		host string
		port string
	}
	pgErr error
)

// postgres starts one container per test binary. Every suite gets its own
// database inside it.
func postgres(t *testing.T) (host, port string) {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				// durability is irrelevant here; concurrent hold tests need connections
				Cmd: []string{"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port.Port())
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "seat-hold-e2e"},
			},
			Started: true,
		})
		if err != nil {
			pgErr = fmt.Errorf("start postgres container: %w", err)
			return
		}

		mapped, err := c.MappedPort(ctx, pgPort)
		if err != nil {
			pgErr = err
			return
		}
		host, err := c.Host(ctx)
		if err != nil {
			pgErr = err
			return
		}
		pgAddr.host, pgAddr.port = host, mapped.Port()
		slog.Info("postgres container ready", "host", host, "port", mapped.Port())
	})
	require.NoError(t, pgErr)
	return pgAddr.host, pgAddr.port
}

func adminDSN(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port)
}

// newDatabase creates a fresh, migrated database and drops it when t ends.
func newDatabase(t *testing.T) config.DBConfig {
	t.Helper()
	host, port := postgres(t)
	name := "ticketing_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err)
	defer admin.Close()

	// CREATE DATABASE fails while another session holds the template lock
	for attempt := 0; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 4 {
			break
		}
		slog.Warn("create database retry", "attempt", attempt+1, "error", err)
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err)
		}
	})

	cfg := config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 32,
	}
	require.NoError(t, migrate(ctx, cfg))
	return cfg
}

func migrate(ctx context.Context, cfg config.DBConfig) error {
	dir, err := findMigrations()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// Glob returns lexical order, which is the numbered order
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// findMigrations walks up from the package directory to the module root.
func findMigrations() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, migrationsDir), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("module root not found")
		}
		dir = parent
	}
}

// newApp wires the production graph against pool. Background workers are
// left out so tests drive sweeping explicitly, and Redis is absent so rate
// limiting stays process-local.
func newApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		bootstrap.ConfigSections,
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			func() *redis.Client { return nil },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop app", "error", err)
		}
	})
	return router
}

// SharedSuite gives each e2e suite a router backed by its own database.
// Tables are truncated before every test and subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()

	s.Config = config.NewTestConfig()
	s.Config.DB = newDatabase(t)

	pool, cleanup, err := db.Connect(context.Background(), s.Config.DB)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	s.DB = pool

	s.Router = newApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB))
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB))
}

//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	authModel "github.com/arenahub/tournament/internal/auth/model"
	authRepository "github.com/arenahub/tournament/internal/auth/repository"
	appConfig "github.com/arenahub/tournament/internal/config"
	"github.com/arenahub/tournament/internal/database"
	"github.com/arenahub/tournament/internal/health"
	"github.com/arenahub/tournament/internal/middleware"
	"github.com/arenahub/tournament/internal/session"
	teamRouter "github.com/arenahub/tournament/internal/team/router"
)

// stubUploader stands in for the remote media store. The real uploader
// is a thin wrapper over the vendor SDK; the interesting orchestration
// paths are all on our side of the interface.
type stubUploader struct{}

func (stubUploader) Upload(ctx context.Context, localPath, folder string) (string, error) {
	return "https://media.example.com/" + folder + "/screenshot", nil
}

// E2ETestSuite runs the HTTP surface against real Postgres and Redis.
type E2ETestSuite struct {
	suite.Suite
	ctx            context.Context
	pgContainer    *postgres.PostgresContainer
	redisContainer testcontainers.Container
	db             *gorm.DB
	redisClient    *redis.Client
	sessions       session.Store
	users          authRepository.Repository
	server         *httptest.Server
	httpClient     *http.Client
	tempDir        string
}

// SetupSuite runs once before all tests.
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// The suite runs from tests/e2e, so point the migrator at the repo's
	// migrations directory before applying the real migration path.
	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../migrations"))
	require.NoError(s.T(), database.Migrate(db), "failed to apply migrations")

	redisContainer, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(s.T(), err, "failed to start Redis container")
	s.redisContainer = redisContainer

	redisHost, err := redisContainer.Host(s.ctx)
	require.NoError(s.T(), err, "failed to get Redis host")
	redisPort, err := redisContainer.MappedPort(s.ctx, "6379")
	require.NoError(s.T(), err, "failed to get Redis port")

	s.redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort.Port()),
	})
	require.NoError(s.T(), s.redisClient.Ping(s.ctx).Err(), "failed to ping Redis")

	s.sessions = session.NewRedisStore(s.redisClient)
	s.users = authRepository.New(db)

	s.tempDir, err = os.MkdirTemp("", "e2e-uploads")
	require.NoError(s.T(), err, "failed to create temp upload dir")

	logger := zap.NewNop().Sugar()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Principal(s.sessions, s.users))

	healthHandler := health.New(db, s.redisClient, logger)
	r.GET("/health", healthHandler.Check)

	teamRouter.RegisterRoutes(r, db, stubUploader{}, appConfig.UploadConfig{
		Folder:  "e2e_uploads",
		TempDir: s.tempDir,
	}, logger)

	s.server = httptest.NewServer(r)
	s.httpClient = &http.Client{Timeout: 30 * time.Second}
}

// TearDownSuite runs once after all tests.
func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
	if s.tempDir != "" {
		_ = os.RemoveAll(s.tempDir)
	}
	if s.redisContainer != nil {
		_ = s.redisContainer.Terminate(s.ctx)
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest runs before each test.
func (s *E2ETestSuite) SetupTest() {
	s.db.Exec("TRUNCATE TABLE teams CASCADE")
	s.db.Exec("TRUNCATE TABLE users CASCADE")
	s.redisClient.FlushAll(s.ctx)
}

// loginAs persists an identity and a live session for it, returning the
// session cookie a signed-in browser would carry.
func (s *E2ETestSuite) loginAs(email string) (*authModel.User, *http.Cookie) {
	user, err := s.users.Create(s.ctx, &authModel.User{
		GoogleID:    "google-" + email,
		Email:       email,
		DisplayName: "E2E User",
	})
	require.NoError(s.T(), err, "failed to create user")

	sessionID, err := session.GenerateID()
	require.NoError(s.T(), err, "failed to generate session id")

	err = s.sessions.Create(s.ctx, session.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(s.T(), err, "failed to persist session")

	return user, &http.Cookie{Name: session.CookieName, Value: sessionID}
}

// registerTeam submits the registration form, optionally signed in and
// optionally carrying a payment screenshot.
func (s *E2ETestSuite) registerTeam(cookie *http.Cookie, fields map[string]string, withFile bool) (*http.Response, []byte) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(s.T(), w.WriteField(key, value))
	}
	if withFile {
		part, err := w.CreateFormFile("transactionScreenshot", "payment.png")
		require.NoError(s.T(), err)
		_, err = part.Write([]byte("fake-png-bytes"))
		require.NoError(s.T(), err)
	}
	require.NoError(s.T(), w.Close())

	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/team/register", &body)
	require.NoError(s.T(), err, "failed to create request")
	req.Header.Set("Content-Type", w.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

func validForm() map[string]string {
	return map[string]string{
		"teamName":      "Night Owls",
		"leader":        "Jordan",
		"phone":         "+1-555-0100",
		"p1":            "Jordan",
		"p2":            "Casey",
		"p3":            "Riley",
		"p4":            "Sam",
		"transactionId": "TXN-e2e-1",
	}
}

package tests

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-app/app/api/handlers"
	notebus "github.com/ribgsilva/notes-app/business/v1/note"
	userbus "github.com/ribgsilva/notes-app/business/v1/user"
	notestore "github.com/ribgsilva/notes-app/persistence/v1/note"
	"github.com/ribgsilva/notes-app/persistence/v1/schema"
	userstore "github.com/ribgsilva/notes-app/persistence/v1/user"
	"github.com/ribgsilva/notes-app/platform/logger"
	"github.com/ribgsilva/notes-app/platform/token"

	_ "github.com/proullon/ramsql/driver"
)

const testSecret = "test-secret"

type testApp struct {
	app    http.Handler
	db     *sql.DB
	cache  *miniredis.Miniredis
	tokens *token.Manager
}

// newTestApp wires the whole api against an in-memory database and a fake
// redis, the same way main does against the real ones.
func newTestApp(t *testing.T, dbName string) *testApp {
	log, err := logger.New("Notes-API-Tests")
	if err != nil {
		t.Fatal(err)
	}

	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// ramsql
	var db *sql.DB
	if err := func() error {
		ramDb, err := sql.Open("ramsql", dbName)
		if err != nil {
			return fmt.Errorf("error to connect to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer dbCancel()
		if err := ramDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = ramDb
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	// redis
	rdb := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background(), db); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	t.Cleanup(func() {
		_ = schema.Drop(context.Background(), db)
	})

	// =======================================================================================================
	// Build cores

	opTimeout := 5 * time.Second
	cacheTimeout := 10 * time.Second
	cacheTTL := 24 * time.Hour

	tokens := token.New(testSecret, time.Hour)
	users := userbus.NewCore(log, userstore.NewStore(log, db, opTimeout), tokens)
	notes := notebus.NewCore(log, notestore.NewStore(log, db, rdb, opTimeout, cacheTimeout, cacheTTL))

	// =======================================================================================================
	// Setup router

	gin.SetMode(gin.TestMode)
	engine := gin.Default()

	handlers.MapDefaults(engine)
	handlers.MapApi(engine, handlers.Config{
		Users:  users,
		Notes:  notes,
		Tokens: tokens,
	})

	return &testApp{
		app:    engine,
		db:     db,
		cache:  s,
		tokens: tokens,
	}
}

// do runs one request against the app; body is marshaled as json, tok is
// attached as a bearer credential when non-empty.
func (ta *testApp) do(t *testing.T, method, path, tok string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		r.Header.Set("Authorization", "Bearer "+tok)
	}

	w := httptest.NewRecorder()
	ta.app.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("could not unmarshal the response: %v", err)
	}
}

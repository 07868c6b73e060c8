package horoscopeRepo

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

// fakeDB records the statements the repository issues
type fakeDB struct {
	namedQuery string
	namedArg   interface{}
	namedErr   error
	getErr     error
}

func (f *fakeDB) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return f.getErr
}

func (f *fakeDB) NamedExec(ctx context.Context, query string, arg interface{}) error {
	f.namedQuery = query
	f.namedArg = arg
	return f.namedErr
}

func testHoroscope() *domain.Horoscope {
	return &domain.Horoscope{
		ID:        uuid.New(),
		BirthDate: "1990-02-11",
		BirthTime: "04:30",
		Latitude:  28.6139,
		Longitude: 77.209,
		Timezone:  5.5,
		Language:  "en",
		Data:      []byte(`{}`),
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreateBindsAllColumns(t *testing.T) {
	db := &fakeDB{}
	repo := New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	record := testHoroscope()
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if db.namedArg != record {
		t.Error("Create should bind the horoscope record itself")
	}

	for _, placeholder := range []string{
		":id", ":birth_date", ":birth_time",
		":latitude", ":longitude", ":timezone",
		":language", ":data", ":created_at",
	} {
		if !strings.Contains(db.namedQuery, placeholder) {
			t.Errorf("insert query missing %s: %s", placeholder, db.namedQuery)
		}
	}
}

func TestCreateWrapsError(t *testing.T) {
	db := &fakeDB{namedErr: errors.New("connection refused")}
	repo := New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := repo.Create(context.Background(), testHoroscope()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db := &fakeDB{getErr: sql.ErrNoRows}
	repo := New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrHoroscopeNotFound) {
		t.Fatalf("expected ErrHoroscopeNotFound, got %v", err)
	}
}

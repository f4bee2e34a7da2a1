package repository

import (
	"fmt"

	"database/sql"

	"github.com/XSAM/otelsql"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB          *sql.DB
	Menu        MenuRepository
	Order       OrderRepository
	Reservation ReservationRepository
	Staff       StaffRepository
}

func New(cfg *config.Config) (*Repositories, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:          db,
		Menu:        NewMenuRepo(db),
		Order:       NewOrderRepo(db),
		Reservation: NewReservationRepo(db),
		Staff:       NewStaffRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

package testutils

import (
	"context"
	"log"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/containers"
	"github.com/duanerilli/NFL-Pool-Backend/db"
	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/itbasis/go-clock"
)

// TestUserNames are the pool members created by InsertTestUsers.
var TestUserNames = []string{"Alice", "Bob", "Carol"}

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// InsertTestUsers creates the standard pool members and returns them with
// their generated ids. The teams table is already seeded by the schema.
func InsertTestUsers(d db.DB) ([]model.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := make([]model.User, 0, len(TestUserNames))
	for _, name := range TestUserNames {
		u, err := d.InsertUser(ctx, name)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v7"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"clubhub-backend/internal/config"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/repository/postgres"
)

// Seeds the database with demo data: three fixed accounts (student, chief,
// admin), a batch of random users, clubs with memberships and a spread of
// activities and attendance records in every workflow state.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	userCount := flag.Int("users", 20, "Number of random users to create")
	clubCount := flag.Int("clubs", 10, "Number of random clubs to create")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Seeding database...", "host", cfg.Database.Host, "database", cfg.Database.Database)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	ctx := context.Background()

	if err := seed(ctx, store, *userCount, *clubCount); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	logger.Info("Seeding complete")
}

func seed(ctx context.Context, store repository.Store, userCount, clubCount int) error {
	users := store.Users()

	defaultRole, err := users.GetDefaultRole(ctx)
	if err != nil {
		return fmt.Errorf("load default role (is the schema applied?): %w", err)
	}
	adminRole, err := users.GetRoleByName(ctx, "Administrator")
	if err != nil {
		return fmt.Errorf("load administrator role: %w", err)
	}

	student, err := seedUser(ctx, store, "student@test.com", "student", "student", "Wang Tongxue", "Zhengzhou", defaultRole.ID)
	if err != nil {
		return err
	}
	chief, err := seedUser(ctx, store, "chief@test.com", "chief", "chief", "Li Tongxue", "Zhengzhou", defaultRole.ID)
	if err != nil {
		return err
	}
	if _, err := seedUser(ctx, store, "admin@test.com", "admin", "administrator", "Admin", "Zhengzhou", adminRole.ID); err != nil {
		return err
	}

	members := []*domain.User{student, chief}
	for i := 0; i < userCount; i++ {
		u, err := seedUser(ctx, store,
			gofakeit.Email(),
			gofakeit.Username(),
			"password",
			gofakeit.Name(),
			gofakeit.City(),
			defaultRole.ID)
		if err != nil {
			// Random emails and usernames occasionally collide; skip and move on.
			logger.Warn("Skipping user", "error", err)
			continue
		}
		members = append(members, u)
	}

	clubs := store.Clubs()

	basketball := &domain.Club{
		Name:        "Basketball Club",
		Description: "Pickup games every week",
		ChiefID:     chief.ID,
	}
	if err := clubs.Create(ctx, basketball); err != nil {
		return fmt.Errorf("create basketball club: %w", err)
	}
	if err := clubs.AddMember(ctx, &domain.Membership{ClubID: basketball.ID, UserID: chief.ID}); err != nil {
		return err
	}

	seeded := []*domain.Club{basketball}
	for i := 0; i < clubCount; i++ {
		owner := members[gofakeit.Number(0, len(members)-1)]
		c := &domain.Club{
			Name:        gofakeit.Company(),
			Description: gofakeit.Sentence(8),
			ChiefID:     owner.ID,
		}
		if err := clubs.Create(ctx, c); err != nil {
			logger.Warn("Skipping club", "error", err)
			continue
		}
		if err := clubs.AddMember(ctx, &domain.Membership{ClubID: c.ID, UserID: owner.ID}); err != nil {
			return err
		}
		seeded = append(seeded, c)
	}

	// Everyone except the chief has a pending request to join the basketball
	// club, so there is always a review queue to look at.
	joinApps := store.JoinApplications()
	for _, u := range members {
		if u.ID == chief.ID {
			continue
		}
		app := &domain.JoinApplication{
			UserID:      u.ID,
			ClubID:      basketball.ID,
			Description: gofakeit.Sentence(10),
			Status:      domain.ApplicationStatusReviewing,
		}
		if err := joinApps.Create(ctx, app); err != nil {
			return err
		}
	}

	// Scatter each user across up to three clubs.
	for _, u := range members {
		for i := 0; i < 3; i++ {
			c := seeded[gofakeit.Number(0, len(seeded)-1)]
			if err := clubs.AddMember(ctx, &domain.Membership{ClubID: c.ID, UserID: u.ID}); err != nil {
				return err
			}
		}
	}

	activities := store.Activities()
	statuses := []domain.ActivityStatus{
		domain.ActivityStatusReviewing,
		domain.ActivityStatusAccepted,
		domain.ActivityStatusRejected,
		domain.ActivityStatusRollcall,
		domain.ActivityStatusFinished,
	}
	var all []*domain.Activity
	for _, c := range seeded {
		for i := 0; i < 5; i++ {
			a := &domain.Activity{
				ClubID:      c.ID,
				Name:        gofakeit.HackerPhrase(),
				Description: gofakeit.Sentence(12),
				Status:      statuses[gofakeit.Number(0, len(statuses)-1)],
			}
			if err := activities.Create(ctx, a); err != nil {
				return err
			}
			all = append(all, a)
		}
	}

	attends := store.Attends()
	for _, u := range members {
		for i := 0; i < 3; i++ {
			a := all[gofakeit.Number(0, len(all)-1)]
			att := &domain.Attend{
				UserID:     u.ID,
				ActivityID: a.ID,
				Status:     domain.AttendStatusReviewing,
			}
			if err := attends.Create(ctx, att); err != nil {
				// Unique (user, activity) pairs only.
				logger.Warn("Skipping attend", "error", err)
			}
		}
	}

	logger.Info("Seeded data",
		"users", len(members),
		"clubs", len(seeded),
		"activities", len(all))
	return nil
}

func seedUser(ctx context.Context, store repository.Store, email, username, password, name, location string, roleID int32) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Location:     location,
		AboutMe:      gofakeit.Sentence(15),
		RoleID:       roleID,
	}
	if err := store.Users().Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

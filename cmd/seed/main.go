package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventuraa/internal/accounts"
	"eventuraa/internal/events"
	"eventuraa/internal/shared/config"
	"eventuraa/internal/shared/database"
	"eventuraa/internal/venues"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Eventuraa database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded successfully")

	fmt.Println("\nSeeding completed. Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"tickets",
		"ticket_purchases",
		"bookings",
		"ticket_types",
		"events",
		"rooms",
		"room_types",
		"venues",
		"accounts",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds accounts, venue inventory and event ticket inventory
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	accountIDs, err := s.SeedAccounts()
	if err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}

	if err := s.SeedVenues(accountIDs["host"]); err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedEvents(accountIDs["organizer"]); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedAccounts creates one account per role
func (s *Seeder) SeedAccounts() (map[string]uuid.UUID, error) {
	fmt.Println("  Seeding accounts...")

	accountIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hostBusiness := "Seaside Stays Ltd"
	organizerCompany := "Pulse Productions"

	accountsData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      accounts.Role
		company   *string
		business  *string
	}{
		{"admin", "Admin", "User", "admin@eventuraa.test", accounts.RoleAdmin, nil, nil},
		{"host", "Hana", "Hostwell", "host@eventuraa.test", accounts.RoleHost, nil, &hostBusiness},
		{"organizer", "Omar", "Organo", "organizer@eventuraa.test", accounts.RoleOrganizer, &organizerCompany, nil},
		{"user", "Uma", "Usmani", "user@eventuraa.test", accounts.RoleUser, nil, nil},
	}

	for _, data := range accountsData {
		account := accounts.Account{
			ID:               uuid.New(),
			FirstName:        data.firstName,
			LastName:         data.lastName,
			Email:            data.email,
			Password:         string(hashedPassword),
			Role:             data.role,
			OrganizerCompany: data.company,
			HostBusinessName: data.business,
			IsActive:         true,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&account).Error; err != nil {
			return nil, fmt.Errorf("failed to create account %s: %w", data.email, err)
		}

		accountIDs[data.key] = account.ID
		fmt.Printf("    Created account: %s (%s)\n", account.Email, account.Role)
	}

	return accountIDs, nil
}

// SeedVenues creates an approved venue with room types and rooms
func (s *Seeder) SeedVenues(hostID uuid.UUID) error {
	fmt.Println("  Seeding venues...")

	venue := venues.Venue{
		ID:             uuid.New(),
		Name:           "Harborview Hotel",
		Description:    "Waterfront hotel with event spaces",
		Location:       "12 Quay Street",
		OwnerID:        hostID,
		MinCapacity:    1,
		MaxCapacity:    400,
		ApprovalStatus: venues.ApprovalApproved,
		IsActive:       true,
	}
	if err := s.db.PostgreSQL.Create(&venue).Error; err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	fmt.Printf("    Created venue: %s\n", venue.Name)

	roomTypesData := []struct {
		name       string
		capacity   int
		totalRooms int
		price      int64
	}{
		{"Standard Double", 2, 10, 9900},
		{"Family Suite", 4, 4, 18900},
		{"Penthouse", 6, 1, 45000},
	}

	for _, data := range roomTypesData {
		roomType := venues.RoomType{
			ID:            uuid.New(),
			VenueID:       venue.ID,
			Name:          data.name,
			Capacity:      data.capacity,
			TotalRooms:    data.totalRooms,
			PricePerNight: data.price,
		}
		if err := s.db.PostgreSQL.Create(&roomType).Error; err != nil {
			return fmt.Errorf("failed to create room type %s: %w", data.name, err)
		}

		for i := 1; i <= data.totalRooms; i++ {
			room := venues.Room{
				ID:         uuid.New(),
				RoomTypeID: roomType.ID,
				RoomNumber: fmt.Sprintf("%s-%02d", roomType.Name[:1], i),
				Status:     venues.RoomAvailable,
			}
			if err := s.db.PostgreSQL.Create(&room).Error; err != nil {
				return fmt.Errorf("failed to create room: %w", err)
			}
		}
		fmt.Printf("    Created room type: %s (%d rooms)\n", data.name, data.totalRooms)
	}

	return nil
}

// SeedEvents creates an approved event with ticket inventory
func (s *Seeder) SeedEvents(organizerID uuid.UUID) error {
	fmt.Println("  Seeding events...")

	event := events.Event{
		ID:          uuid.New(),
		Title:       "Harbor Lights Festival",
		Description: "Two stages of live music on the waterfront",
		Location:    "Quayside Park",
		OrganizerID: organizerID,
		Date:        time.Now().AddDate(0, 2, 0),
		Status:      events.StatusApproved,
		IsActive:    true,
	}
	if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	fmt.Printf("    Created event: %s\n", event.Title)

	ticketTypesData := []struct {
		name     string
		price    int64
		quantity int
	}{
		{"General Admission", 4500, 500},
		{"VIP", 12000, 50},
		{"Backstage", 25000, 10},
	}

	for _, data := range ticketTypesData {
		ticketType := events.TicketType{
			ID:        uuid.New(),
			EventID:   event.ID,
			Name:      data.name,
			Price:     data.price,
			Quantity:  data.quantity,
			Available: data.quantity,
			Sold:      0,
		}
		if err := s.db.PostgreSQL.Create(&ticketType).Error; err != nil {
			return fmt.Errorf("failed to create ticket type %s: %w", data.name, err)
		}
		fmt.Printf("    Created ticket type: %s (%d tickets)\n", data.name, data.quantity)
	}

	return nil
}

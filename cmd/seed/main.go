// Наполняет базу стартовыми данными: справочник страховых и первый
// администратор панели. С флагом -demo дополнительно создаёт фейковые
// заявки на приём для ручного тестирования панели.
//
// Пароль администратора берётся из ADMIN_PASSWORD.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/CMG-AppointmentService/internal/config"
	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/appointment"
	providerRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/provider"
	userRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/user"
)

// Obras sociales, с которыми работает клиника
var defaultProviders = []string{
	"OSDE",
	"Swiss Medical",
	"Galeno",
	"PAMI",
	"Medicus",
	"IOMA",
	"Particular",
}

const (
	adminEmail = "admin@drgomez.com.ar"
	adminName  = "Dr. Marcos Gómez"
)

func main() {
	demo := flag.Bool("demo", false, "создать фейковые заявки на приём")
	flag.Parse()

	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	ctx := context.Background()

	seedProviders(ctx, providerRepo.NewRepository(db))
	seedAdmin(ctx, userRepo.NewRepository(db))

	if *demo {
		seedDemoAppointments(ctx, apptRepo.NewRepository(db))
	}

	fmt.Println("seed complete")
}

func seedProviders(ctx context.Context, repo *providerRepo.Repository) {
	for _, name := range defaultProviders {
		_, err := repo.Create(ctx, &domain.InsuranceProvider{Name: name})
		switch {
		case err == nil:
			fmt.Printf("provider created: %s\n", name)
		case err == providerRepo.ErrProviderExists:
			fmt.Printf("provider exists: %s\n", name)
		default:
			log.Fatalf("create provider %q: %v", name, err)
		}
	}
}

func seedAdmin(ctx context.Context, repo *userRepo.Repository) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	_, err = repo.Create(ctx, &domain.User{
		Email:        adminEmail,
		Name:         adminName,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	switch {
	case err == nil:
		fmt.Printf("admin created: %s\n", adminEmail)
	case err == userRepo.ErrEmailExists:
		fmt.Printf("admin exists: %s\n", adminEmail)
	default:
		log.Fatalf("create admin: %v", err)
	}
}

// seedDemoAppointments раскидывает фейковые заявки по ближайшим рабочим дням
func seedDemoAppointments(ctx context.Context, repo *apptRepo.Repository) {
	now := time.Now()
	created := 0

	for day := 0; day < domain.BookingHorizonDays && created < 10; day++ {
		date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		if !domain.IsDateBookable(date) {
			continue
		}

		for _, slot := range domain.AvailableSlots("") {
			if created >= 10 || gofakeit.Bool() {
				continue
			}

			appt := &domain.Appointment{
				FirstName:         gofakeit.FirstName(),
				LastName:          gofakeit.LastName(),
				Phone:             gofakeit.Phone(),
				Email:             gofakeit.Email(),
				InsuranceProvider: defaultProviders[gofakeit.Number(0, len(defaultProviders)-1)],
				Reason:            domain.Reasons[gofakeit.Number(0, len(domain.Reasons)-1)],
				AppointmentDate:   date,
				StartTime:         slot,
				Status:            domain.StatusPending,
				RequestedAt:       now,
			}

			if _, err := repo.Create(ctx, appt); err != nil {
				if err == apptRepo.ErrSlotTaken {
					continue
				}
				log.Fatalf("create demo appointment: %v", err)
			}
			created++
		}
	}

	fmt.Printf("demo appointments created: %d\n", created)
}

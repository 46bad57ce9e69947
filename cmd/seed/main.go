package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"vehiclerental/internal/database"
	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"
)

func main() {
	godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rental.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (child tables first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM vehicle_types")

	ctx := context.Background()
	typeRepo := repository.NewVehicleTypeRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)

	log.Println("Creating vehicle types...")
	types := []struct {
		name   string
		wheels int
		models []string
	}{
		{"Hatchback", 4, []string{"Maruti Swift", "Hyundai i20", "Tata Altroz"}},
		{"SUV", 4, []string{"Mahindra Scorpio", "Hyundai Creta", "Tata Harrier"}},
		{"Sedan", 4, []string{"Honda City", "Hyundai Verna", "Maruti Ciaz"}},
		{"Cruiser", 2, []string{"Royal Enfield Classic 350", "Bajaj Avenger", "Harley Davidson Street 750"}},
		{"Sports", 2, []string{"Yamaha R15", "KTM Duke 390", "Kawasaki Ninja 300"}},
	}

	typeCount, vehicleCount := 0, 0
	for _, t := range types {
		vt := domain.VehicleType{Name: t.name, Wheels: t.wheels}
		if err := typeRepo.Create(ctx, &vt); err != nil {
			log.Fatalf("Failed to create vehicle type %s: %v", t.name, err)
		}
		typeCount++

		for _, model := range t.models {
			v := domain.Vehicle{Model: model, VehicleTypeID: vt.ID}
			if err := vehicleRepo.Create(ctx, &v); err != nil {
				log.Fatalf("Failed to create vehicle %s: %v", model, err)
			}
			vehicleCount++
		}
	}

	log.Printf("Seed completed: %d vehicle types, %d vehicles", typeCount, vehicleCount)
}

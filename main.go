package main

import (
	"log"

	"railway/internal/config"
	"railway/internal/console"
	intdb "railway/internal/db"
	"railway/internal/repositories"
	"railway/internal/services"
)

func main() {
	env := config.LoadEnv()

	prompter := console.NewPrompter()
	if env.DBPass == "" {
		env.DBPass = prompter.Secret("Enter database password: ")
	}

	db, err := config.Connect(env)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	log.Println("Connected to the database successfully.")

	if err := intdb.EnsureSchema(db); err != nil {
		log.Printf("Error creating tables: %v", err)
	}
	if err := intdb.SeedTrains(db); err != nil {
		log.Printf("Error inserting sample trains: %v", err)
	}

	userRepo := repositories.UserRepo{DB: db}
	trainRepo := repositories.TrainRepo{DB: db}
	bookingRepo := repositories.BookingRepo{DB: db}

	bookingSvc := services.BookingService{DB: db, Trains: trainRepo, Bookings: bookingRepo}

	menu := console.Menu{
		Prompter: prompter,
		Auth:     services.AuthService{Users: userRepo},
		Catalog:  services.CatalogService{Trains: trainRepo},
		Bookings: bookingSvc,
		Payments: services.PaymentService{},
		Tickets:  services.TicketService{Bookings: bookingSvc},
	}
	menu.Run()

	config.Close(db)
	log.Println("Database connection closed.")
}

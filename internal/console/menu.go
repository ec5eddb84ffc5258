package console

import (
	"fmt"
	"os"

	"railway/internal/domain"
	"railway/internal/domain/models"
	"railway/internal/services"
	"railway/internal/utils"
)

// Session is the only state the menu loop carries between commands.
// UserID zero means nobody is logged in.
type Session struct {
	UserID   int64
	Username string
}

func (s Session) LoggedIn() bool { return s.UserID != 0 }

// Menu drives the interactive reservation console. Each numbered command maps
// to one service call; the session value is threaded through explicitly.
type Menu struct {
	Prompter *Prompter
	Auth     services.AuthService
	Catalog  services.CatalogService
	Bookings services.BookingService
	Payments services.PaymentService
	Tickets  services.TicketService
}

// Run loops until the operator picks Exit.
func (m *Menu) Run() {
	var session Session
	for {
		fmt.Println("\n=== Railway Reservation System ===")
		fmt.Println("1. User Login")
		fmt.Println("2. User Signup")
		fmt.Println("3. View Train Schedule")
		fmt.Println("4. Book a Ticket")
		fmt.Println("5. Book Multiple Tickets")
		fmt.Println("6. Logout")
		fmt.Println("7. Exit")
		fmt.Println("8. View Booked Tickets")
		fmt.Println("9. Cancel Ticket")
		fmt.Println("10. Download E-Ticket (PDF)")

		choice := m.Prompter.Line("Enter your choice: ")
		if m.Prompter.EOF() {
			// Input source is gone; treat it like the Exit choice.
			fmt.Println("Exiting the system. Goodbye!")
			return
		}

		switch choice {
		case "1":
			session = m.login()
		case "2":
			m.signup()
		case "3":
			m.viewSchedule()
		case "4":
			if m.requireLogin(session, "book tickets") {
				m.bookOne(session)
			}
		case "5":
			if m.requireLogin(session, "book tickets") {
				m.bookMultiple(session)
			}
		case "6":
			if !session.LoggedIn() {
				fmt.Println("You must log in to log out.")
				break
			}
			session = Session{}
			fmt.Println("You have been logged out.")
		case "7":
			fmt.Println("Exiting the system. Goodbye!")
			return
		case "8":
			if m.requireLogin(session, "view your booked tickets") {
				m.viewBookings(session)
			}
		case "9":
			if m.requireLogin(session, "cancel tickets") {
				m.cancelTicket(session)
			}
		case "10":
			if m.requireLogin(session, "download tickets") {
				m.exportTicket(session)
			}
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) requireLogin(session Session, verb string) bool {
	if session.LoggedIn() {
		return true
	}
	fmt.Printf("You must log in to %s.\n", verb)
	return false
}

func (m *Menu) login() Session {
	username := m.Prompter.Line("Enter username: ")
	password := m.Prompter.Secret("Enter password: ")

	user, err := m.Auth.Authenticate(username, password)
	if err != nil {
		m.report(err)
		return Session{}
	}
	if user == nil {
		fmt.Println("Invalid username or password.")
		return Session{}
	}
	fmt.Printf("Login successful! Welcome, %s.\n", user.Username)
	return Session{UserID: user.ID, Username: user.Username}
}

func (m *Menu) signup() {
	username := m.Prompter.Line("Enter username: ")
	password := m.Prompter.Secret("Enter password: ")
	email := m.Prompter.Line("Enter email: ")

	if err := m.Auth.Register(username, password, email); err != nil {
		if domain.IsConflict(err) {
			fmt.Println("Signup failed. Username may already exist.")
			return
		}
		m.report(err)
		return
	}
	fmt.Println("Signup successful! You can now log in.")
}

func (m *Menu) viewSchedule() {
	trains, err := m.Catalog.ListTrains()
	if err != nil {
		m.report(err)
		return
	}
	if len(trains) == 0 {
		fmt.Println("No trains found.")
		return
	}
	fmt.Println("Available Trains:")
	for _, t := range trains {
		fmt.Printf("Train ID: %d, Train Number: %d, Train Name: %s, Source: %s, Destination: %s, Schedule: %s, Fare: %s, Available Seats: %d\n",
			t.ID, t.Number, t.Name, t.Source, t.Destination, t.Schedule, utils.FormatRupees(t.Fare), t.AvailableSeats)
	}
}

func (m *Menu) bookOne(session Session) {
	trainID, err := m.Prompter.Int64("Enter train ID: ")
	if err != nil {
		fmt.Println("Invalid train ID. Please choose a valid train ID.")
		return
	}
	date := m.Prompter.Line("Enter booking date (YYYY-MM-DD): ")
	if !utils.ValidDate(date) {
		fmt.Println("Invalid date format. Please use YYYY-MM-DD.")
		return
	}

	fare, seats, found, err := m.Catalog.FareAndSeats(trainID)
	if err != nil {
		m.report(err)
		return
	}
	if !found {
		fmt.Println("Invalid train ID. Please choose a valid train ID.")
		return
	}
	if seats < 1 {
		fmt.Println("No seats available on this train.")
		return
	}

	method := m.Prompter.Line("Enter payment method (e.g., Credit Card, Debit Card): ")
	fmt.Printf("Processing payment of %s using %s...\n", utils.FormatRupees(fare), method)
	if err := m.Payments.Charge(method, fare); err != nil {
		fmt.Println("Payment failed. Please try again.")
		return
	}

	if _, err := m.Bookings.BookOne(session.UserID, trainID, date); err != nil {
		m.report(err)
		return
	}
	fmt.Println("Your ticket has been booked.")
}

func (m *Menu) bookMultiple(session Session) {
	trainID, err := m.Prompter.Int64("Enter train ID: ")
	if err != nil {
		fmt.Println("Invalid train ID. Please choose a valid train ID.")
		return
	}

	fare, seats, found, err := m.Catalog.FareAndSeats(trainID)
	if err != nil {
		m.report(err)
		return
	}
	if !found {
		fmt.Println("Invalid train ID. Please choose a valid train ID.")
		return
	}

	maxTickets := seats
	if maxTickets > services.MaxTicketsPerBooking {
		maxTickets = services.MaxTicketsPerBooking
	}
	if maxTickets == 0 {
		fmt.Println("No seats available on this train.")
		return
	}

	passengers := m.collectPassengers(int(maxTickets))
	count := len(passengers)
	total := services.TotalFare(fare, count)
	fmt.Printf("\nTotal fare for %d tickets: %s\n", count, utils.FormatRupees(total))

	date := m.Prompter.Line("Enter booking date (YYYY-MM-DD): ")
	if !utils.ValidDate(date) {
		fmt.Println("Invalid date format. Please use YYYY-MM-DD.")
		return
	}

	method := m.Prompter.Line("Enter payment method (e.g., Credit Card, Debit Card): ")
	fmt.Printf("Processing payment of %s using %s...\n", utils.FormatRupees(total), method)
	if err := m.Payments.Charge(method, total); err != nil {
		fmt.Println("Payment failed. Please try again.")
		return
	}

	if _, err := m.Bookings.BookMany(session.UserID, trainID, date, count); err != nil {
		m.report(err)
		return
	}

	fmt.Println("All tickets have been booked successfully.")
	fmt.Println("Booking Details:")
	for _, p := range passengers {
		fmt.Printf("  name=%s age=%s gender=%s\n", p.Name, p.Age, p.Gender)
	}
}

// collectPassengers gathers up to max passenger entries. The details are
// shown back to the operator only; the store keeps just user, train and date.
func (m *Menu) collectPassengers(max int) []models.Passenger {
	fmt.Printf("Enter details for up to %d tickets:\n", max)
	passengers := []models.Passenger{}
	for i := 0; i < max; i++ {
		fmt.Printf("\nTicket %d:\n", i+1)
		passengers = append(passengers, models.Passenger{
			Name:   m.Prompter.Line("Enter passenger name: "),
			Age:    m.Prompter.Line("Enter age of passenger: "),
			Gender: m.Prompter.Line("Enter gender (M/F): "),
		})
		if i < max-1 && !m.Prompter.YesNo("Do you want to add another ticket? (yes/no): ") {
			break
		}
	}
	return passengers
}

func (m *Menu) viewBookings(session Session) {
	bookings, err := m.Bookings.ListForUser(session.UserID)
	if err != nil {
		m.report(err)
		return
	}
	if len(bookings) == 0 {
		fmt.Println("No tickets found.")
		return
	}
	fmt.Println("\nYour Booked Tickets:")
	for _, b := range bookings {
		fmt.Printf("Booking ID: %d, Train: %s, Source: %s, Destination: %s, Date: %s\n",
			b.BookingID, b.TrainName, b.Source, b.Destination, b.BookingDate)
	}
}

func (m *Menu) cancelTicket(session Session) {
	bookingID, err := m.Prompter.Int64("Enter Booking ID to cancel: ")
	if err != nil {
		fmt.Println("Invalid Booking ID.")
		return
	}
	if err := m.Bookings.Cancel(session.UserID, bookingID); err != nil {
		if domain.IsNotFound(err) {
			fmt.Println("Invalid Booking ID or you do not own this booking.")
			return
		}
		m.report(err)
		return
	}
	fmt.Println("Your ticket has been canceled.")
}

func (m *Menu) exportTicket(session Session) {
	bookingID, err := m.Prompter.Int64("Enter Booking ID to download: ")
	if err != nil {
		fmt.Println("Invalid Booking ID.")
		return
	}
	data, filename, err := m.Tickets.ExportTicket(session.UserID, bookingID)
	if err != nil {
		if domain.IsNotFound(err) {
			fmt.Println("Invalid Booking ID or you do not own this booking.")
			return
		}
		m.report(err)
		return
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		fmt.Println("Could not write the ticket file:", err)
		return
	}
	fmt.Println("Ticket saved to", filename)
}

// report translates domain errors into operator-facing messages; unexpected
// errors are logged and summarized so the loop keeps running.
func (m *Menu) report(err error) {
	switch {
	case domain.IsValidation(err):
		fmt.Println(err.Error())
	case domain.IsNotFound(err):
		fmt.Println(err.Error())
	case domain.IsInsufficientSeats(err):
		fmt.Println("Not enough seats available.")
	case domain.IsBookingFailed(err):
		fmt.Println("Failed to book one or more tickets. Please try again.")
		utils.LogEvent("console", "booking_failed", err.Error())
	default:
		utils.LogEvent("console", "error", err.Error())
		fmt.Println("Something went wrong. Please try again.")
	}
}

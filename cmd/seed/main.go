// Command seed populates the database with a realistic demo dataset:
// the letter catalog, accounts built from lifecycle scenarios, and
// carrier tracking histories. Run migrations first.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Letter IDs match catalog insertion order.
const (
	letterWelcome = iota + 1
	letterStatement
	letterPolicyUpdate
	letterRenewal
	letterTax1099
	letterRateChange
	letterPrivacyUpdate
	letterPromoOffer
	letterClosureConfirm
	letterBeneficiaryForm
)

type catalogEntry struct {
	name            string
	description     string
	category        string
	businessUnit    string
	createdBy       string
	controlDayCount int // 0 means no regulatory control
}

var catalog = []catalogEntry{
	{"Welcome Letter", "Initial welcome package for new customers", "Onboarding", "Customer Success", "john.doe@company.com", 0},
	{"Account Statement", "Monthly account statement with transaction history", "Financial", "Finance", "jane.smith@company.com", 0},
	{"Policy Update Notice", "Notification about policy changes", "Compliance", "Legal", "legal@company.com", 30},
	{"Renewal Reminder", "Annual renewal reminder for subscriptions", "Marketing", "Sales", "sales@company.com", 0},
	{"Tax Document 1099", "Annual tax document for investment accounts", "Tax", "Finance", "tax@company.com", 15},
	{"Rate Change Notice", "Notification of interest rate changes", "Financial", "Finance", "rates@company.com", 30},
	{"Privacy Policy Update", "Updated privacy policy notification", "Compliance", "Legal", "privacy@company.com", 45},
	{"Promotional Offer", "Special promotional offer for loyal customers", "Marketing", "Marketing", "marketing@company.com", 0},
	{"Account Closure Confirmation", "Confirmation of account closure request", "Service", "Operations", "ops@company.com", 0},
	{"Beneficiary Update Form", "Form to update account beneficiaries", "Service", "Operations", "ops@company.com", 0},
}

var addresses = []string{
	"123 Main St, New York, NY 10001",
	"456 Oak Ave, Los Angeles, CA 90001",
	"789 Pine Rd, Chicago, IL 60601",
	"321 Elm St, Houston, TX 77001",
	"654 Maple Dr, Phoenix, AZ 85001",
	"987 Cedar Ln, Philadelphia, PA 19101",
	"147 Birch Way, San Antonio, TX 78201",
	"258 Walnut Blvd, San Diego, CA 92101",
	"369 Spruce Ct, Dallas, TX 75201",
	"741 Ash St, San Jose, CA 95101",
}

type letterData struct {
	letterID int
	daysAgo  int
	status   string
}

type scenario struct {
	name     string
	count    int
	generate func() []letterData
}

func randomInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

// pickRandomLetters draws count distinct letter IDs, skipping exclusions.
func pickRandomLetters(count int, exclude ...int) []int {
	excluded := map[int]bool{}
	for _, id := range exclude {
		excluded[id] = true
	}
	var available []int
	for id := letterWelcome; id <= letterBeneficiaryForm; id++ {
		if !excluded[id] {
			available = append(available, id)
		}
	}
	rand.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	if count > len(available) {
		count = len(available)
	}
	return available[:count]
}

func byAgeDescending(letters []letterData) []letterData {
	sort.Slice(letters, func(i, j int) bool { return letters[i].daysAgo > letters[j].daysAgo })
	return letters
}

var scenarios = []scenario{
	{"Brand New - Pending Welcome", 3, func() []letterData {
		return []letterData{{letterWelcome, 0, "not_sent"}}
	}},

	{"New - Welcome In Transit", 4, func() []letterData {
		return []letterData{{letterWelcome, randomInt(1, 4), "shipped"}}
	}},

	{"New - Welcome Only", 5, func() []letterData {
		return []letterData{{letterWelcome, randomInt(5, 14), "delivered"}}
	}},

	{"New - Two Letters", 6, func() []letterData {
		second := pickRandomLetters(1, letterWelcome)[0]
		secondDays := randomInt(0, 5)
		secondStatus := "delivered"
		switch {
		case secondDays == 0:
			secondStatus = "not_sent"
		case secondDays < 3:
			secondStatus = "shipped"
		}
		return byAgeDescending([]letterData{
			{letterWelcome, randomInt(14, 30), "delivered"},
			{second, secondDays, secondStatus},
		})
	}},

	{"Welcome Kit Retry", 2, func() []letterData {
		return []letterData{
			{letterWelcome, randomInt(25, 35), "returned"},
			{letterWelcome, randomInt(10, 20), "delivered"},
		}
	}},

	{"Active - Recent Mail Pending", 3, func() []letterData {
		pending := pickRandomLetters(1, letterWelcome, letterStatement)[0]
		return byAgeDescending([]letterData{
			{letterWelcome, randomInt(60, 120), "delivered"},
			{letterStatement, randomInt(20, 50), "delivered"},
			{pending, 0, "not_sent"},
		})
	}},

	{"Active - Letter In Transit", 4, func() []letterData {
		shipped := pickRandomLetters(1, letterWelcome, letterStatement)[0]
		return byAgeDescending([]letterData{
			{letterWelcome, randomInt(90, 150), "delivered"},
			{letterStatement, randomInt(30, 60), "delivered"},
			{shipped, randomInt(1, 4), "shipped"},
		})
	}},

	{"Active Standard", 8, func() []letterData {
		n := randomInt(3, 5)
		letters := []letterData{{letterWelcome, randomInt(90, 180), "delivered"}}
		for i, id := range pickRandomLetters(n-1, letterWelcome) {
			letters = append(letters, letterData{id, randomInt(7, 90-i*15), "delivered"})
		}
		return byAgeDescending(letters)
	}},

	{"Established Standard", 6, func() []letterData {
		n := randomInt(5, 10)
		letters := []letterData{{letterWelcome, randomInt(180, 365), "delivered"}}
		statements := randomInt(2, 4)
		for i := 0; i < statements; i++ {
			letters = append(letters, letterData{letterStatement, randomInt(30, 150) + i*30, "delivered"})
		}
		for _, id := range pickRandomLetters(n-1-statements, letterWelcome, letterStatement) {
			letters = append(letters, letterData{id, randomInt(14, 300), "delivered"})
		}
		return byAgeDescending(letters)
	}},

	{"Went Paperless", 2, func() []letterData {
		letters := []letterData{{letterWelcome, randomInt(240, 300), "delivered"}}
		for i := 0; i < randomInt(3, 5); i++ {
			letters = append(letters, letterData{letterStatement, randomInt(95, 200) + i*25, "delivered"})
		}
		if rand.Float64() > 0.5 {
			other := pickRandomLetters(1, letterWelcome, letterStatement)[0]
			letters = append(letters, letterData{other, randomInt(100, 180), "delivered"})
		}
		return byAgeDescending(letters)
	}},

	{"Promo Not Received", 2, func() []letterData {
		return byAgeDescending([]letterData{
			{letterWelcome, randomInt(120, 200), "delivered"},
			{letterStatement, randomInt(60, 100), "delivered"},
			{letterStatement, randomInt(20, 50), "delivered"},
			{letterPromoOffer, randomInt(10, 30), "returned"},
		})
	}},

	{"Letter stuck in transit", 2, func() []letterData {
		// Shipped 30-45 days ago: 25-40 days past the 5-day ETA.
		stuck := pickRandomLetters(1, letterWelcome)[0]
		return byAgeDescending([]letterData{
			{letterWelcome, randomInt(90, 150), "delivered"},
			{stuck, randomInt(30, 45), "shipped"},
		})
	}},

	{"Deadline Approaching", 2, func() []letterData {
		// A control letter shipped recently: deadline still ahead but close.
		return byAgeDescending([]letterData{
			{letterWelcome, randomInt(90, 150), "delivered"},
			{letterPolicyUpdate, randomInt(22, 27), "shipped"},
		})
	}},

	{"Regulatory Breach", 2, func() []letterData {
		// A control letter mailed well past its window, flagged as exception.
		return byAgeDescending([]letterData{
			{letterWelcome, randomInt(120, 200), "delivered"},
			{letterTax1099, randomInt(30, 50), "exception"},
		})
	}},
}

type trackingStep struct {
	status    string
	locations []string
}

var trackingPath = []trackingStep{
	{"received", []string{"Processing Center - Dallas, TX", "Regional Hub - Atlanta, GA", "Main Facility - Memphis, TN"}},
	{"processing", []string{"Sort Facility - Dallas, TX", "Distribution Center - Houston, TX", "Mail Processing Center"}},
	{"in_transit", []string{"In transit to local facility", "En route to destination", "Departed regional facility"}},
	{"out_for_delivery", []string{"Out for delivery - Local Post Office", "With carrier for delivery", "Final delivery in progress"}},
	{"delivered", []string{"Delivered - Front Door", "Delivered - Mailbox", "Delivered - Recipient"}},
}

var returnedPath = []trackingStep{
	{"received", []string{"Processing Center - Dallas, TX", "Regional Hub - Atlanta, GA"}},
	{"processing", []string{"Sort Facility - Dallas, TX", "Distribution Center - Houston, TX"}},
	{"in_transit", []string{"In transit to local facility", "En route to destination"}},
	{"returned_to_sender", []string{"Returned - Address not found", "Returned - Recipient moved", "Returned - Undeliverable as addressed"}},
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping: %v", err)
	}

	log.Println("Clearing existing data...")
	if _, err := db.Exec("TRUNCATE tracking_events, account_letters, letters RESTART IDENTITY CASCADE"); err != nil {
		log.Fatalf("truncate: %v", err)
	}

	log.Println("Seeding letter catalog...")
	for _, l := range catalog {
		var controlID *string
		var controlDays *int
		if l.controlDayCount > 0 {
			id := "CTRL-" + strings.ToUpper(uuid.NewString()[:8])
			controlID = &id
			controlDays = &l.controlDayCount
		}
		if _, err := db.Exec(`
			INSERT INTO letters (name, description, category, business_unit, created_by, control_id, control_day_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, l.name, l.description, l.category, l.businessUnit, l.createdBy, controlID, controlDays); err != nil {
			log.Fatalf("insert letter %q: %v", l.name, err)
		}
	}
	log.Printf("Seeded %d letters", len(catalog))

	log.Println("Seeding account letters by scenario...")
	accountIndex := 0
	totalLetters := 0
	for _, sc := range scenarios {
		log.Printf("  %d x %q", sc.count, sc.name)
		for i := 0; i < sc.count; i++ {
			accountID := fmt.Sprintf("ACC-%05d", accountIndex)
			address := addresses[accountIndex%len(addresses)]

			for _, l := range sc.generate() {
				var mailedAt, eta *time.Time
				if l.status != "not_sent" {
					m := time.Now().AddDate(0, 0, -l.daysAgo)
					e := m.AddDate(0, 0, 5)
					mailedAt, eta = &m, &e
				}
				if _, err := db.Exec(`
					INSERT INTO account_letters (account_id, letter_id, address, mailed_at, eta, status)
					VALUES ($1, $2, $3, $4, $5, $6)
				`, accountID, l.letterID, address, mailedAt, eta, l.status); err != nil {
					log.Fatalf("insert account letter: %v", err)
				}
				totalLetters++
			}
			accountIndex++
		}
	}
	log.Printf("Seeded %d account letters across %d accounts", totalLetters, accountIndex)

	log.Println("Seeding tracking events...")
	rows, err := db.Query("SELECT id, status, mailed_at FROM account_letters WHERE status != 'not_sent'")
	if err != nil {
		log.Fatalf("select account letters: %v", err)
	}
	defer rows.Close()

	type mailed struct {
		id       int64
		status   string
		mailedAt time.Time
	}
	var shipmentsToTrack []mailed
	for rows.Next() {
		var m mailed
		if err := rows.Scan(&m.id, &m.status, &m.mailedAt); err != nil {
			log.Fatalf("scan: %v", err)
		}
		shipmentsToTrack = append(shipmentsToTrack, m)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("iterate: %v", err)
	}

	eventCount := 0
	for _, m := range shipmentsToTrack {
		var path []trackingStep
		switch m.status {
		case "returned":
			path = returnedPath
		case "delivered":
			path = trackingPath
		default:
			// In-flight letters (shipped or exception) have partial tracking.
			path = trackingPath[:randomInt(1, 3)]
		}

		eventTime := m.mailedAt
		for _, step := range path {
			eventTime = eventTime.Add(time.Duration(randomInt(4, 28)) * time.Hour)
			location := step.locations[rand.Intn(len(step.locations))]
			if _, err := db.Exec(`
				INSERT INTO tracking_events (account_letter_id, status, location, occurred_at)
				VALUES ($1, $2, $3, $4)
			`, m.id, step.status, location, eventTime); err != nil {
				log.Fatalf("insert tracking event: %v", err)
			}
			eventCount++
		}
	}
	log.Printf("Seeded %d tracking events", eventCount)

	var statusSummary []string
	srows, err := db.Query("SELECT status, COUNT(*) FROM account_letters GROUP BY status ORDER BY status")
	if err == nil {
		defer srows.Close()
		for srows.Next() {
			var s string
			var n int
			srows.Scan(&s, &n)
			statusSummary = append(statusSummary, fmt.Sprintf("%s=%d", s, n))
		}
	}
	log.Printf("Done. Status distribution: %s", strings.Join(statusSummary, " "))
}

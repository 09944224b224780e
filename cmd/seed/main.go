package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-library-management/config"
)

// seed loads a small sample catalog for local development. Safe to run more
// than once.

type seedBook struct {
	title       string
	description string
	published   string
	isbn        string
	author      string
	publisher   string
	genre       string
}

var seedAuthors = map[string]struct{ birth, death string }{
	"George Orwell":     {"1903-06-25", "1950-01-21"},
	"Harper Lee":        {"1926-04-28", "2016-02-19"},
	"Haruki Murakami":   {"1949-01-12", ""},
	"Ursula K. Le Guin": {"1929-10-21", "2018-01-22"},
}

var seedPublishers = map[string]string{
	"Penguin Random House":    "https://www.penguinrandomhouse.com",
	"HarperCollins":           "https://www.harpercollins.com",
	"Oxford University Press": "https://global.oup.com",
}

var seedGenres = []string{"Fiction", "Science Fiction", "Mystery", "Biography"}

var seedBooks = []seedBook{
	{
		title:       "Nineteen Eighty-Four",
		description: "A dystopian novel about surveillance, truth, and power.",
		published:   "1949-06-08",
		isbn:        "9780451524935",
		author:      "George Orwell",
		publisher:   "Penguin Random House",
		genre:       "Science Fiction",
	},
	{
		title:       "To Kill a Mockingbird",
		description: "A story of racial injustice in the American South.",
		published:   "1960-07-11",
		isbn:        "9780061120084",
		author:      "Harper Lee",
		publisher:   "HarperCollins",
		genre:       "Fiction",
	},
	{
		title:       "Kafka on the Shore",
		description: "Two intertwined odysseys through a dreamlike modern Japan.",
		published:   "2002-09-12",
		isbn:        "9781400079278",
		author:      "Haruki Murakami",
		publisher:   "Penguin Random House",
		genre:       "Fiction",
	},
	{
		title:       "The Left Hand of Darkness",
		description: "An envoy's mission to a planet whose people have no fixed sex.",
		published:   "1969-03-01",
		isbn:        "9780441478125",
		author:      "Ursula K. Le Guin",
		publisher:   "Oxford University Press",
		genre:       "Science Fiction",
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	authorIDs := map[string]string{}
	for name, dates := range seedAuthors {
		var death sql.NullString
		if dates.death != "" {
			death = sql.NullString{String: dates.death, Valid: true}
		}
		id, err := ensureRow(db,
			`SELECT id FROM authors WHERE name = $1`,
			`INSERT INTO authors (name, birth_date, death_date) VALUES ($1, $2::date, $3::date) RETURNING id`,
			name, dates.birth, death)
		if err != nil {
			log.Fatalf("failed to seed author %s: %v", name, err)
		}
		authorIDs[name] = id
	}

	publisherIDs := map[string]string{}
	for name, website := range seedPublishers {
		id, err := ensureRow(db,
			`SELECT id FROM publishers WHERE name = $1`,
			`INSERT INTO publishers (name, website) VALUES ($1, $2) RETURNING id`,
			name, website)
		if err != nil {
			log.Fatalf("failed to seed publisher %s: %v", name, err)
		}
		publisherIDs[name] = id
	}

	genreIDs := map[string]string{}
	for _, name := range seedGenres {
		id, err := ensureRow(db,
			`SELECT id FROM genres WHERE name = $1`,
			`INSERT INTO genres (name) VALUES ($1) RETURNING id`,
			name)
		if err != nil {
			log.Fatalf("failed to seed genre %s: %v", name, err)
		}
		genreIDs[name] = id
	}

	for _, b := range seedBooks {
		var id string
		err := db.QueryRow(`
			INSERT INTO books (title, description, published_date, isbn, author_id, publisher_id, genre_id)
			VALUES ($1, $2, $3::date, $4, $5, $6, $7)
			ON CONFLICT (isbn) DO UPDATE SET title = EXCLUDED.title, updated_at = now()
			RETURNING id
		`, b.title, b.description, b.published, b.isbn, authorIDs[b.author], publisherIDs[b.publisher], genreIDs[b.genre]).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed book %s: %v", b.title, err)
		}
		fmt.Printf("seeded book: id=%s isbn=%s title=%s\n", id, b.isbn, b.title)
	}

	memberID, err := ensureRow(db,
		`SELECT id FROM members WHERE first_name = $1 AND last_name = $2`,
		`INSERT INTO members (first_name, last_name, birth_date) VALUES ($1, $2, $3::date) RETURNING id`,
		"Demo", "Member", "1990-05-15")
	if err != nil {
		log.Fatalf("failed to seed member: %v", err)
	}
	fmt.Printf("seeded member: id=%s name=Demo Member\n", memberID)
}

// ensureRow returns the id of an existing row matched by selectQ, inserting
// it with insertQ when absent. The first arguments are shared lookup keys;
// insert-only values follow.
func ensureRow(db *sql.DB, selectQ, insertQ string, args ...any) (string, error) {
	keyArgs := args[:countParams(selectQ)]
	var id string
	err := db.QueryRow(selectQ, keyArgs...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}
	if err := db.QueryRow(insertQ, args...).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func countParams(q string) int {
	max := 0
	for i := 0; i < len(q)-1; i++ {
		if q[i] == '$' && q[i+1] >= '1' && q[i+1] <= '9' {
			n := int(q[i+1] - '0')
			if n > max {
				max = n
			}
		}
	}
	return max
}

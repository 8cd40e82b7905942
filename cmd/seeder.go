package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		// The users table holds the login credentials the front-end
		// submits; the column is compared directly at login.
		adminEmail := "admin@mail.com"
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("admin user already exists; skipping")
		} else {
			if err := db.Exec("INSERT INTO users (email, password) VALUES (?, ?)", adminEmail, "password").Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		}

		projects := []struct {
			Name   string
			Desc   string
			Status string
		}{
			{"Website Redesign", "Refresh the marketing site", "In Progress"},
			{"Payroll Migration", "Move payroll to the new provider", "To Do"},
		}

		for _, p := range projects {
			var one int
			row := db.Raw(`SELECT 1 FROM projects WHERE name = ?`, p.Name).Row()
			if err := row.Scan(&one); err == nil {
				continue
			}
			if err := db.Exec(`INSERT INTO projects (name, "desc", status) VALUES (?, ?, ?)`, p.Name, p.Desc, p.Status).Error; err != nil {
				log.Fatalf("failed to insert project %q: %v", p.Name, err)
			}
			fmt.Println("Seeded project:", p.Name)
		}

		tickets := []struct {
			Title    string
			Desc     string
			Priority string
			Status   string
			Assignee string
		}{
			{"Broken login button", "Button does nothing on Safari", "High", "Open", "admin"},
			{"Update onboarding docs", "New hire checklist is stale", "Low", "Close", "admin"},
		}

		for _, t := range tickets {
			var one int
			row := db.Raw(`SELECT 1 FROM tickets WHERE title = ?`, t.Title).Row()
			if err := row.Scan(&one); err == nil {
				continue
			}
			if err := db.Exec(`INSERT INTO tickets (title, "desc", priority, status, assignee) VALUES (?, ?, ?, ?, ?)`,
				t.Title, t.Desc, t.Priority, t.Status, t.Assignee).Error; err != nil {
				log.Fatalf("failed to insert ticket %q: %v", t.Title, err)
			}
			fmt.Println("Seeded ticket:", t.Title)
		}
	},
}

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"participium/backend/internal/api/handler"
	"participium/backend/internal/config"
	"participium/backend/internal/models"
	"participium/backend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	s := storage.NewService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create-officer":
		if len(os.Args) != 7 {
			fmt.Println("Usage: admin create-officer <name> <surname> <email> <role> <office>")
			os.Exit(1)
		}
		role := models.OfficerRole(os.Args[5])
		switch role {
		case models.RoleAdministrator, models.RolePublicRelations, models.RoleTechnicalStaff:
		default:
			fmt.Printf("Invalid role %q\n", os.Args[5])
			os.Exit(1)
		}
		office := models.OfficeType(os.Args[6])
		if !models.ValidOffice(office) {
			fmt.Printf("Invalid office %q\n", os.Args[6])
			os.Exit(1)
		}
		officer := &models.Officer{
			Name:    os.Args[2],
			Surname: os.Args[3],
			Email:   os.Args[4],
			Role:    role,
			Office:  office,
		}
		if err := s.CreateOfficer(officer); err != nil {
			log.Fatalf("Error creating officer: %v", err)
		}
		fmt.Printf("Officer %d created.\n", officer.ID)

	case "create-maintainer":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin create-maintainer <name> <email> <categories-csv>")
			os.Exit(1)
		}
		var categories pq.StringArray
		for _, raw := range strings.Split(os.Args[4], ",") {
			category := models.OfficeType(strings.TrimSpace(raw))
			if !models.ValidOffice(category) {
				fmt.Printf("Invalid category %q\n", raw)
				os.Exit(1)
			}
			categories = append(categories, string(category))
		}
		maintainer := &models.Maintainer{
			Name:       os.Args[2],
			Email:      os.Args[3],
			Categories: categories,
			Active:     true,
		}
		if err := s.CreateMaintainer(maintainer); err != nil {
			log.Fatalf("Error creating maintainer: %v", err)
		}
		fmt.Printf("Maintainer %d created.\n", maintainer.ID)

	case "mint-token":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin mint-token <id> <role>")
			os.Exit(1)
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid id. Please provide an integer.")
			os.Exit(1)
		}
		token, err := handler.GenerateToken(cfg.JWTSecret, uint(id), models.OfficerRole(os.Args[3]))
		if err != nil {
			log.Fatalf("Error minting token: %v", err)
		}
		fmt.Println(token)

	case "seed-reports":
		seeds := []models.Report{
			{Title: "Broken streetlight on Via Roma", Category: models.OfficePublicLighting, LocationName: "Via Roma 12", Latitude: floatPtr(45.0703), Longitude: floatPtr(7.6869), Photos: pq.StringArray{"seed/light.jpg"}, State: models.StatePending},
			{Title: "Overflowing bins at the market", Category: models.OfficeWaste, LocationName: "Piazza della Repubblica", Latitude: floatPtr(45.0755), Longitude: floatPtr(7.6798), Photos: pq.StringArray{"seed/waste.jpg"}, State: models.StatePending},
			{Title: "Pothole near the school", Category: models.OfficeRoads, LocationName: "Corso Francia 101", Latitude: floatPtr(45.0781), Longitude: floatPtr(7.6405), Photos: pq.StringArray{"seed/pothole.jpg"}, State: models.StatePending, Anonymity: true},
		}
		for i := range seeds {
			if err := s.CreateReport(&seeds[i]); err != nil {
				log.Fatalf("Error seeding report %q: %v", seeds[i].Title, err)
			}
		}
		fmt.Printf("%d reports seeded.\n", len(seeds))

	case "clear-reports":
		if err := s.ClearReports(); err != nil {
			log.Fatalf("Error clearing reports: %v", err)
		}
		fmt.Println("All reports, follows and notifications cleared.")

	case "reset-officer":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin reset-officer <officer_id>")
			os.Exit(1)
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid officer id. Please provide an integer.")
			os.Exit(1)
		}
		if err := s.ResetAssignmentsByOfficer(uint(id)); err != nil {
			log.Fatalf("Error resetting assignments: %v", err)
		}
		fmt.Printf("Open reports of officer %d reverted to PENDING.\n", id)

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: admin <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  create-officer <name> <surname> <email> <role> <office>")
	fmt.Println("  create-maintainer <name> <email> <categories-csv>")
	fmt.Println("  mint-token <id> <role>")
	fmt.Println("  seed-reports")
	fmt.Println("  clear-reports")
	fmt.Println("  reset-officer <officer_id>")
}

func floatPtr(v float64) *float64 { return &v }

package main

import (
	"log"
	"os"

	"rental-asistente-be/internal/model"
	"rental-asistente-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the rental catalog the discovery engine classifies against.
// Idempotent: services that already exist are left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedCatalog(db)
}

func seedCatalog(db *gorm.DB) {
	services := []model.Service{
		{
			Name:        "Alquiler",
			Description: "alquiler de equipos para eventos y fiestas",
			Items: []model.ServiceItem{
				{Name: "Equipo de Sonido", Description: "equipo completo de sonido profesional", Price: 150},
				{Name: "Luces LED", Description: "juego de luces led programables para pista", Price: 80},
				{Name: "Proyector", Description: "proyector full hd con pantalla", Price: 60},
			},
		},
		{
			Name:        "Montaje",
			Description: "montaje de escenarios y estructuras",
			Items: []model.ServiceItem{
				{Name: "Tarima", Description: "tarima modular para escenario", Price: 200},
				{Name: "Carpa", Description: "carpa para eventos al aire libre", Price: 180},
			},
		},
		{
			Name:        "Catering",
			Description: "servicio de catering y mobiliario",
			Items: []model.ServiceItem{
				{Name: "Mesas y Sillas", Description: "juego de mesas redondas con sillas", Price: 40},
				{Name: "Mantelería", Description: "mantelería completa para banquetes", Price: 25},
			},
		},
	}

	ok := color.New(color.FgGreen)
	skip := color.New(color.FgYellow)
	fail := color.New(color.FgRed)

	for _, svc := range services {
		var count int64
		db.Model(&model.Service{}).Where("name = ?", svc.Name).Count(&count)
		if count > 0 {
			skip.Printf("- %s already seeded, skipping\n", svc.Name)
			continue
		}

		if err := db.Create(&svc).Error; err != nil {
			fail.Printf("✗ %s: %v\n", svc.Name, err)
			continue
		}
		ok.Printf("✓ %s (%d items)\n", svc.Name, len(svc.Items))
	}
}

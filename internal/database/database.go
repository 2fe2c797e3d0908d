package database

import (
	"encoding/json"
	"log"
	"os"
	"pokeboard/backend/internal/models"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	// Run migrations
	err = DB.AutoMigrate(
		&models.User{},
		&models.Pokemon{},
		&models.PokemonMove{},
		&models.Game{},
		&models.GamePlayer{},
		&models.Battle{},
		&models.GymLeader{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")

	if err := seedGymLeaders(DB); err != nil {
		log.Fatalf("Failed to seed gym leaders: %v", err)
	}
}

// seedGymLeaders inserts the default gym roster if it is not present yet.
func seedGymLeaders(db *gorm.DB) error {
	type seed struct {
		name       string
		typ        string
		badge      string
		team       []string
		difficulty int
	}

	seeds := []seed{
		{"Brock", "rock", "Boulder Badge", []string{"onix", "geodude"}, 1},
		{"Misty", "water", "Cascade Badge", []string{"staryu", "starmie"}, 2},
		{"Lt. Surge", "electric", "Thunder Badge", []string{"voltorb", "pikachu", "raichu"}, 3},
		{"Erika", "grass", "Rainbow Badge", []string{"victreebel", "tangela", "vileplume"}, 4},
		{"Koga", "poison", "Soul Badge", []string{"koffing", "muk", "weezing"}, 5},
		{"Sabrina", "psychic", "Marsh Badge", []string{"kadabra", "mr-mime", "alakazam"}, 6},
	}

	for _, s := range seeds {
		team, err := json.Marshal(s.team)
		if err != nil {
			return err
		}
		leader := models.GymLeader{
			Name:        s.name,
			Type:        s.typ,
			BadgeName:   s.badge,
			PokemonTeam: string(team),
			Difficulty:  s.difficulty,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&leader).Error; err != nil {
			return err
		}
	}
	return nil
}

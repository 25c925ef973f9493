package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-gestion/models"
	"hotel-gestion/utils"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}
	// state updates rely on matched rows, not changed rows
	if q.Get("clientFoundRows") == "" {
		q.Set("clientFoundRows", "true")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// ResolveMySQLDSN prefers MYSQL_URL / DATABASE_URL and falls back to DB_* variables.
func ResolveMySQLDSN() (string, error) {
	raw := utils.EnvOrDefault("MYSQL_URL", "")
	if raw == "" {
		raw = utils.EnvOrDefault("DATABASE_URL", "")
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		user, pass, host, port, dbName,
	), nil
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	return &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// Open connects to MySQL, or to a sqlite file when SQLitePath is set (local runs).
func Open(s Settings) (*gorm.DB, error) {
	if s.SQLitePath != "" {
		log.Printf("🗄️  using sqlite database %s", s.SQLitePath)
		return OpenSQLite(s.SQLitePath, logger.Warn)
	}

	dsn, err := ResolveMySQLDSN()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(mysql.Open(dsn), gormConfig(logger.Warn))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(utils.EnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(utils.EnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// OpenSQLite opens a sqlite database with foreign keys on. ":memory:" is kept on a
// single connection so every statement sees the same database.
func OpenSQLite(path string, level logger.LogLevel) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(level))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates or updates every table in parent -> child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

type habitacionSeed struct {
	desde, hasta int
	tipo         string
	capacidad    int
	costo        string
}

var habitacionesSeed = []habitacionSeed{
	{101, 110, models.HabitacionIndividualEstandar, 1, "50800"},
	{201, 218, models.HabitacionDobleEstandar, 2, "70230"},
	{301, 308, models.HabitacionDobleSuperior, 2, "90560"},
	{401, 410, models.HabitacionSuperiorFamilyPlan, 5, "110500"},
	{501, 502, models.HabitacionSuiteDoble, 2, "128600"},
}

// Seed inserts the default user and the room inventory when the tables are empty.
func Seed(db *gorm.DB, adminPassword string) error {
	var userCount int64
	if err := db.Model(&models.Usuario{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		if adminPassword == "" {
			adminPassword = "conserje"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		if err := db.Create(&models.Usuario{Nombre: "conserje", Contrasenia: string(hash)}).Error; err != nil {
			return fmt.Errorf("failed to create default user: %w", err)
		}
		log.Println("Default user seeded")
	}

	var roomCount int64
	if err := db.Model(&models.Habitacion{}).Count(&roomCount).Error; err != nil {
		return err
	}
	if roomCount > 0 {
		log.Println("Rooms already seeded")
		return nil
	}

	rooms := make([]models.Habitacion, 0, 48)
	for _, s := range habitacionesSeed {
		for n := s.desde; n <= s.hasta; n++ {
			rooms = append(rooms, models.Habitacion{
				Numero:     n,
				Tipo:       s.tipo,
				Capacidad:  s.capacidad,
				Estado:     models.EstadoDisponible,
				CostoNoche: decimal.RequireFromString(s.costo),
			})
		}
	}
	if err := db.Create(&rooms).Error; err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}
	log.Printf("Rooms seeded: %d", len(rooms))
	return nil
}

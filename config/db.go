package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"cleaning-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

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
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "cleaning_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures an admin account and the default site settings
// exist so a fresh install is usable immediately.
func SeedDatabase(db *gorm.DB) {
	var adminCount int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount)
	if adminCount == 0 {
		email := EnvOrDefault("ADMIN_EMAIL", "admin@cleaning.local")
		password := EnvOrDefault("ADMIN_PASSWORD", "admin123")

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName: "Site Admin",
				Email:    email,
				Password: string(hash),
				IsAdmin:  true,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var settingCount int64
	db.Model(&models.SiteSetting{}).Count(&settingCount)
	if settingCount == 0 {
		hours, _ := json.Marshal(map[string]string{
			"monday":    "08:00-18:00",
			"tuesday":   "08:00-18:00",
			"wednesday": "08:00-18:00",
			"thursday":  "08:00-18:00",
			"friday":    "08:00-18:00",
			"saturday":  "09:00-15:00",
			"sunday":    "closed",
		})
		catalog, _ := json.Marshal([]string{
			"Standard Clean", "Deep Clean", "Move-Out Clean", "Office Clean",
		})

		setting := models.SiteSetting{
			BusinessName:   "Fabulous Cleaning Services",
			Email:          EnvOrDefault("ADMIN_EMAIL", "admin@cleaning.local"),
			BusinessHours:  datatypes.JSON(hours),
			ServiceCatalog: datatypes.JSON(catalog),
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed site settings: %v", err)
		} else {
			log.Println("Site settings seeded")
		}
	}
}

// Migrate applies the schema. Split out from ConnectDatabase so tests can
// run it against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.ContactMessage{},
		&models.SiteSetting{},
	)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

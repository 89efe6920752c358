package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"medlearn_backend/internals/configs"
	addonModel "medlearn_backend/internals/features/billing/addons/model"
	planModel "medlearn_backend/internals/features/billing/plans/model"
	subscriptionModel "medlearn_backend/internals/features/billing/subscriptions/model"
	chapterModel "medlearn_backend/internals/features/content/chapters/model"
	questionModel "medlearn_backend/internals/features/content/questions/model"
	subjectModel "medlearn_backend/internals/features/content/subjects/model"
	topicModel "medlearn_backend/internals/features/content/topics/model"
	doctorModel "medlearn_backend/internals/features/doctors/doctor/model"
	testimonialModel "medlearn_backend/internals/features/testimonials/model"
	userModel "medlearn_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=medlearn&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // safe behind PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateAll keeps the schema in sync on boot. Order matters: parents first so
// FK constraints resolve.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&doctorModel.DoctorModel{},
		&subjectModel.SubjectModel{},
		&chapterModel.ChapterModel{},
		&topicModel.TopicModel{},
		&questionModel.QuestionModel{},
		&questionModel.QuestionOptionModel{},
		&planModel.PlanModel{},
		&addonModel.AddonModel{},
		&subscriptionModel.SubscriptionModel{},
		&testimonialModel.TestimonialModel{},
	)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

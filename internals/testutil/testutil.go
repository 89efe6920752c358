// file: internals/testutil/testutil.go

// Package testutil spins up an in-memory sqlite store plus a Fiber app wired
// like production, for controller tests that exercise real SQL without a
// Postgres instance. The schema is created with explicit DDL because the
// production column defaults are Postgres functions.
package testutil

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	helper "medlearn_backend/internals/helpers"
)

var schema = []string{
	`CREATE TABLE subjects (
		id uuid PRIMARY KEY,
		name varchar(100) NOT NULL,
		description text,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE chapters (
		id uuid PRIMARY KEY,
		subject_id uuid NOT NULL,
		name varchar(100) NOT NULL,
		description text,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE topics (
		id uuid PRIMARY KEY,
		chapter_id uuid NOT NULL,
		name varchar(100) NOT NULL,
		description text,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE questions (
		id uuid PRIMARY KEY,
		subject_id uuid NOT NULL,
		chapter_id uuid NOT NULL,
		topic_id uuid,
		question_text text NOT NULL,
		explanation text,
		image_url text,
		status varchar(10) NOT NULL DEFAULT 'pending',
		correct_key varchar(4),
		female_explanation_audio_url text,
		male_explanation_audio_url text,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE question_options (
		id uuid PRIMARY KEY,
		question_id uuid NOT NULL,
		option_key varchar(4) NOT NULL,
		content text NOT NULL
	)`,
	`CREATE TABLE users (
		id uuid PRIMARY KEY,
		name varchar(100) NOT NULL,
		email varchar(255) NOT NULL UNIQUE,
		phone varchar(30),
		password text NOT NULL,
		google_id varchar(255) UNIQUE,
		role varchar(20) NOT NULL DEFAULT 'user',
		is_active boolean NOT NULL DEFAULT true,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE doctors (
		id uuid PRIMARY KEY,
		user_id uuid UNIQUE,
		name varchar(100) NOT NULL,
		specialization varchar(120),
		bio text,
		email varchar(255),
		photo_url text,
		is_active boolean NOT NULL DEFAULT true,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE plans (
		id uuid PRIMARY KEY,
		name varchar(100) NOT NULL,
		description text,
		price numeric NOT NULL DEFAULT 0,
		duration_days integer NOT NULL,
		device_limit integer NOT NULL,
		access_features jsonb,
		is_active boolean NOT NULL DEFAULT true,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE addons (
		id uuid PRIMARY KEY,
		name varchar(120) NOT NULL,
		description text,
		price numeric NOT NULL DEFAULT 0,
		feature_key varchar(60) NOT NULL,
		is_active boolean NOT NULL DEFAULT true,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE testimonials (
		id uuid PRIMARY KEY,
		name varchar(100) NOT NULL,
		title varchar(120),
		message text NOT NULL,
		rating integer NOT NULL DEFAULT 5,
		is_published boolean NOT NULL DEFAULT false,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
	`CREATE TABLE subscriptions (
		id uuid PRIMARY KEY,
		user_id uuid NOT NULL,
		plan_id uuid NOT NULL,
		order_id varchar(64) NOT NULL UNIQUE,
		amount numeric NOT NULL,
		status varchar(20) NOT NULL DEFAULT 'pending',
		payment_token varchar(255),
		paid_at datetime,
		expires_at datetime,
		created_at datetime NOT NULL,
		updated_at datetime NOT NULL,
		deleted_at datetime
	)`,
}

// OpenDB returns a fresh in-memory store with the full schema applied.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	for _, ddl := range schema {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

// NewApp builds a Fiber app with the production error handler so tests see
// the same envelopes as clients do.
func NewApp(t testing.TB) *fiber.App {
	t.Helper()
	return fiber.New(fiber.Config{
		ErrorHandler: helper.FiberErrorHandler,
	})
}

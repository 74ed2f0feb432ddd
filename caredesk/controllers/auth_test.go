package controllers

import (
	"caredesk/caredesk/config"
	"caredesk/caredesk/middlewares"
	"caredesk/caredesk/sources/psql"
	"caredesk/caredesk/sources/psql/dao"
	"caredesk/caredesk/utils/types"
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

var testConfig = config.Config{JWTSecret: "test-secret"}

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ctrl := NewAuthController(dao.NewDoctorDAO(db), testConfig)

	token, err := ctrl.Signup(ctx, types.SignupRequest{
		FullName:  "Sarah Chen",
		Email:     "sarah.chen@clinic.test",
		Password:  "correct horse",
		Specialty: "Cardiology",
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	doctorID, err := middlewares.ParseToken(testConfig, token)
	if err != nil {
		t.Fatalf("signup token did not parse: %v", err)
	}
	if doctorID == 0 {
		t.Error("expected a doctor id claim in the token")
	}

	if _, err := ctrl.Signup(ctx, types.SignupRequest{
		Email:    "sarah.chen@clinic.test",
		Password: "other",
	}); err == nil {
		t.Error("expected duplicate email to be rejected")
	}

	loginToken, err := ctrl.Login(ctx, "sarah.chen@clinic.test", "correct horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	loginID, err := middlewares.ParseToken(testConfig, loginToken)
	if err != nil || loginID != doctorID {
		t.Errorf("login token mismatch: id %d, err %v", loginID, err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ctrl := NewAuthController(dao.NewDoctorDAO(db), testConfig)

	if _, err := ctrl.Signup(ctx, types.SignupRequest{
		Email:    "sarah.chen@clinic.test",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if _, err := ctrl.Login(ctx, "sarah.chen@clinic.test", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := ctrl.Login(ctx, "unknown@clinic.test", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestParseTokenRejectsForgery(t *testing.T) {
	db := setupTestDB(t)
	ctrl := NewAuthController(dao.NewDoctorDAO(db), testConfig)

	token, err := ctrl.Signup(context.Background(), types.SignupRequest{
		Email:    "sarah.chen@clinic.test",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if _, err := middlewares.ParseToken(config.Config{JWTSecret: "other-secret"}, token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
	if _, err := middlewares.ParseToken(testConfig, "not.a.token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

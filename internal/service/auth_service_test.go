package service

import (
	"errors"
	"testing"
	"time"

	"github.com/favorite-plug/api/internal/config"
	"github.com/favorite-plug/api/internal/constants"
	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "0123456789abcdef0123456789abcdef-test"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy.MinLength = 8
	cfg.Email.Enabled = false
	return cfg
}

func setupAuthServiceTest(t *testing.T) (*AuthService, repository.EmailVerifyCodeRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.UserDetail{}, &models.EmailVerifyCode{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := authTestConfig()
	codeRepo := repository.NewEmailVerifyCodeRepository(db)
	svc := NewAuthService(cfg, repository.NewUserRepository(db), codeRepo, NewEmailService(&cfg.Email), nil)
	return svc, codeRepo, db
}

func seedVerifyCode(t *testing.T, codeRepo repository.EmailVerifyCodeRepository, email, purpose, code string) {
	t.Helper()
	now := time.Now()
	if err := codeRepo.Create(&models.EmailVerifyCode{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		ExpiresAt: now.Add(10 * time.Minute),
		SentAt:    now,
		CreatedAt: now,
	}); err != nil {
		t.Fatalf("seed verify code failed: %v", err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, codeRepo, _ := setupAuthServiceTest(t)
	const email = "register.flow@example.com"

	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "482910")

	user, token, expiresAt, err := svc.Register(email, "sturdy-passw0rd", "482910")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != constants.RoleUser {
		t.Fatalf("role want user got %s", user.Role)
	}
	if !user.IsVerified() {
		t.Fatalf("registered user should be verified")
	}
	if token == "" || expiresAt.Before(time.Now()) {
		t.Fatalf("token should be signed with a future expiry")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleUser {
		t.Fatalf("claims want user %d role user, got %d %s", user.ID, claims.UserID, claims.Role)
	}

	if _, _, _, err := svc.Login(email, "sturdy-passw0rd"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, _, err := svc.Login(email, "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("nobody.here@example.com", "sturdy-passw0rd"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials got %v", err)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc, codeRepo, _ := setupAuthServiceTest(t)
	const email = "register.reject@example.com"

	if _, _, _, err := svc.Register(email, "short", "000000"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak password: want ErrWeakPassword got %v", err)
	}

	// wrong code
	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "111111")
	if _, _, _, err := svc.Register(email, "sturdy-passw0rd", "222222"); !errors.Is(err, ErrVerifyCodeInvalid) {
		t.Fatalf("wrong code: want ErrVerifyCodeInvalid got %v", err)
	}

	// expired code wins over the earlier one
	now := time.Now()
	_ = codeRepo.Create(&models.EmailVerifyCode{
		Email:     email,
		Purpose:   constants.VerifyPurposeRegister,
		Code:      "333333",
		ExpiresAt: now.Add(-time.Minute),
		SentAt:    now,
		CreatedAt: now,
	})
	if _, _, _, err := svc.Register(email, "sturdy-passw0rd", "333333"); !errors.Is(err, ErrVerifyCodeExpired) {
		t.Fatalf("expired code: want ErrVerifyCodeExpired got %v", err)
	}

	if _, _, _, err := svc.Register("not-an-email", "sturdy-passw0rd", "111111"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email: want ErrInvalidEmail got %v", err)
	}
}

func TestRegisterRejectsExistingEmail(t *testing.T) {
	svc, codeRepo, _ := setupAuthServiceTest(t)
	const email = "register.duplicate@example.com"

	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "482910")
	if _, _, _, err := svc.Register(email, "sturdy-passw0rd", "482910"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "573820")
	if _, _, _, err := svc.Register(email, "sturdy-passw0rd", "573820"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate email: want ErrEmailExists got %v", err)
	}
}

func TestLoginBlockedAndUnverified(t *testing.T) {
	svc, codeRepo, db := setupAuthServiceTest(t)
	const email = "login.blocked@example.com"

	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "482910")
	user, _, _, err := svc.Register(email, "sturdy-passw0rd", "482910")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("blocked", true).Error; err != nil {
		t.Fatalf("block user failed: %v", err)
	}
	if _, _, _, err := svc.Login(email, "sturdy-passw0rd"); !errors.Is(err, ErrUserBlocked) {
		t.Fatalf("blocked user: want ErrUserBlocked got %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"blocked": false, "email_verified_at": nil}).Error; err != nil {
		t.Fatalf("unverify user failed: %v", err)
	}
	if _, _, _, err := svc.Login(email, "sturdy-passw0rd"); !errors.Is(err, ErrEmailNotVerified) {
		t.Fatalf("unverified user: want ErrEmailNotVerified got %v", err)
	}
}

func TestResetPasswordInvalidatesOldTokens(t *testing.T) {
	svc, codeRepo, db := setupAuthServiceTest(t)
	const email = "reset.rotation@example.com"

	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "482910")
	user, _, _, err := svc.Register(email, "sturdy-passw0rd", "482910")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeReset, "652041")
	if err := svc.ResetPassword(email, "652041", "another-passw0rd"); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version want %d got %d", user.TokenVersion+1, reloaded.TokenVersion)
	}
	if reloaded.TokenInvalidBefore == nil {
		t.Fatalf("token invalid-before should be set after a reset")
	}

	if _, _, _, err := svc.Login(email, "sturdy-passw0rd"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password: want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login(email, "another-passw0rd"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, codeRepo, _ := setupAuthServiceTest(t)
	const email = "change.password@example.com"

	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "482910")
	user, _, _, err := svc.Register(email, "sturdy-passw0rd", "482910")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-old", "another-passw0rd"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong old password: want ErrInvalidPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "sturdy-passw0rd", "another-passw0rd"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, _, err := svc.Login(email, "another-passw0rd"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUpdateProfileUpsertsDetail(t *testing.T) {
	svc, codeRepo, _ := setupAuthServiceTest(t)
	const email = "profile.upsert@example.com"

	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "482910")
	user, _, _, err := svc.Register(email, "sturdy-passw0rd", "482910")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{}); !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("empty update: want ErrProfileEmpty got %v", err)
	}

	name := "Dana Brown"
	address := "12 Harbour Street"
	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{FullName: &name, Address: &address})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Detail == nil || updated.Detail.FullName != name {
		t.Fatalf("detail full name want %q got %+v", name, updated.Detail)
	}

	phone := "+1876000000"
	updated, err = svc.UpdateProfile(user.ID, UpdateProfileInput{Phone: &phone})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if updated.Detail.Phone != phone || updated.Detail.FullName != name {
		t.Fatalf("partial update must keep earlier fields, got %+v", updated.Detail)
	}
}

func TestSendVerifyCodeRules(t *testing.T) {
	svc, codeRepo, _ := setupAuthServiceTest(t)

	// register codes refuse existing accounts, reset codes require one
	const email = "verify.rules@example.com"
	seedVerifyCode(t, codeRepo, email, constants.VerifyPurposeRegister, "482910")
	if _, _, _, err := svc.Register(email, "sturdy-passw0rd", "482910"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.SendVerifyCode(email, constants.VerifyPurposeRegister); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("register for existing: want ErrEmailExists got %v", err)
	}
	if err := svc.SendVerifyCode("ghost.account@example.com", constants.VerifyPurposeReset); !errors.Is(err, ErrNotFound) {
		t.Fatalf("reset for missing: want ErrNotFound got %v", err)
	}
	if err := svc.SendVerifyCode(email, "unknown"); !errors.Is(err, ErrInvalidVerifyPurpose) {
		t.Fatalf("bad purpose: want ErrInvalidVerifyPurpose got %v", err)
	}
}

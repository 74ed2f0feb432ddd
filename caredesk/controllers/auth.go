package controllers

import (
	"caredesk/caredesk/config"
	"caredesk/caredesk/sources/psql/dao"
	"caredesk/caredesk/sources/psql/models"
	"caredesk/caredesk/utils/types"
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthController struct {
	doctorDAO *dao.DoctorDAO
	cfg       config.Config
}

func NewAuthController(doctorDAO *dao.DoctorDAO, cfg config.Config) *AuthController {
	return &AuthController{
		doctorDAO: doctorDAO,
		cfg:       cfg,
	}
}

// Signup creates a doctor account and returns a signed token.
func (c *AuthController) Signup(ctx context.Context, req types.SignupRequest) (string, error) {
	existing, err := c.doctorDAO.GetDoctorByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	doctor := &models.Doctor{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		NPIID:        req.NPIID,
		Specialty:    req.Specialty,
		Location:     req.Location,
		Role:         req.Role,
	}
	if err := c.doctorDAO.CreateDoctor(ctx, doctor); err != nil {
		return "", err
	}
	return c.signToken(doctor.ID)
}

func (c *AuthController) Login(ctx context.Context, email, password string) (string, error) {
	doctor, err := c.doctorDAO.GetDoctorByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if doctor == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return c.signToken(doctor.ID)
}

func (c *AuthController) signToken(doctorID int) (string, error) {
	claims := jwt.MapClaims{
		"doctor_id": doctorID,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.JWTSecret))
}

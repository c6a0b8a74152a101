package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"earsip_backend/internals/configs"
	"earsip_backend/internals/constants"
	auditService "earsip_backend/internals/features/audit/service"
	"earsip_backend/internals/features/users/dto"
	"earsip_backend/internals/features/users/model"
	helper "earsip_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register membuat user baru. Password di-hash bcrypt dan tidak pernah
// ikut di response.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Role == "" {
		req.Role = constants.RoleAdminTU
	}

	hashed, err := helper.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	user := model.User{
		Username: req.Username,
		Password: hashed,
		Name:     req.Name,
		Role:     req.Role,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Username sudah digunakan.")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil dibuat", dto.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	})
}

// Login memverifikasi kredensial, mencatat USER_LOGIN ke audit log, lalu
// menerbitkan token sesi 8 jam.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.User
	if err := ctl.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Username atau password salah")
		}
		log.Printf("[ERROR] login: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if !helper.CheckPassword(user.Password, req.Password) {
		return helper.Error(c, fiber.StatusBadRequest, "Username atau password salah")
	}

	auditService.Record(ctl.DB, auditService.Actor{
		ID:   user.ID.String(),
		Name: user.Name,
		Role: user.Role,
	}, constants.ActionUserLogin, fmt.Sprintf("Pengguna %s berhasil login.", user.Name))

	token, err := helper.GenerateToken(user.ID.String(), user.Role, user.Name, configs.JWTSecret)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Name:     user.Name,
			Role:     user.Role,
		},
	})
}

package dto

import "github.com/jhoicas/coolant-flow-api/internal/domain/entity"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT y perfil del usuario.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// ForgotPasswordRequest solicita el enlace de recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse la respuesta es la misma exista o no el email.
// ResetLink solo se incluye en desarrollo.
type ForgotPasswordResponse struct {
	Message   string `json:"message"`
	ResetLink string `json:"reset_link,omitempty"`
}

// ResetPasswordRequest nueva contraseña con el token recibido por email.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Claves del formulario de perfil.
const (
	FieldFullName    = "fullName"
	FieldDesignation = "designation"
	FieldPhoneNumber = "phoneNumber"
	FieldCompanyName = "companyName"
	FileProfileImage = "profileImage"
)

// ProfileResponse perfil del usuario (sin password).
type ProfileResponse struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Designation  string `json:"designation"`
	PhoneNumber  string `json:"phoneNumber"`
	Company      string `json:"company"`
	ProfileImage string `json:"profileImage"`
}

// NewProfileResponse proyecta el usuario; imageURL es la ruta pública de su foto.
func NewProfileResponse(u *entity.User, imageURL string) ProfileResponse {
	return ProfileResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         entity.ParseRole(u.Role).String(),
		Designation:  u.Designation,
		PhoneNumber:  u.PhoneNumber,
		Company:      u.Company,
		ProfileImage: imageURL,
	}
}

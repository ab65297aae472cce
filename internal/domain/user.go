package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ContractType define o regime de contratação do vendedor.
// O regime determina a tabela de comissão aplicada.
type ContractType string

const (
	ContractTypePJ  ContractType = "PJ"
	ContractTypeCLT ContractType = "CLT"
)

// Perfis de acesso
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleSeller     = 3
)

// ParseContractType normaliza o regime de contratação.
// Valores desconhecidos caem em PJ (padrão de negócio, não é erro).
func ParseContractType(s string) ContractType {
	if ContractType(s) == ContractTypeCLT {
		return ContractTypeCLT
	}
	return ContractTypePJ
}

type User struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Lastname     string       `json:"lastname"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"password"`
	Active       bool         `json:"active"`
	RoleID       int          `json:"role_id"`
	ContractType ContractType `json:"contract_type"`
	Phone        *string      `json:"phone"`
	AvatarURL    *string      `json:"avatar_url"`
	Deleted      bool         `json:"deleted"`
	DeletedAt    *time.Time   `json:"deleted_at"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID           int     `json:"id"`
	Name         *string `json:"name"`
	Lastname     *string `json:"lastname"`
	Email        *string `json:"email"`
	Active       *bool   `json:"active"`
	RoleID       *int    `json:"role_id"`
	ContractType *string `json:"contract_type"`
	Phone        *string `json:"phone"`
	AvatarURL    *string `json:"avatar_url"`
	Deleted      *bool   `json:"deleted"`
}

type Claims struct {
	UserID           int
	UserName         string
	UserLastname     string
	UserEmail        string
	UserActive       bool
	UserRoleID       int
	UserContractType ContractType
	UserAvatarURL    *string
	jwt.RegisteredClaims
}

package models

import "fmt"

// Role reemplaza el rol_id numérico del sistema anterior: enum cerrado,
// nunca comparaciones numéricas sueltas.
type Role string

const (
	RoleCliente Role = "cliente"
	RoleTaller  Role = "taller"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCliente, RoleTaller, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kode SQLSTATE postgres yang dipetakan ke 4xx
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// ErrorHandler dipasang di fiber.Config. Semua error dari handler
// berakhir di sini dengan shape ErrorResponse yang sama.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, msg := ErrorStatus(err)
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		msg = "error interno del servidor"
	}
	return JsonError(c, status, msg)
}

// ErrorStatus memetakan error ke status HTTP + pesan.
func ErrorStatus(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "no encontrado"
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fiber.StatusConflict, "referencia inválida"
		case pgUniqueViolation:
			return fiber.StatusConflict, "registro duplicado"
		case pgCheckViolation:
			return fiber.StatusBadRequest, "valor fuera de rango"
		}
	}
	return fiber.StatusInternalServerError, err.Error()
}

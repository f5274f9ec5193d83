// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности (враг, башня, снаряд).
// Ноль никогда не выдаётся и означает «нет сущности».
type EntityID uint64

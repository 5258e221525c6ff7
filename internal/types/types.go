// internal/types/types.go
package types

// EntityID — идентификатор сущности в симуляции
type EntityID uint64

// internal/event/types.go
package event

const (
	EntitySpawned   EventType = "EntitySpawned"   // Data: *entity.Entity
	EntityDeflected EventType = "EntityDeflected" // Data: *entity.Entity
	TargetHit       EventType = "TargetHit"       // Data: Hit
	EntityCulled    EventType = "EntityCulled"    // Data: *entity.Entity
	EntityEscaped   EventType = "EntityEscaped"   // Data: *entity.Entity, ни разу не отражённая
	ScoreChanged    EventType = "ScoreChanged"    // Data: int, новый счёт
	LevelUp         EventType = "LevelUp"         // Data: int, новый уровень
	GameOver        EventType = "GameOver"        // Data: string, причина
)

// Hit описывает терминальное попадание в цель.
type Hit struct {
	Target string
	Entity interface{}
}

package component

// Role определяет, кем является сущность в симуляции.
type Role int

const (
	RolePlayer Role = iota
	RoleHostile
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleHostile:
		return "hostile"
	default:
		return "unknown"
	}
}

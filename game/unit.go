package game

import (
	"fmt"
)

type UnitClass string

const (
	ClassSoldier  UnitClass = "soldier"
	ClassOperator UnitClass = "operator"
	ClassMedic    UnitClass = "medic"
)

type CombatStyle string

const (
	StyleMelee  CombatStyle = "melee"
	StyleRanged CombatStyle = "ranged"
)

type UnitCoreStats struct {
	MaxHealth   int
	Attack      int
	HealAmount  int
	MoveRange   int
	AttackRange int
	Speed       int
}

// UnitDefinition is the static loadout archetype a combatant is built from.
type UnitDefinition struct {
	ID        uint64
	Name      string
	Class     UnitClass
	Style     CombatStyle
	CoreStats UnitCoreStats
}

// UnitInstance is one combatant on the battlefield. It carries the mutable
// state the rule functions read and write during a match.
type UnitInstance struct {
	GameUnitID uint64 // ID of the unit in the current battle
	Name       string
	Team       string
	Class      UnitClass
	Style      CombatStyle

	Position GridPos

	Health     int
	MaxHealth  int
	Attack     int
	HealAmount int

	MoveRange   int
	AttackRange int

	// initiative state
	Speed        int
	SpeedBonus   int
	Accumulator  int
	LoadoutIndex int

	// ability state
	IsConcealed  bool
	IsCovering   bool
	CoveredTiles map[string]bool

	ActionsUsed int
}

func NewUnitInstance(name string, team string, def *UnitDefinition) *UnitInstance {
	return &UnitInstance{
		Name:         name,
		Team:         team,
		Class:        def.Class,
		Style:        def.Style,
		Health:       def.CoreStats.MaxHealth,
		MaxHealth:    def.CoreStats.MaxHealth,
		Attack:       def.CoreStats.Attack,
		HealAmount:   def.CoreStats.HealAmount,
		MoveRange:    def.CoreStats.MoveRange,
		AttackRange:  def.CoreStats.AttackRange,
		Speed:        def.CoreStats.Speed,
		CoveredTiles: make(map[string]bool),
	}
}

func (u *UnitInstance) UnitID() uint64 {
	return u.GameUnitID
}

func (u *UnitInstance) SetUnitID(id uint64) {
	u.GameUnitID = id
}

func (u *UnitInstance) GetName() string {
	return u.Name
}

// IsActive excludes the unit from all alive queries once health reaches zero.
func (u *UnitInstance) IsActive() bool {
	return u.Health > 0
}

func (u *UnitInstance) IsEnemyOf(other *UnitInstance) bool {
	return u.Team != other.Team
}

// EffectiveSpeed is base speed plus the one-turn bonus, if any.
func (u *UnitInstance) EffectiveSpeed() int {
	return u.Speed + u.SpeedBonus
}

// ApplyDamage reduces health, clamping at zero, and reports whether the hit
// was lethal so the caller can trigger removal and the win check.
func (u *UnitInstance) ApplyDamage(amount int) bool {
	u.Health -= amount
	if u.Health <= 0 {
		u.Health = 0
		return true
	}
	return false
}

// InnateCommand returns the ability command this unit's class grants, or nil
// for classes whose specialty is already a targeted action.
func (u *UnitInstance) InnateCommand() *Command {
	switch u.Class {
	case ClassSoldier:
		cmd := NewCoverCommand()
		return &cmd
	case ClassOperator:
		cmd := NewConcealCommand()
		return &cmd
	}
	return nil
}

func (u *UnitInstance) DebugString(prefix string) string {
	return fmt.Sprintf("[%s] %s(%d) team=%s pos=%s hp=%d/%d", prefix, u.Name, u.GameUnitID, u.Team, u.Position.ToString(), u.Health, u.MaxHealth)
}

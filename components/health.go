package components

import "github.com/yohamta/donburi"

// HealthData keeps Current within [0, Max]. Max must be positive.
type HealthData struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) HealthData {
	return HealthData{Current: max, Max: max}
}

// TakeDamage lowers Current by amount, never below zero.
func (h *HealthData) TakeDamage(amount float64) {
	h.Current = clampHealth(h.Current-amount, h.Max)
}

// Heal raises Current by amount, never above Max.
func (h *HealthData) Heal(amount float64) {
	h.Current = clampHealth(h.Current+amount, h.Max)
}

func (h HealthData) IsDead() bool {
	return h.Current <= 0
}

// Percentage is Current/Max in [0, 1], used by health bars.
func (h HealthData) Percentage() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

func clampHealth(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// DamageOnContactData is dealt once to the actor before the owner is removed.
type DamageOnContactData struct {
	Damage float64
}

func NewDamageOnContact(damage float64) DamageOnContactData {
	return DamageOnContactData{Damage: damage}
}

var (
	Health          = donburi.NewComponentType[HealthData]()
	DamageOnContact = donburi.NewComponentType[DamageOnContactData]()
)

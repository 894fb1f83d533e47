// Package builders provides fluent builders for army test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// ArmyBuilder builds *army.Army values for tests
type ArmyBuilder struct {
	army *army.Army
}

// NewArmyBuilder starts from an empty 2000 point army with fixed timestamps
func NewArmyBuilder() *ArmyBuilder {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &ArmyBuilder{
		army: &army.Army{
			ID:        "army-test-123",
			Name:      "Test Army",
			GameSize:  army.DefaultGameSize,
			Units:     []army.Unit{},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

// WithID sets the army ID
func (b *ArmyBuilder) WithID(id string) *ArmyBuilder {
	b.army.ID = id
	return b
}

// WithName sets the army name
func (b *ArmyBuilder) WithName(name string) *ArmyBuilder {
	b.army.Name = name
	return b
}

// WithGameSize sets the points limit
func (b *ArmyBuilder) WithGameSize(size int) *ArmyBuilder {
	b.army.GameSize = size
	return b
}

// WithUnits appends units
func (b *ArmyBuilder) WithUnits(units ...army.Unit) *ArmyBuilder {
	b.army.Units = append(b.army.Units, units...)
	return b
}

// Build returns the army
func (b *ArmyBuilder) Build() *army.Army {
	return b.army.Clone()
}

// UnitBuilder builds army.Unit values starting from the documented defaults
type UnitBuilder struct {
	unit army.Unit
}

// NewUnitBuilder creates a builder with default stats
func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{unit: army.NewUnit()}
}

// Intercessors is a 5 model, 2 wound, 3+ infantry squad with a bolt rifle
func Intercessors() *UnitBuilder {
	return NewUnitBuilder().
		WithName("Intercessors").
		WithPoints(80).
		WithModels(5).
		WithDefense(4, 3, 2).
		WithTactical(6, 2).
		WithWeapons(NewWeaponBuilder().WithName("Bolt rifle").WithProfile(2, 3, 4, 1, 1).Build())
}

// WithName sets the unit name
func (b *UnitBuilder) WithName(name string) *UnitBuilder {
	b.unit.Name = name
	return b
}

// WithPoints sets the points cost of one unit
func (b *UnitBuilder) WithPoints(pts int) *UnitBuilder {
	b.unit.Points = pts
	return b
}

// WithModels sets models per unit
func (b *UnitBuilder) WithModels(models int) *UnitBuilder {
	b.unit.Models = models
	return b
}

// WithCount sets how many copies are fielded
func (b *UnitBuilder) WithCount(count int) *UnitBuilder {
	b.unit.Count = count
	return b
}

// WithDefense sets toughness, save and wounds
func (b *UnitBuilder) WithDefense(t, sv, w int) *UnitBuilder {
	b.unit.Toughness = t
	b.unit.Save = sv
	b.unit.Wounds = w
	return b
}

// WithTactical sets leadership and objective control
func (b *UnitBuilder) WithTactical(ld, oc int) *UnitBuilder {
	b.unit.Leadership = ld
	b.unit.ObjectiveControl = oc
	return b
}

// WithModifiers replaces the unit buffs
func (b *UnitBuilder) WithModifiers(m army.Modifiers) *UnitBuilder {
	b.unit.Modifiers = m
	return b
}

// WithWeapons appends weapons
func (b *UnitBuilder) WithWeapons(weapons ...army.Weapon) *UnitBuilder {
	b.unit.Weapons = append(b.unit.Weapons, weapons...)
	return b
}

// Build returns a copy of the unit
func (b *UnitBuilder) Build() army.Unit {
	return b.unit.Clone()
}

// WeaponBuilder builds army.Weapon values
type WeaponBuilder struct {
	weapon army.Weapon
}

// NewWeaponBuilder creates a builder with default stats
func NewWeaponBuilder() *WeaponBuilder {
	return &WeaponBuilder{weapon: army.NewWeapon()}
}

// WithName sets the weapon name
func (b *WeaponBuilder) WithName(name string) *WeaponBuilder {
	b.weapon.Name = name
	return b
}

// WithProfile sets attacks, hit, strength, AP and damage
func (b *WeaponBuilder) WithProfile(a float64, hit, s, ap int, d float64) *WeaponBuilder {
	b.weapon.Attacks = a
	b.weapon.Hit = hit
	b.weapon.Strength = s
	b.weapon.AP = ap
	b.weapon.Damage = d
	return b
}

// WithGroup marks the weapon as one option of a loadout group
func (b *WeaponBuilder) WithGroup(group string) *WeaponBuilder {
	b.weapon.Group = group
	return b
}

// WithQuantity sets how many copies the unit carries
func (b *WeaponBuilder) WithQuantity(qty int) *WeaponBuilder {
	b.weapon.Quantity = qty
	return b
}

// Build returns the weapon
func (b *WeaponBuilder) Build() army.Weapon {
	return b.weapon
}

// Package stamina keeps the bar-based resource pool that sprinting,
// sliding, maneuvers and blinks draw from.
package stamina

import (
	"math"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/shared/simtime"
)

// Controller owns the pool. Regeneration pauses for the configured cooldown
// after every consumption, so a continuous drain suppresses it entirely.
type Controller struct {
	settings config.StaminaConfig
	clock    *simtime.Clock
	stamina  float64
	maximum  float64
	regen    simtime.Timer
}

// New returns a full pool sized bars times per-bar amount.
func New(settings config.StaminaConfig, clock *simtime.Clock) *Controller {
	if clock == nil {
		panic("stamina: nil clock")
	}
	maximum := float64(settings.StaminaPerBar * settings.StaminaBars)
	return &Controller{
		settings: settings,
		clock:    clock,
		stamina:  maximum,
		maximum:  maximum,
	}
}

func (c *Controller) Stamina() float64        { return c.stamina }
func (c *Controller) MaximumStamina() float64 { return c.maximum }
func (c *Controller) StaminaPerBar() float64  { return float64(c.settings.StaminaPerBar) }

// Regenerating reports whether the post-consumption cooldown has elapsed.
func (c *Controller) Regenerating() bool {
	return c.regen.ExpiredOrNotRunning()
}

// SetSettings swaps the settings and resizes the pool, keeping the current
// amount where it still fits.
func (c *Controller) SetSettings(settings config.StaminaConfig) {
	c.settings = settings
	c.maximum = float64(settings.StaminaPerBar * settings.StaminaBars)
	c.stamina = math.Min(c.stamina, c.maximum)
}

// HasEnoughStaminaFor reports whether the pool covers the cost right now.
func (c *Controller) HasEnoughStaminaFor(cost config.StaminaCost) bool {
	return c.stamina >= c.Amount(cost)
}

// ConsumeStamina always succeeds. The pool never drops below zero and the
// regeneration cooldown restarts.
func (c *Controller) ConsumeStamina(cost config.StaminaCost) {
	c.consume(c.Amount(cost))
}

func (c *Controller) consume(amount float64) {
	c.stamina = math.Max(0, c.stamina-amount)
	c.regen = c.clock.Timer(c.settings.StaminaRegenerationCooldown)
}

// RestoreStamina adds amount, capped at the maximum.
func (c *Controller) RestoreStamina(amount float64) {
	c.stamina = gamemath.Clamp(c.stamina+amount, 0, c.maximum)
}

// Amount resolves a cost to a flat value against the current pool. Rate
// based costs scale with the last physics step.
func (c *Controller) Amount(cost config.StaminaCost) float64 {
	perBar := c.StaminaPerBar()
	switch cost.Mode {
	case config.CostFlat:
		return cost.Value
	case config.CostPerSeconds:
		return cost.Value * c.clock.StepDeltaTime()
	case config.CostRemainingBar:
		return c.RemainingStaminaInCurrentBar()
	case config.CostPercentage:
		return gamemath.Percentage(c.maximum, cost.Value)
	case config.CostBar:
		return perBar
	case config.CostBarsPerSecond:
		return cost.Value * perBar * c.clock.StepDeltaTime()
	default:
		panic("stamina: unknown cost mode " + cost.Mode.String())
	}
}

// RemainingStaminaInCurrentBar returns what is left of the partially used
// bar, or a whole bar when the pool sits exactly on a bar boundary.
func (c *Controller) RemainingStaminaInCurrentBar() float64 {
	perBar := c.StaminaPerBar()
	if perBar <= 0 {
		return 0
	}
	remainder := math.Mod(c.stamina, perBar)
	if remainder == 0 {
		return perBar
	}
	return remainder
}

// AddMaxStamina grows the pool by whole bars.
func (c *Controller) AddMaxStamina(bars int) {
	if bars <= 0 {
		return
	}
	c.maximum += float64(bars) * c.StaminaPerBar()
}

// RemoveMaxStamina shrinks the pool by whole bars, keeping at least one.
func (c *Controller) RemoveMaxStamina(bars int) {
	if bars <= 0 {
		return
	}
	c.maximum = math.Max(c.StaminaPerBar(), c.maximum-float64(bars)*c.StaminaPerBar())
	c.stamina = math.Min(c.stamina, c.maximum)
}

// Update regenerates once per frame while the cooldown is not running.
func (c *Controller) Update(dt float64) {
	if c.regen.IsRunning() {
		return
	}
	c.RestoreStamina(c.settings.StaminaRegenerationSpeed * dt)
}

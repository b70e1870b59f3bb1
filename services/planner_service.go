package services

import (
	"sync"

	"rasaroots/models"
	"rasaroots/utils"

	"gorm.io/gorm"
)

// CatalogSource is what the planner needs from the catalog collaborator.
// An unknown id resolves to (nil, nil), never an error.
type CatalogSource interface {
	DishByID(id string) (*models.Dish, error)
}

// PlanStore is the persistence collaborator contract. GetPlan always yields a
// plan (created from the base template on first use); UpdatePlan merges a
// patch and returns the authoritative record.
type PlanStore interface {
	GetPlan(userID uint) (*models.MealPlan, error)
	UpdatePlan(userID uint, patch models.PlanPatch) (*models.MealPlan, error)
}

// PlanSnapshot bundles everything the rendering side consumes after a plan
// mutation. It is the sole contract surface: callers never reach into the
// overlay or plan separately.
type PlanSnapshot struct {
	Plan       *models.MealPlan `json:"plan,omitempty"`
	Totals     models.Macros    `json:"totals"`
	Delta      utils.MacroDelta `json:"delta"`
	Completion int              `json:"completion"`
}

// Planner coordinates slot assignment, nutrition aggregation, and plan
// persistence. One editing session per user; mutations within a session are
// serialized so two drops never race a write from the same overlay snapshot;
// the later drop rebuilds from the freshest overlay after the earlier
// persistence call settles.
type Planner struct {
	mu       sync.Mutex
	catalog  CatalogSource
	plans    PlanStore
	sessions map[uint]*planSession
}

type planSession struct {
	mu    sync.Mutex // serializes mutation + persistence per plan
	slots *SlotModel
}

func NewPlanner(catalog CatalogSource, plans PlanStore) *Planner {
	return &Planner{
		catalog:  catalog,
		plans:    plans,
		sessions: make(map[uint]*planSession),
	}
}

var planner *Planner

// InitPlanner wires the process-wide planner against the database-backed
// collaborators.
func InitPlanner(db *gorm.DB) {
	planner = NewPlanner(NewCatalogService(db), NewPlanService(db))
}

func ActivePlanner() *Planner { return planner }

func (p *Planner) session(userID uint) *planSession {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[userID]
	if !ok {
		sess = &planSession{slots: NewSlotModel()}
		p.sessions[userID] = sess
	}
	return sess
}

// ensureActive seeds the session's overlay from the stored plan if the
// session has no active plan yet.
func (p *Planner) ensureActive(sess *planSession, userID uint) (*models.MealPlan, error) {
	if plan := sess.slots.ActivePlan(); plan != nil {
		return plan, nil
	}
	plan, err := p.plans.GetPlan(userID)
	if err != nil || plan == nil {
		return nil, err
	}
	sess.slots.SetActivePlan(plan)
	return plan, nil
}

// Snapshot returns the current state of the user's plan without mutating it.
func (p *Planner) Snapshot(userID uint) (*PlanSnapshot, error) {
	sess := p.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	plan, err := p.ensureActive(sess, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return p.overlaySnapshot(sess)
	}
	return p.snapshotLocked(sess, plan)
}

// OnSlotDrop is the central mutation entry point: a dish was dropped onto
// (or cleared from) a slot. The overlay is updated first; with an active
// plan a full replacement schedule is rebuilt and persisted, and the
// authoritative plan returned by the store drives the recomputed totals,
// delta and completion. A persistence failure leaves the overlay and the
// last-known-good plan in place and is returned to the caller unretried.
func (p *Planner) OnSlotDrop(userID uint, slotKey string, dishID *string) (*PlanSnapshot, error) {
	sess := p.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	plan, err := p.ensureActive(sess, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		// No active plan to merge into: record the assignment and answer
		// from the overlay alone, no persistence call.
		sess.slots.UpdateSlot(slotKey, dishID)
		return p.overlaySnapshot(sess)
	}

	sess.slots.UpdateSlot(slotKey, dishID)

	rebuilt := sess.slots.RebuildSchedule(plan)
	updated, err := p.plans.UpdatePlan(userID, models.PlanPatch{Schedule: rebuilt})
	if err != nil {
		return nil, err
	}
	// The authoritative schedule now carries the overlay's assignments, so
	// reseeding keeps the overlay invariantly in step with the plan.
	sess.slots.SetActivePlan(updated)

	return p.snapshotLocked(sess, updated)
}

// ApplyPatch merges a client patch (name, targets, dietary fields, whole
// schedule) and reseeds the session from the authoritative result.
func (p *Planner) ApplyPatch(userID uint, patch models.PlanPatch) (*PlanSnapshot, error) {
	sess := p.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	updated, err := p.plans.UpdatePlan(userID, patch)
	if err != nil {
		return nil, err
	}
	sess.slots.SetActivePlan(updated)
	return p.snapshotLocked(sess, updated)
}

// ResetSession discards the user's overlay and active plan reference. The
// durable plan is untouched; the next read reseeds from it.
func (p *Planner) ResetSession(userID uint) {
	sess := p.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.slots.Reset()
}

func (p *Planner) snapshotLocked(sess *planSession, plan *models.MealPlan) (*PlanSnapshot, error) {
	dishes, err := p.resolveDishes(sess.slots.EffectiveDishIDs(plan))
	if err != nil {
		return nil, err
	}
	totals := utils.AggregateNutrition(dishes)
	return &PlanSnapshot{
		Plan:       plan,
		Totals:     totals,
		Delta:      utils.NutritionDelta(totals, plan.MacroTargets),
		Completion: sess.slots.Completion(plan),
	}, nil
}

// overlaySnapshot answers from overlay state alone: no plan, no targets, no
// declared slots, so delta is zero and completion is 0.
func (p *Planner) overlaySnapshot(sess *planSession) (*PlanSnapshot, error) {
	dishes, err := p.resolveDishes(sess.slots.OverlayDishIDs())
	if err != nil {
		return nil, err
	}
	return &PlanSnapshot{Totals: utils.AggregateNutrition(dishes)}, nil
}

// resolveDishes looks up each assigned dish id. Ids missing from the catalog
// contribute nothing.
func (p *Planner) resolveDishes(ids []string) ([]models.Dish, error) {
	dishes := make([]models.Dish, 0, len(ids))
	for _, id := range ids {
		dish, err := p.catalog.DishByID(id)
		if err != nil {
			return nil, err
		}
		if dish != nil {
			dishes = append(dishes, *dish)
		}
	}
	return dishes, nil
}

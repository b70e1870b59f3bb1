package services

import (
	"encoding/json"
	"time"

	"rasaroots/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type updateDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _updates updateDeps

func InitUpdateBus(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_updates = updateDeps{db: db, rt: rt, ps: ps}
}

// PublishUpdate persists a live update and fans it out over the websocket
// hub and device push. Safe to call anywhere, including before wiring.
func PublishUpdate(userID uint, typ, message string, payload map[string]any) {
	if _updates.db == nil {
		return // not initialized
	}
	u := &models.LiveUpdate{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err == nil {
			u.Payload = datatypes.JSON(raw)
		}
	}
	_ = _updates.db.Create(u).Error

	if _updates.rt != nil {
		_updates.rt.BroadcastUpdate(userID, map[string]any{
			"kind":   "update.created",
			"update": u,
		})
	}
	if _updates.ps != nil {
		_updates.ps.PushToUser(userID, "RasaRoots", message, map[string]string{
			"type": typ,
		})
	}
}

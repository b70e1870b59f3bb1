package main

import (
	"log"

	"rasaroots/config"
	"rasaroots/routes"
	"rasaroots/services"
	"rasaroots/utils"
)

func main() {
	config.InitDB()
	config.SeedReferenceData()
	utils.InitS3()

	rt := services.NewRealtimeHub()
	ps, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
		ps = nil
	}
	services.InitUpdateBus(config.DB, rt, ps)
	services.InitPlanner(config.DB)
	services.InitReviews(config.DB)

	r := routes.SetupRouter(rt, ps)
	r.Run(":8080")
}

package internal

import (
	"net/http"

	"pad/internal/controllers"
	"pad/internal/providers"
	"pad/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/v1/users", http.HandlerFunc(apiController.GetUsers))
	routers.Get("/api/v1/months", http.HandlerFunc(apiController.GetMonths))
	routers.Get("/api/v1/mean_time_weekday/{user_id:[0-9]+}", http.HandlerFunc(apiController.GetMeanTimeWeekday))
	routers.Get("/api/v1/presence_weekday/{user_id:[0-9]+}", http.HandlerFunc(apiController.GetPresenceWeekday))
	routers.Get("/api/v1/presence_start_end/{user_id:[0-9]+}", http.HandlerFunc(apiController.GetPresenceStartEnd))
	routers.Get("/api/v1/podium/{user_id:[0-9]+}", http.HandlerFunc(apiController.GetPodium))
	routers.Get("/api/v1/five_top/{month:[0-9]+},{year:[0-9]+}", http.HandlerFunc(apiController.GetFiveTop))
	return routers
}
